//go:build windows

package webgpu

import (
	"fmt"
	"sync"

	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Backend runs kernels on a WebGPU device.
type Backend struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// Shader and pipeline cache
	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex

	kernels *kernel.Registry
}

// New creates a new WebGPU backend.
// Returns an error wrapping ErrUnavailable if WebGPU is not available or
// initialization fails.
func New() (backend *Backend, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			backend = nil
			err = errors.Wrapf(ErrUnavailable, "native library: %v", r)
		}
	}()

	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "create instance: %v", err)
	}

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		instance.Release()
		return nil, errors.Wrapf(ErrUnavailable, "request adapter: %v", err)
	}

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, errors.Wrapf(ErrUnavailable, "request device: %v", err)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, errors.Wrap(ErrUnavailable, "no queue")
	}

	b := &Backend{
		instance:  instance,
		adapter:   adapter,
		device:    device,
		queue:     queue,
		shaders:   make(map[string]*wgpu.ShaderModule),
		pipelines: make(map[string]*wgpu.ComputePipeline),
		kernels:   kernel.NewRegistry(Name),
	}
	b.kernels.MustRegister(&DotKernel{backend: b})
	klog.V(2).InfoS("webgpu backend ready")
	return b, nil
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() (available bool) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return false
	}
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()
	return true
}

// Release releases all WebGPU resources.
// Must be called when the backend is no longer needed.
func (b *Backend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, p := range b.pipelines {
		p.Release()
	}
	b.pipelines = nil

	for _, s := range b.shaders {
		s.Release()
	}
	b.shaders = nil

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return Name
}

// Device returns the compute device.
func (b *Backend) Device() tensor.Device {
	return tensor.WebGPU
}

// Kernels returns the registry holding the Dot kernel.
func (b *Backend) Kernels() *kernel.Registry {
	return b.kernels
}

// String describes the backend for logs.
func (b *Backend) String() string {
	return fmt.Sprintf("WebGPU(%d shaders, %d pipelines)", len(b.shaders), len(b.pipelines))
}
