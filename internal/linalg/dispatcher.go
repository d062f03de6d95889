// Package linalg dispatches linear-algebra routines to backend kernels.
//
// The dispatcher owns input validation: kernels assume their documented
// preconditions, so every shape, dtype and device check happens here, once,
// before a kernel is selected by the operand's device and invoked by name.
package linalg

import (
	"sync"

	"github.com/born-ml/linalg/internal/backend"
	"github.com/born-ml/linalg/internal/backend/blas"
	"github.com/born-ml/linalg/internal/backend/cpu"
	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Config selects backends per device.
type Config struct {
	// Devices maps a device to the name of the backend serving it.
	// Devices without an entry use the first registered backend for that device.
	Devices map[tensor.Device]string
}

// DefaultConfig routes CPU tensors to the pure Go backend.
func DefaultConfig() Config {
	return Config{
		Devices: map[tensor.Device]string{tensor.CPU: cpu.Name},
	}
}

// Dispatcher resolves and invokes kernels. It is safe for concurrent use.
type Dispatcher struct {
	mu       sync.RWMutex
	devices  map[tensor.Device]string
	backends map[string]backend.Backend
	order    []string
}

// New creates a dispatcher with the given backends registered in order.
func New(cfg Config, backends ...backend.Backend) (*Dispatcher, error) {
	d := &Dispatcher{
		devices:  make(map[tensor.Device]string, len(cfg.Devices)),
		backends: make(map[string]backend.Backend, len(backends)),
	}
	for dev, name := range cfg.Devices {
		d.devices[dev] = name
	}
	for _, b := range backends {
		if err := d.Register(b); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// NewDefault creates a dispatcher with the cpu and blas backends and DefaultConfig.
func NewDefault() *Dispatcher {
	d, err := New(DefaultConfig(), cpu.New(), blas.New())
	if err != nil {
		panic(err) // Fixed, distinct backend names.
	}
	return d
}

// Register adds a backend. Names must be unique.
func (d *Dispatcher) Register(b backend.Backend) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.backends[b.Name()]; exists {
		return errors.Wrap(ErrDuplicateBackend, b.Name())
	}
	d.backends[b.Name()] = b
	d.order = append(d.order, b.Name())
	klog.V(2).InfoS("registered backend", "backend", b.Name(), "device", b.Device(), "kernels", b.Kernels().Names())
	return nil
}

// Use routes tensors on the backend's device to the named backend.
func (d *Dispatcher) Use(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.backends[name]
	if !ok {
		return errors.Wrap(ErrBackendNotFound, name)
	}
	d.devices[b.Device()] = name
	klog.V(2).InfoS("selected backend", "device", b.Device(), "backend", name)
	return nil
}

// Backend returns the backend registered under name.
func (d *Dispatcher) Backend(name string) (backend.Backend, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	b, ok := d.backends[name]
	if !ok {
		return nil, errors.Wrap(ErrBackendNotFound, name)
	}
	return b, nil
}

// Backends returns all backends in registration order.
func (d *Dispatcher) Backends() []backend.Backend {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]backend.Backend, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.backends[name])
	}
	return out
}

// BackendFor returns the backend that serves tensors on device.
func (d *Dispatcher) BackendFor(device tensor.Device) (backend.Backend, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if name, ok := d.devices[device]; ok {
		if b, ok := d.backends[name]; ok && b.Device() == device {
			return b, nil
		}
		return nil, errors.Wrapf(ErrBackendNotFound, "%s configured for %s", name, device)
	}
	for _, name := range d.order {
		if b := d.backends[name]; b.Device() == device {
			return b, nil
		}
	}
	return nil, errors.Wrapf(ErrBackendNotFound, "no backend for %s", device)
}

// lookup resolves the kernel for name on the backend serving device.
func lookup[K kernel.Kernel](d *Dispatcher, device tensor.Device, name string) (K, backend.Backend, error) {
	var zero K
	b, err := d.BackendFor(device)
	if err != nil {
		return zero, nil, err
	}
	k, err := kernel.Lookup[K](b.Kernels(), name)
	if err != nil {
		return zero, nil, err
	}
	return k, b, nil
}
