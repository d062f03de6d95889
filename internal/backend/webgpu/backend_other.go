//go:build !windows

package webgpu

import (
	"runtime"

	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/pkg/errors"
)

// Backend runs kernels on a WebGPU device.
// On this platform no device can be opened and New always fails.
type Backend struct{}

// New returns an error wrapping ErrUnavailable.
func New() (*Backend, error) {
	return nil, errors.Wrapf(ErrUnavailable, "not supported on %s", runtime.GOOS)
}

// IsAvailable reports false.
func IsAvailable() bool {
	return false
}

// Release is a no-op.
func (b *Backend) Release() {}

// Name returns the backend name.
func (b *Backend) Name() string {
	return Name
}

// Device returns the compute device.
func (b *Backend) Device() tensor.Device {
	return tensor.WebGPU
}

// Kernels returns an empty registry.
func (b *Backend) Kernels() *kernel.Registry {
	return kernel.NewRegistry(Name)
}
