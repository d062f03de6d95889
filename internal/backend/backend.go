// Package backend defines what a compute backend exposes to the dispatcher.
package backend

import (
	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/tensor"
)

// Backend is a device-specific provider of kernels.
//
// Implementations:
//   - cpu: pure Go kernels, parallel over rows and columns
//   - blas: gorgonia/gonum backed kernels
//   - webgpu: WGSL compute shaders via go-webgpu (Dot only)
type Backend interface {
	// Name is the stable identifier used in configuration, e.g. "cpu".
	Name() string

	// Device is the device whose tensors this backend operates on.
	Device() tensor.Device

	// Kernels returns the backend's kernel registry.
	Kernels() *kernel.Registry
}

// Supports reports whether b registers a kernel for the operation name.
func Supports(b Backend, name string) bool {
	_, ok := b.Kernels().Get(name)
	return ok
}
