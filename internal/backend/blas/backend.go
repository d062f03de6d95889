// Package blas implements linalg kernels on top of gorgonia's standard engine
// and gonum's LAPACK routines.
package blas

import (
	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/tensor"
)

// Name is the configuration identifier of the BLAS backend.
const Name = "blas"

// BLASBackend provides Dot and QR kernels backed by BLAS/LAPACK implementations.
type BLASBackend struct {
	kernels *kernel.Registry
}

// New creates a BLAS backend.
func New() *BLASBackend {
	b := &BLASBackend{kernels: kernel.NewRegistry(Name)}
	b.kernels.MustRegister(&DotKernel{}, &QRKernel{})
	return b
}

// Name returns the backend name.
func (b *BLASBackend) Name() string {
	return Name
}

// Device returns the compute device.
func (b *BLASBackend) Device() tensor.Device {
	return tensor.CPU
}

// Kernels returns the registry holding the Dot and QR kernels.
func (b *BLASBackend) Kernels() *kernel.Registry {
	return b.kernels
}
