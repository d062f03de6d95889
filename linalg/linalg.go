// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides matrix multiplication and QR decomposition over
// pluggable compute backends.
//
// # Overview
//
// Two kernels are defined, each identified by a fixed operation name:
//   - Dot ("Dot"): out = a·b for a (M, K), b (K, N) and a preallocated out (M, N)
//   - QR ("QR"): a = Q·R with Q orthonormal and R upper triangular
//
// A Dispatcher validates operands once, picks the backend serving the
// operands' device and invokes the kernel registered under the operation name.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/linalg/linalg"
//	    "github.com/born-ml/linalg/tensor"
//	)
//
//	func main() {
//	    d := linalg.NewDefault()
//
//	    a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU)
//	    b, _ := tensor.FromSlice([]float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2}, tensor.CPU)
//	    c, _ := d.Dot(a, b) // (2, 2)
//
//	    q, r, _ := d.QR(a, linalg.QRModeReduced)
//	}
//
// # QR Modes
//
// For a of shape (M, N) and K = min(M, N):
//
//	mode       first result           second result
//	reduced    Q (M, K)               R (K, N)
//	complete   Q (M, M)               R (M, N)
//	r          nil                    R (K, N)
//	raw        h (N, M) reflectors    tau (K)
//
// # Errors
//
// Invalid operands are reported with ErrShapeMismatch, ErrDTypeMismatch or
// ErrDeviceMismatch. Kernel failures keep their cause, so errors.Is matches
// ErrUnsupportedDType, ErrUnsupportedMode or ErrNonFinite through the wrapping.
package linalg

import (
	"github.com/born-ml/linalg/internal/backend"
	"github.com/born-ml/linalg/internal/kernel"
	internallinalg "github.com/born-ml/linalg/internal/linalg"
)

// Operation names.
const (
	DotName = kernel.DotName
	QRName  = kernel.QRName
)

// Dispatcher validates operands and routes them to backend kernels.
type Dispatcher = internallinalg.Dispatcher

// Config selects the backend serving each device.
type Config = internallinalg.Config

// Backend is a set of kernels bound to one device.
type Backend = backend.Backend

// Kernel is the base of every operation capability.
type Kernel = kernel.Kernel

// DotKernel computes a matrix product into a preallocated output.
type DotKernel = kernel.DotKernel

// QRKernel computes a QR decomposition.
type QRKernel = kernel.QRKernel

// Registry maps operation names to kernels.
type Registry = kernel.Registry

// QRMode selects the outputs of a QR decomposition.
type QRMode = kernel.QRMode

// QR modes.
const (
	QRModeReduced  = kernel.QRModeReduced
	QRModeComplete = kernel.QRModeComplete
	QRModeR        = kernel.QRModeR
	QRModeRaw      = kernel.QRModeRaw
)

// Errors.
var (
	ErrNilTensor        = internallinalg.ErrNilTensor
	ErrShapeMismatch    = internallinalg.ErrShapeMismatch
	ErrDTypeMismatch    = internallinalg.ErrDTypeMismatch
	ErrDeviceMismatch   = internallinalg.ErrDeviceMismatch
	ErrBackendNotFound  = internallinalg.ErrBackendNotFound
	ErrDuplicateBackend = internallinalg.ErrDuplicateBackend
	ErrKernelNotFound   = kernel.ErrKernelNotFound
	ErrUnsupportedDType = kernel.ErrUnsupportedDType
	ErrUnsupportedMode  = kernel.ErrUnsupportedMode
	ErrNonFinite        = kernel.ErrNonFinite
)

// New creates a dispatcher with the given backends registered in order.
func New(cfg Config, backends ...Backend) (*Dispatcher, error) {
	return internallinalg.New(cfg, backends...)
}

// NewDefault creates a dispatcher with the cpu and blas backends, routing
// CPU tensors to cpu.
func NewDefault() *Dispatcher {
	return internallinalg.NewDefault()
}

// DefaultConfig routes CPU tensors to the cpu backend.
func DefaultConfig() Config {
	return internallinalg.DefaultConfig()
}

// NewRegistry creates an empty kernel registry for a custom backend.
func NewRegistry(owner string) *Registry {
	return kernel.NewRegistry(owner)
}

// Lookup returns the kernel registered under name as type K.
func Lookup[K Kernel](r *Registry, name string) (K, error) {
	return kernel.Lookup[K](r, name)
}

// ParseQRMode parses "reduced", "complete", "r" or "raw".
func ParseQRMode(s string) (QRMode, error) {
	return kernel.ParseQRMode(s)
}
