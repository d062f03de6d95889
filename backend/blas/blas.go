// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package blas provides a CPU backend built on established numeric libraries.
//
// Dot runs through gorgonia's standard engine, writing straight into the
// caller's output buffer. QR uses gonum's LAPACK-backed factorization and
// supports the reduced, complete and r modes; raw mode is reported as
// unsupported.
//
// Example:
//
//	d, _ := linalg.New(linalg.Config{}, blas.New())
//	q, r, _ := d.QR(a, linalg.QRModeReduced)
package blas

import (
	internalblas "github.com/born-ml/linalg/internal/backend/blas"
)

// Name is the configuration identifier of the BLAS backend.
const Name = internalblas.Name

// Backend represents the BLAS backend implementation.
type Backend = internalblas.BLASBackend

// New creates a BLAS backend.
func New() *Backend {
	return internalblas.New()
}
