// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for the linalg kernels.
//
// # Overview
//
// The backend registers two kernels:
//   - Dot: cache-blocked matrix multiplication for float32, float64, int32
//     and int64, with the tile size chosen from the CPU's SIMD features
//   - QR: Householder decomposition in float64 for all QR modes
//
// Rows (Dot) and columns (QR) are split across goroutines.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/linalg/backend/cpu"
//	    "github.com/born-ml/linalg/linalg"
//	)
//
//	func main() {
//	    d, _ := linalg.New(linalg.DefaultConfig(), cpu.New())
//	    out, _ := d.Dot(a, b)
//	}
//
// # Thread Safety
//
// The backend is safe for concurrent use. Kernels hold no mutable state;
// exclusive access to the output tensor of Dot is the caller's obligation.
package cpu

import (
	internalcpu "github.com/born-ml/linalg/internal/backend/cpu"
	"github.com/born-ml/linalg/internal/parallel"
)

// Name is the configuration identifier of the CPU backend.
const Name = internalcpu.Name

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Config configures the CPU backend.
type Config = internalcpu.Config

// ParallelConfig controls how work is split across goroutines.
type ParallelConfig = parallel.Config

// Features describes the SIMD capabilities detected at startup.
type Features = internalcpu.Features

// New creates a CPU backend with DefaultConfig.
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with cfg.
// A zero TileSize is replaced by one suited to the detected CPU features.
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns the default CPU backend configuration.
func DefaultConfig() Config {
	return internalcpu.DefaultConfig()
}

// DetectFeatures reports the SIMD features of the running CPU.
func DetectFeatures() Features {
	return internalcpu.DetectFeatures()
}
