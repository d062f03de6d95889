// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU-accelerated matrix multiplication.
//
// The backend registers a float32 Dot kernel that runs as a WGSL compute
// shader. It requires the wgpu-native runtime and is currently built for
// Windows; on other platforms New returns ErrUnavailable.
//
// Example:
//
//	gpu, err := webgpu.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gpu.Release()
//
//	d, _ := linalg.New(linalg.DefaultConfig(), cpu.New(), gpu)
//	out, _ := d.Dot(a.To(tensor.WebGPU), b.To(tensor.WebGPU))
package webgpu

import (
	internalwebgpu "github.com/born-ml/linalg/internal/backend/webgpu"
)

// Name is the configuration identifier of the WebGPU backend.
const Name = internalwebgpu.Name

// ErrUnavailable is returned by New when no WebGPU adapter can be used.
var ErrUnavailable = internalwebgpu.ErrUnavailable

// Backend represents the WebGPU backend implementation.
type Backend = internalwebgpu.Backend

// New creates a WebGPU backend. Call Release when done.
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable reports whether a WebGPU adapter can be acquired.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
