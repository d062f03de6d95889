// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the array type consumed by the linalg kernels.
//
// # Overview
//
// A RawTensor is a dense, row-major host buffer tagged with:
//   - a Shape (any rank, including the rank-0 scalar Shape{})
//   - a DataType (float32, float64, int32, int64, uint8, bool)
//   - a Device (CPU or WebGPU) that selects the backend serving it
//
// # Basic Usage
//
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU)
//	data := a.AsFloat64()           // Zero-copy typed view
//	m, _ := a.Reshape(tensor.Shape{3, 2}) // View over the same buffer
//
// # Devices
//
// The device tag does not move memory. To(device) returns a copy tagged for
// another device; the backend registered for that device performs the upload.
package tensor
