// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/linalg/internal/tensor"
)

// RawTensor is the array handle passed to every kernel.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Typed views via AsFloat32(), AsFloat64(), AsInt32(), AsInt64()
//   - A float64 copy of any numeric tensor via Float64s()
//   - Buffer-sharing views via Reshape() and deep copies via Clone()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32()  // Type-safe access
//	clone := raw.Clone()     // Independent buffer
type RawTensor = tensor.RawTensor

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// DataType identifies the element type of a tensor at runtime.
type DataType = tensor.DataType

// DType is the constraint for element types accepted by FromSlice.
type DType = tensor.DType

// Device identifies where a tensor's computation runs.
type Device = tensor.Device

// Data types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
	Int32   = tensor.Int32
	Int64   = tensor.Int64
	Uint8   = tensor.Uint8
	Bool    = tensor.Bool
)

// Devices.
const (
	CPU    = tensor.CPU
	WebGPU = tensor.WebGPU
)

// NewRaw allocates a zero-initialized tensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Zeros is an alias of NewRaw.
func Zeros(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.Zeros(shape, dtype, device)
}

// FromSlice copies data into a new tensor of the matching dtype.
func FromSlice[T DType](data []T, shape Shape, device Device) (*RawTensor, error) {
	return tensor.FromSlice(data, shape, device)
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice[T DType](data []T, shape Shape, device Device) *RawTensor {
	return tensor.MustFromSlice(data, shape, device)
}

// FromFloat64s converts data to dtype and stores it in a new tensor.
func FromFloat64s(data []float64, shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.FromFloat64s(data, shape, dtype, device)
}

// Eye returns the n×n identity matrix.
func Eye(n int, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.Eye(n, dtype, device)
}

// ParseDataType parses a dtype name such as "float32".
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}
