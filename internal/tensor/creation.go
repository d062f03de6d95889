package tensor

import "fmt"

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return NewRaw(shape, dtype, device)
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
//
// Example:
//
//	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU)
func FromSlice[T DType](data []T, shape Shape, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), device)
	if err != nil {
		return nil, err
	}

	switch src := any(data).(type) {
	case []float32:
		copy(raw.AsFloat32(), src)
	case []float64:
		copy(raw.AsFloat64(), src)
	case []int32:
		copy(raw.AsInt32(), src)
	case []int64:
		copy(raw.AsInt64(), src)
	case []uint8:
		copy(raw.AsUint8(), src)
	}
	return raw, nil
}

// MustFromSlice is like FromSlice but panics on error.
// Intended for tests and literals with known-good shapes.
func MustFromSlice[T DType](data []T, shape Shape, device Device) *RawTensor {
	raw, err := FromSlice(data, shape, device)
	if err != nil {
		panic(err)
	}
	return raw
}

// FromFloat64s creates a tensor of the given dtype from float64 values,
// converting each element. Integer dtypes truncate toward zero.
func FromFloat64s(data []float64, shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape, dtype, device)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case Float32:
		dst := raw.AsFloat32()
		for i, v := range data {
			dst[i] = float32(v)
		}
	case Float64:
		copy(raw.AsFloat64(), data)
	case Int32:
		dst := raw.AsInt32()
		for i, v := range data {
			dst[i] = int32(v)
		}
	case Int64:
		dst := raw.AsInt64()
		for i, v := range data {
			dst[i] = int64(v)
		}
	case Uint8:
		dst := raw.AsUint8()
		for i, v := range data {
			dst[i] = uint8(v)
		}
	default:
		return nil, fmt.Errorf("cannot convert float64 data to %s", dtype)
	}
	return raw, nil
}

// Eye creates an n×n identity matrix.
func Eye(n int, dtype DataType, device Device) (*RawTensor, error) {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return FromFloat64s(data, Shape{n, n}, dtype, device)
}
