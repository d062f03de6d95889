package tensor

import (
	"testing"
)

// RawTensor Tests

func TestRawTensorAsInt64(t *testing.T) {
	raw, _ := NewRaw(Shape{3, 2}, Int64, CPU)
	data := raw.AsInt64()

	if len(data) != 6 {
		t.Errorf("AsInt64 length = %d, want 6", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if raw.AsInt64()[0] != 42 {
		t.Error("AsInt64 should return zero-copy slice")
	}
}

func TestRawTensorAsUint8(t *testing.T) {
	raw, _ := NewRaw(Shape{4, 4}, Uint8, CPU)
	if n := len(raw.AsUint8()); n != 16 {
		t.Errorf("AsUint8 length = %d, want 16", n)
	}
}

func TestNewRawAllTypes(t *testing.T) {
	types := []struct {
		dtype       DataType
		elementSize int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
	}

	shape := Shape{2, 3}
	for _, tt := range types {
		raw, err := NewRaw(shape, tt.dtype, CPU)
		if err != nil {
			t.Fatalf("NewRaw(%v, %v) failed: %v", shape, tt.dtype, err)
		}

		if raw.DType() != tt.dtype {
			t.Errorf("DType = %v, want %v", raw.DType(), tt.dtype)
		}

		expectedByteSize := 6 * tt.elementSize // 2*3 elements
		if raw.ByteSize() != expectedByteSize {
			t.Errorf("ByteSize = %d, want %d for type %v", raw.ByteSize(), expectedByteSize, tt.dtype)
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	invalidShapes := []Shape{
		{0},
		{-1},
		{2, 0},
		{2, -3},
	}

	for _, shape := range invalidShapes {
		_, err := NewRaw(shape, Float32, CPU)
		if err == nil {
			t.Errorf("NewRaw(%v) should fail but didn't", shape)
		}
	}
}

func TestRawTensorStrides(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3, 4}, Float32, CPU)
	want := []int{12, 4, 1}

	got := raw.Strides()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Strides = %v, want %v", got, want)
		}
	}
}

// Views and copies

func TestRawTensorReshapeSharesBuffer(t *testing.T) {
	raw := MustFromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, CPU)

	view, err := raw.Reshape(Shape{3, 2})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	if !view.Shape().Equal(Shape{3, 2}) {
		t.Errorf("Reshape shape = %v, want [3 2]", view.Shape())
	}

	view.AsFloat64()[5] = 60
	if raw.AsFloat64()[5] != 60 {
		t.Error("Reshape should share the underlying buffer")
	}

	if _, err := raw.Reshape(Shape{4, 2}); err == nil {
		t.Error("Reshape to a different element count should fail")
	}
}

func TestRawTensorCloneIsIndependent(t *testing.T) {
	raw := MustFromSlice([]float32{1, 2, 3}, Shape{3}, CPU)
	clone := raw.Clone()

	clone.AsFloat32()[0] = 100
	if raw.AsFloat32()[0] != 1 {
		t.Error("Clone should not share the underlying buffer")
	}
}

func TestRawTensorTo(t *testing.T) {
	raw := MustFromSlice([]float32{1, 2}, Shape{2}, CPU)
	gpu := raw.To(WebGPU)

	if gpu.Device() != WebGPU {
		t.Errorf("To(WebGPU) device = %v", gpu.Device())
	}
	if raw.Device() != CPU {
		t.Error("To should not change the source tensor")
	}
	if gpu.AsFloat32()[1] != 2 {
		t.Error("To should copy the data")
	}
}

func TestRawTensorFloat64s(t *testing.T) {
	tests := []struct {
		raw  *RawTensor
		want []float64
	}{
		{MustFromSlice([]float32{1.5, -2}, Shape{2}, CPU), []float64{1.5, -2}},
		{MustFromSlice([]int32{3, -4}, Shape{2}, CPU), []float64{3, -4}},
		{MustFromSlice([]int64{5, 6}, Shape{2}, CPU), []float64{5, 6}},
		{MustFromSlice([]uint8{7, 255}, Shape{2}, CPU), []float64{7, 255}},
	}

	for _, tt := range tests {
		got := tt.raw.Float64s()
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("%s: Float64s = %v, want %v", tt.raw.DType(), got, tt.want)
				break
			}
		}
	}
}

// Test As* methods panic on wrong type

func TestRawTensorAsWrongTypePanics(t *testing.T) {
	// Float32 tensor
	raw32, _ := NewRaw(Shape{2}, Float32, CPU)

	// AsFloat32 should work
	_ = raw32.AsFloat32()

	// AsFloat64 should panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("AsFloat64 on Float32 tensor should panic")
		}
	}()
	_ = raw32.AsFloat64()
}

func TestRawTensorAsInt32WrongTypePanics(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float32, CPU)

	defer func() {
		if r := recover(); r == nil {
			t.Error("AsInt32 on Float32 tensor should panic")
		}
	}()
	_ = raw.AsInt32()
}

func TestRawTensorFloat64sBoolPanics(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Bool, CPU)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Float64s on Bool tensor should panic")
		}
	}()
	_ = raw.Float64s()
}

// Test empty tensor (scalar)

func TestRawTensorScalar(t *testing.T) {
	raw, _ := NewRaw(Shape{}, Float32, CPU)

	if raw.NumElements() != 1 {
		t.Errorf("Scalar tensor NumElements = %d, want 1", raw.NumElements())
	}

	if raw.ByteSize() != 4 {
		t.Errorf("Scalar tensor ByteSize = %d, want 4", raw.ByteSize())
	}

	if raw.Rank() != 0 {
		t.Errorf("Scalar tensor Rank = %d, want 0", raw.Rank())
	}
}
