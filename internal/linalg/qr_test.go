package linalg

import (
	"math"
	"testing"

	"github.com/born-ml/linalg/internal/backend/blas"
	"github.com/born-ml/linalg/internal/backend/cpu"
	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/kernel/kerneltest"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_QR(t *testing.T) {
	a := tensor.MustFromSlice([]float64{
		12, -51, 4,
		6, 167, -68,
		-4, 24, -41,
		1, 1, 1,
	}, tensor.Shape{4, 3}, tensor.CPU)

	for _, name := range []string{cpu.Name, blas.Name} {
		t.Run(name, func(t *testing.T) {
			d := NewDefault()
			require.NoError(t, d.Use(name))

			q, r, err := d.QR(a, kernel.QRModeReduced)
			require.NoError(t, err)
			assert.Equal(t, tensor.Shape{4, 3}, q.Shape())
			assert.Equal(t, tensor.Shape{3, 3}, r.Shape())

			got := kerneltest.MatMul(q.AsFloat64(), r.AsFloat64(), 4, 3, 3)
			assert.InDeltaSlice(t, a.AsFloat64(), got, 1e-9)

			q, r, err = d.QR(a, kernel.QRModeR)
			require.NoError(t, err)
			assert.Nil(t, q)
			assert.Equal(t, tensor.Shape{3, 3}, r.Shape())
		})
	}
}

func TestDispatcher_QRRaw(t *testing.T) {
	a := tensor.MustFromSlice([]float64{2, 0, 1, 1, 3, 2}, tensor.Shape{2, 3}, tensor.CPU)

	h, tau, err := NewDefault().QR(a, kernel.QRModeRaw)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, h.Shape())
	assert.Equal(t, tensor.Shape{2}, tau.Shape())

	q, r := kerneltest.ExpandRaw(h.AsFloat64(), tau.AsFloat64(), 2, 3)
	assert.InDeltaSlice(t, a.AsFloat64(), kerneltest.MatMul(q, r, 2, 2, 3), 1e-12)
}

func TestDispatcher_QRErrors(t *testing.T) {
	d := NewDefault()
	vec := tensor.MustFromSlice([]float64{1, 2, 3}, tensor.Shape{3}, tensor.CPU)
	ints := tensor.MustFromSlice([]int64{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
	ok := tensor.MustFromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
	nan := tensor.MustFromSlice([]float64{1, math.NaN(), 3, 4}, tensor.Shape{2, 2}, tensor.CPU)

	tests := []struct {
		name string
		a    *tensor.RawTensor
		mode kernel.QRMode
		want error
	}{
		{"nil", nil, kernel.QRModeReduced, ErrNilTensor},
		{"not a matrix", vec, kernel.QRModeReduced, ErrShapeMismatch},
		{"integer dtype", ints, kernel.QRModeReduced, kernel.ErrUnsupportedDType},
		{"unknown mode", ok, kernel.QRMode(42), kernel.ErrUnsupportedMode},
		{"non-finite", nan, kernel.QRModeComplete, kernel.ErrNonFinite},
		{"no backend", ok.To(tensor.WebGPU), kernel.QRModeReduced, ErrBackendNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := d.QR(tt.a, tt.mode)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestDispatcher_QRRawUnsupportedOnBLAS(t *testing.T) {
	d := NewDefault()
	require.NoError(t, d.Use(blas.Name))

	a := tensor.MustFromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
	_, _, err := d.QR(a, kernel.QRModeRaw)
	assert.True(t, errors.Is(err, kernel.ErrUnsupportedMode))
	assert.Contains(t, err.Error(), blas.Name)
}

func TestDispatcher_QRKernelNotFound(t *testing.T) {
	d, err := New(DefaultConfig(), cpu.New())
	require.NoError(t, err)
	require.NoError(t, d.Register(newGPUStub()))

	a, err := tensor.Zeros(tensor.Shape{2, 2}, tensor.Float32, tensor.WebGPU)
	require.NoError(t, err)

	_, _, err = d.QR(a, kernel.QRModeReduced)
	assert.True(t, errors.Is(err, kernel.ErrKernelNotFound))
}
