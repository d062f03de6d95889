package blas

import (
	"math"
	"testing"

	"github.com/born-ml/linalg/internal/backend"
	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/kernel/kerneltest"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ backend.Backend = (*BLASBackend)(nil)

func lookup[K kernel.Kernel](t *testing.T, name string) K {
	t.Helper()
	k, err := kernel.Lookup[K](New().Kernels(), name)
	require.NoError(t, err)
	return k
}

func TestBLASBackend_New(t *testing.T) {
	b := New()
	assert.Equal(t, "blas", b.Name())
	assert.Equal(t, tensor.CPU, b.Device())
	assert.Equal(t, []string{kernel.DotName, kernel.QRName}, b.Kernels().Names())
}

func TestDotKernel_Contract(t *testing.T) {
	kerneltest.CheckDot(t, lookup[kernel.DotKernel](t, kernel.DotName), tensor.CPU, tensor.Float32, tensor.Float64)
}

func TestDotKernel_WritesIntoOutput(t *testing.T) {
	dot := lookup[kernel.DotKernel](t, kernel.DotName)

	a := tensor.MustFromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU)
	b := tensor.MustFromSlice([]float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2}, tensor.CPU)
	out := tensor.MustFromSlice([]float64{-1, -1, -1, -1}, tensor.Shape{2, 2}, tensor.CPU)
	view := out.AsFloat64()

	require.NoError(t, dot.Call(a, b, out))
	assert.Equal(t, []float64{58, 64, 139, 154}, view)
}

func TestDotKernel_UnsupportedDType(t *testing.T) {
	dot := lookup[kernel.DotKernel](t, kernel.DotName)
	a := tensor.MustFromSlice([]int32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
	out, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Int32, tensor.CPU)
	require.NoError(t, err)

	assert.True(t, errors.Is(dot.Call(a, a, out), kernel.ErrUnsupportedDType))
}

func TestQRKernel_Contract(t *testing.T) {
	modes := []kernel.QRMode{kernel.QRModeReduced, kernel.QRModeComplete, kernel.QRModeR}
	kerneltest.CheckQR(t, lookup[kernel.QRKernel](t, kernel.QRName), tensor.CPU, modes, tensor.Float32, tensor.Float64)
}

func TestQRKernel_Errors(t *testing.T) {
	qr := lookup[kernel.QRKernel](t, kernel.QRName)
	a := tensor.MustFromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)

	_, _, err := qr.Call(a, kernel.QRModeRaw)
	assert.True(t, errors.Is(err, kernel.ErrUnsupportedMode))

	ints := tensor.MustFromSlice([]int64{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
	_, _, err = qr.Call(ints, kernel.QRModeReduced)
	assert.True(t, errors.Is(err, kernel.ErrUnsupportedDType))

	inf := tensor.MustFromSlice([]float64{1, math.Inf(1), 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
	_, _, err = qr.Call(inf, kernel.QRModeReduced)
	assert.True(t, errors.Is(err, kernel.ErrNonFinite))
}
