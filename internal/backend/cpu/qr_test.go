package cpu

import (
	"math"
	"testing"

	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/kernel/kerneltest"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allModes = []kernel.QRMode{kernel.QRModeReduced, kernel.QRModeComplete, kernel.QRModeR, kernel.QRModeRaw}

func lookupQR(t *testing.T, b *CPUBackend) kernel.QRKernel {
	t.Helper()
	qr, err := kernel.Lookup[kernel.QRKernel](b.Kernels(), kernel.QRName)
	require.NoError(t, err)
	return qr
}

func TestDotKernel_Contract(t *testing.T) {
	kerneltest.CheckDot(t, lookupDot(t, newTestBackend()), tensor.CPU,
		tensor.Float32, tensor.Float64, tensor.Int32, tensor.Int64)
}

func TestQRKernel_Contract(t *testing.T) {
	kerneltest.CheckQR(t, lookupQR(t, newTestBackend()), tensor.CPU, allModes, tensor.Float32, tensor.Float64)
}

func TestQRKernel_Sequential(t *testing.T) {
	b := NewWithConfig(Config{Parallel: parallel.Sequential()})
	kerneltest.CheckQR(t, lookupQR(t, b), tensor.CPU, allModes, tensor.Float64)
}

func TestQRKernel_KnownValues(t *testing.T) {
	qr := lookupQR(t, newTestBackend())

	// Columns (3, 4) and (0, 5): |col0| = 5.
	a := tensor.MustFromSlice([]float64{3, 0, 4, 5}, tensor.Shape{2, 2}, tensor.CPU)
	q, r, err := qr.Call(a, kernel.QRModeReduced)
	require.NoError(t, err)

	rData := r.AsFloat64()
	assert.InDelta(t, 5, math.Abs(rData[0]), 1e-12)
	assert.InDelta(t, 4, math.Abs(rData[1]), 1e-12)
	assert.Zero(t, rData[2])
	assert.InDelta(t, 3, math.Abs(rData[3]), 1e-12)
	assert.InDeltaSlice(t, a.AsFloat64(), kerneltest.MatMul(q.AsFloat64(), rData, 2, 2, 2), 1e-12)
}

func TestQRKernel_RankDeficient(t *testing.T) {
	qr := lookupQR(t, newTestBackend())

	// Second column is twice the first; third is zero.
	a := tensor.MustFromSlice([]float64{
		1, 2, 0,
		2, 4, 0,
		3, 6, 0,
	}, tensor.Shape{3, 3}, tensor.CPU)

	q, r, err := qr.Call(a, kernel.QRModeReduced)
	require.NoError(t, err)
	assert.InDeltaSlice(t, a.AsFloat64(), kerneltest.MatMul(q.AsFloat64(), r.AsFloat64(), 3, 3, 3), 1e-12)
	assert.InDelta(t, 0, r.AsFloat64()[8], 1e-12)
}

func TestQRKernel_InputUnchanged(t *testing.T) {
	qr := lookupQR(t, newTestBackend())
	data := []float32{1, 2, 3, 4, 5, 6}
	a := tensor.MustFromSlice(data, tensor.Shape{3, 2}, tensor.CPU)

	_, _, err := qr.Call(a, kernel.QRModeComplete)
	require.NoError(t, err)
	assert.Equal(t, data, a.AsFloat32())
}

func TestQRKernel_Errors(t *testing.T) {
	qr := lookupQR(t, newTestBackend())

	t.Run("IntegerDType", func(t *testing.T) {
		a := tensor.MustFromSlice([]int32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
		_, _, err := qr.Call(a, kernel.QRModeReduced)
		assert.True(t, errors.Is(err, kernel.ErrUnsupportedDType))
	})

	t.Run("UnknownMode", func(t *testing.T) {
		a := tensor.MustFromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
		_, _, err := qr.Call(a, kernel.QRMode(9))
		assert.True(t, errors.Is(err, kernel.ErrUnsupportedMode))
	})

	t.Run("NonFinite", func(t *testing.T) {
		a := tensor.MustFromSlice([]float64{1, math.NaN(), 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
		_, _, err := qr.Call(a, kernel.QRModeReduced)
		assert.True(t, errors.Is(err, kernel.ErrNonFinite))

		a = tensor.MustFromSlice([]float64{1, 2, math.Inf(-1), 4}, tensor.Shape{2, 2}, tensor.CPU)
		_, _, err = qr.Call(a, kernel.QRModeR)
		assert.True(t, errors.Is(err, kernel.ErrNonFinite))
	})
}
