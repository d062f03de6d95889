// Package kerneltest provides contract checks that every Dot and QR kernel must pass.
package kerneltest

import (
	"math"
	"math/rand"
	"testing"

	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tolerance returns the comparison tolerance used for a dtype.
func Tolerance(dtype tensor.DataType) float64 {
	if dtype == tensor.Float32 {
		return 1e-4
	}
	return 1e-10
}

// RandomMatrix returns rows*cols uniform values in [-1, 1).
func RandomMatrix(rng *rand.Rand, rows, cols int) []float64 {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	return data
}

// MatMul is the reference product of row-major a (m×k) and b (k×n).
func MatMul(a, b []float64, m, k, n int) []float64 {
	c := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for kk := 0; kk < k; kk++ {
				sum += a[i*k+kk] * b[kk*n+j]
			}
			c[i*n+j] = sum
		}
	}
	return c
}

// Transpose returns the transpose of row-major a (rows×cols).
func Transpose(a []float64, rows, cols int) []float64 {
	t := make([]float64, len(a))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t[j*rows+i] = a[i*cols+j]
		}
	}
	return t
}

// DotShapes are the (M, K, N) triples exercised by CheckDot.
var DotShapes = [][3]int{{1, 1, 1}, {2, 3, 2}, {4, 1, 5}, {7, 9, 3}, {16, 16, 16}, {31, 17, 33}}

// CheckDot verifies out[i][j] == Σ_k a[i][k]·b[k][j] for every shape in
// DotShapes and every dtype given.
func CheckDot(t *testing.T, dot kernel.DotKernel, device tensor.Device, dtypes ...tensor.DataType) {
	t.Helper()
	require.Equal(t, kernel.DotName, dot.Name())

	rng := rand.New(rand.NewSource(42))
	for _, dtype := range dtypes {
		for _, s := range DotShapes {
			m, k, n := s[0], s[1], s[2]
			aData, bData := RandomMatrix(rng, m, k), RandomMatrix(rng, k, n)
			if !dtype.IsFloat() {
				for i := range aData {
					aData[i] = math.Round(aData[i] * 8)
				}
				for i := range bData {
					bData[i] = math.Round(bData[i] * 8)
				}
			}

			a, err := tensor.FromFloat64s(aData, tensor.Shape{m, k}, dtype, device)
			require.NoError(t, err)
			b, err := tensor.FromFloat64s(bData, tensor.Shape{k, n}, dtype, device)
			require.NoError(t, err)
			out, err := tensor.NewRaw(tensor.Shape{m, n}, dtype, device)
			require.NoError(t, err)

			require.NoError(t, dot.Call(a, b, out), "%s %v", dtype, s)
			assert.InDeltaSlice(t, MatMul(aData, bData, m, k, n), out.Float64s(), Tolerance(dtype),
				"%s %v", dtype, s)
		}
	}
}

// QRShapes are the (M, N) pairs exercised by CheckQR: square, tall and wide.
var QRShapes = [][2]int{{1, 1}, {3, 3}, {5, 3}, {3, 5}, {8, 8}, {12, 4}, {2, 7}}

// CheckQR verifies the decomposition contract for every shape in QRShapes:
// result shapes match kernel.QRShapes, Q·R reconstructs a, QᵀQ = I and R is
// upper triangular. In raw mode Q is rebuilt from the reflectors first.
func CheckQR(t *testing.T, qr kernel.QRKernel, device tensor.Device, modes []kernel.QRMode, dtypes ...tensor.DataType) {
	t.Helper()
	require.Equal(t, kernel.QRName, qr.Name())

	rng := rand.New(rand.NewSource(43))
	for _, dtype := range dtypes {
		for _, mode := range modes {
			for _, s := range QRShapes {
				m, n := s[0], s[1]
				aData := RandomMatrix(rng, m, n)
				a, err := tensor.FromFloat64s(aData, tensor.Shape{m, n}, dtype, device)
				require.NoError(t, err)
				aData = a.Float64s() // Account for float32 rounding of the input.

				q, r, err := qr.Call(a, mode)
				require.NoError(t, err, "%s %s %v", dtype, mode, s)
				checkQRResult(t, aData, m, n, q, r, mode, dtype)
			}
		}
	}
}

func checkQRResult(t *testing.T, a []float64, m, n int, q, r *tensor.RawTensor, mode kernel.QRMode, dtype tensor.DataType) {
	t.Helper()
	tol := Tolerance(dtype)
	wantQ, wantR := kernel.QRShapes(m, n, mode)
	msg := []any{"%s %s (%d, %d)", dtype, mode, m, n}

	require.NotNil(t, r, msg...)
	assert.Equal(t, wantR, r.Shape(), msg...)
	assert.Equal(t, dtype, r.DType(), msg...)

	if mode == kernel.QRModeR {
		assert.Nil(t, q, msg...)
		// RᵀR == AᵀA since Q has orthonormal columns.
		rData := r.Float64s()
		k := wantR[0]
		assert.InDeltaSlice(t, MatMul(Transpose(a, m, n), a, n, m, n),
			MatMul(Transpose(rData, k, n), rData, n, k, n), 10*tol, msg...)
		assertUpperTriangular(t, rData, k, n)
		return
	}

	require.NotNil(t, q, msg...)
	assert.Equal(t, wantQ, q.Shape(), msg...)

	if mode == kernel.QRModeRaw {
		qData, rData := ExpandRaw(q.Float64s(), r.Float64s(), m, n)
		checkFactors(t, a, qData, rData, m, n, min(m, n), tol, msg...)
		return
	}

	checkFactors(t, a, q.Float64s(), r.Float64s(), m, n, wantQ[1], tol, msg...)
}

func checkFactors(t *testing.T, a, q, r []float64, m, n, qCols int, tol float64, msg ...any) {
	t.Helper()
	assert.InDeltaSlice(t, a, MatMul(q, r, m, qCols, n), 10*tol, msg...)

	qtq := MatMul(Transpose(q, m, qCols), q, qCols, m, qCols)
	eye := make([]float64, qCols*qCols)
	for i := 0; i < qCols; i++ {
		eye[i*qCols+i] = 1
	}
	assert.InDeltaSlice(t, eye, qtq, 10*tol, msg...)
	assertUpperTriangular(t, r, qCols, n)
}

func assertUpperTriangular(t *testing.T, r []float64, rows, cols int) {
	t.Helper()
	for i := 0; i < rows; i++ {
		for j := 0; j < min(i, cols); j++ {
			assert.Zero(t, r[i*cols+j], "R[%d][%d] below diagonal", i, j)
		}
	}
}

// ExpandRaw turns raw-mode output (h is n×m, tau has min(m, n) entries) into
// the reduced Q (m×k) and R (k×n), following the LAPACK geqrf conventions.
func ExpandRaw(h, tau []float64, m, n int) (q, r []float64) {
	k := len(tau)
	compact := Transpose(h, n, m) // m×n

	r = make([]float64, k*n)
	for i := 0; i < k; i++ {
		for j := i; j < n; j++ {
			r[i*n+j] = compact[i*n+j]
		}
	}

	q = make([]float64, m*k)
	for i := 0; i < k; i++ {
		q[i*k+i] = 1
	}
	for j := k - 1; j >= 0; j-- {
		v := make([]float64, m)
		v[j] = 1
		for i := j + 1; i < m; i++ {
			v[i] = compact[i*n+j]
		}
		for c := 0; c < k; c++ {
			var w float64
			for i := j; i < m; i++ {
				w += v[i] * q[i*k+c]
			}
			w *= tau[j]
			for i := j; i < m; i++ {
				q[i*k+c] -= w * v[i]
			}
		}
	}
	return q, r
}
