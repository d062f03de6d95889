package cpu

import (
	"math"

	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/pkg/errors"
)

// QRKernel computes Householder QR decompositions on the CPU.
// Float32 inputs are factored in float64 and rounded on output.
type QRKernel struct {
	kernel.QRBase
	cfg Config
}

// Call factors a (m×n) according to mode. See kernel.QRKernel for result shapes.
func (k *QRKernel) Call(a *tensor.RawTensor, mode kernel.QRMode) (q, r *tensor.RawTensor, err error) {
	if !a.DType().IsFloat() {
		return nil, nil, errors.Wrapf(kernel.ErrUnsupportedDType, "cpu qr: %s", a.DType())
	}
	if !mode.Valid() {
		return nil, nil, errors.Wrapf(kernel.ErrUnsupportedMode, "cpu qr: mode %d", int(mode))
	}

	m, n := a.Shape()[0], a.Shape()[1]
	work := a.Float64s()
	for i, v := range work {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, errors.Wrapf(kernel.ErrNonFinite, "cpu qr: element %d of %v", i, a.Shape())
		}
	}

	f := householder(work, m, n, k.cfg.Parallel)
	qShape, rShape := kernel.QRShapes(m, n, mode)

	switch mode {
	case kernel.QRModeRaw:
		q, err = tensor.FromFloat64s(f.transposed(), qShape, a.DType(), a.Device())
		if err != nil {
			return nil, nil, err
		}
		r, err = tensor.FromFloat64s(f.tau, rShape, a.DType(), a.Device())
		if err != nil {
			return nil, nil, err
		}
		return q, r, nil
	case kernel.QRModeR:
		r, err = tensor.FromFloat64s(f.upper(rShape[0]), rShape, a.DType(), a.Device())
		if err != nil {
			return nil, nil, err
		}
		return nil, r, nil
	default:
		q, err = tensor.FromFloat64s(f.formQ(qShape[1], k.cfg.Parallel), qShape, a.DType(), a.Device())
		if err != nil {
			return nil, nil, err
		}
		r, err = tensor.FromFloat64s(f.upper(rShape[0]), rShape, a.DType(), a.Device())
		if err != nil {
			return nil, nil, err
		}
		return q, r, nil
	}
}

// factorization is the compact geqrf-style result: R on and above the diagonal
// of a, reflector tails below it, and one scale factor per reflector.
type factorization struct {
	a    []float64 // m×n row-major
	tau  []float64 // min(m, n)
	m, n int
}

// householder overwrites a (m×n, row-major) with its compact QR factorization.
// Reflector j is H_j = I - tau_j * v * vᵀ with v[j] = 1 and v[j+1:] stored in
// column j below the diagonal.
func householder(a []float64, m, n int, cfg parallel.Config) *factorization {
	k := min(m, n)
	tau := make([]float64, k)

	for j := 0; j < k; j++ {
		alpha := a[j*n+j]
		var xnorm float64
		for i := j + 1; i < m; i++ {
			xnorm = math.Hypot(xnorm, a[i*n+j])
		}
		if xnorm == 0 {
			// Column already reduced: H_j = I.
			continue
		}

		beta := -math.Copysign(math.Hypot(alpha, xnorm), alpha)
		tau[j] = (beta - alpha) / beta
		scale := 1 / (alpha - beta)
		for i := j + 1; i < m; i++ {
			a[i*n+j] *= scale
		}
		a[j*n+j] = beta

		applyReflector(a, n, j, j, m, j+1, n, tau[j], a, n, cfg)
	}

	return &factorization{a: a, tau: tau, m: m, n: n}
}

// applyReflector applies H = I - t*v*vᵀ from the left to rows [row0, m) and
// columns [c0, c1) of dst (row stride dstStride). v is column col of the
// factored matrix f (row stride fStride), with an implicit 1 at row row0.
func applyReflector(f []float64, fStride, col, row0, m, c0, c1 int, t float64, dst []float64, dstStride int, cfg parallel.Config) {
	if t == 0 || c0 >= c1 {
		return
	}
	parallel.For(c1-c0, func(off int) {
		c := c0 + off
		w := dst[row0*dstStride+c]
		for i := row0 + 1; i < m; i++ {
			w += f[i*fStride+col] * dst[i*dstStride+c]
		}
		w *= t
		dst[row0*dstStride+c] -= w
		for i := row0 + 1; i < m; i++ {
			dst[i*dstStride+c] -= w * f[i*fStride+col]
		}
	}, cfg)
}

// upper returns the first rows rows of R (rows×n), zero below the diagonal.
func (f *factorization) upper(rows int) []float64 {
	r := make([]float64, rows*f.n)
	for i := 0; i < min(rows, f.m); i++ {
		for j := i; j < f.n; j++ {
			r[i*f.n+j] = f.a[i*f.n+j]
		}
	}
	return r
}

// formQ accumulates the first cols columns of Q = H_0·H_1···H_{k-1} (m×cols).
func (f *factorization) formQ(cols int, cfg parallel.Config) []float64 {
	q := make([]float64, f.m*cols)
	for i := 0; i < min(f.m, cols); i++ {
		q[i*cols+i] = 1
	}
	for j := len(f.tau) - 1; j >= 0; j-- {
		applyReflector(f.a, f.n, j, j, f.m, 0, cols, f.tau[j], q, cols, cfg)
	}
	return q
}

// transposed returns the compact factorization as an n×m matrix, the layout
// LAPACK produces for a row-major input.
func (f *factorization) transposed() []float64 {
	h := make([]float64, f.n*f.m)
	for i := 0; i < f.m; i++ {
		for j := 0; j < f.n; j++ {
			h[j*f.m+i] = f.a[i*f.n+j]
		}
	}
	return h
}
