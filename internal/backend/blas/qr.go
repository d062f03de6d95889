package blas

import (
	"math"

	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// QRKernel computes QR decompositions with gonum's mat.QR (LAPACK dgeqrf).
// Raw mode is not available through gonum and returns kernel.ErrUnsupportedMode.
type QRKernel struct {
	kernel.QRBase
}

// Call factors a (m×n) according to mode. See kernel.QRKernel for result shapes.
func (k *QRKernel) Call(a *tensor.RawTensor, mode kernel.QRMode) (q, r *tensor.RawTensor, err error) {
	if !a.DType().IsFloat() {
		return nil, nil, errors.Wrapf(kernel.ErrUnsupportedDType, "blas qr: %s", a.DType())
	}
	switch mode {
	case kernel.QRModeReduced, kernel.QRModeComplete, kernel.QRModeR:
	default:
		return nil, nil, errors.Wrapf(kernel.ErrUnsupportedMode, "blas qr: %s", mode)
	}

	m, n := a.Shape()[0], a.Shape()[1]
	data := a.Float64s()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, errors.Wrapf(kernel.ErrNonFinite, "blas qr: element %d of %v", i, a.Shape())
		}
	}

	qFull, rFull := factorize(mat.NewDense(m, n, data))
	qShape, rShape := kernel.QRShapes(m, n, mode)

	r, err = toTensor(rFull.Slice(0, rShape[0], 0, n), rShape, a)
	if err != nil {
		return nil, nil, err
	}
	if mode == kernel.QRModeR {
		return nil, r, nil
	}
	q, err = toTensor(qFull.Slice(0, m, 0, qShape[1]), qShape, a)
	if err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

// factorize returns the complete factors Q (m×m) and R (m×n) of a.
// gonum only factors m >= n; for wide inputs the leading m×m block is factored
// and the trailing columns of R are Qᵀ·A[:, m:].
func factorize(a *mat.Dense) (q, r *mat.Dense) {
	m, n := a.Dims()

	var f mat.QR
	if m >= n {
		f.Factorize(a)
		q, r = &mat.Dense{}, &mat.Dense{}
		f.QTo(q)
		f.RTo(r)
		return q, r
	}

	f.Factorize(a.Slice(0, m, 0, m))
	q, lead := &mat.Dense{}, &mat.Dense{}
	f.QTo(q)
	f.RTo(lead)

	r = mat.NewDense(m, n, nil)
	r.Slice(0, m, 0, m).(*mat.Dense).Copy(lead)
	r.Slice(0, m, m, n).(*mat.Dense).Mul(q.T(), a.Slice(0, m, m, n))
	return q, r
}

// toTensor copies a gonum matrix into a new tensor shaped and typed like like.
func toTensor(src mat.Matrix, shape tensor.Shape, like *tensor.RawTensor) (*tensor.RawTensor, error) {
	rows, cols := src.Dims()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, src.At(i, j))
		}
	}
	return tensor.FromFloat64s(data, shape, like.DType(), like.Device())
}
