package blas

import (
	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/pkg/errors"
	gtensor "gorgonia.org/tensor"
)

// DotKernel multiplies float32/float64 matrices with gorgonia's StdEng.
// The output tensor's buffer is handed to the engine as the preallocated
// result, so the product is written in place.
type DotKernel struct {
	kernel.DotBase
	engine gtensor.StdEng
}

// Call computes out = a·b. Shapes are not checked; see kernel.DotKernel.
func (k *DotKernel) Call(a, b, out *tensor.RawTensor) error {
	ta, err := dense(a)
	if err != nil {
		return err
	}
	tb, err := dense(b)
	if err != nil {
		return err
	}
	tout, err := dense(out)
	if err != nil {
		return err
	}

	if err := k.engine.MatMul(ta, tb, tout); err != nil {
		return errors.Wrap(err, "blas dot")
	}
	return nil
}

// dense wraps a tensor's buffer without copying.
func dense(t *tensor.RawTensor) (*gtensor.Dense, error) {
	shape := []int(t.Shape())
	switch t.DType() {
	case tensor.Float32:
		return gtensor.New(gtensor.WithShape(shape...), gtensor.WithBacking(t.AsFloat32())), nil
	case tensor.Float64:
		return gtensor.New(gtensor.WithShape(shape...), gtensor.WithBacking(t.AsFloat64())), nil
	default:
		return nil, errors.Wrapf(kernel.ErrUnsupportedDType, "blas dot: %s", t.DType())
	}
}
