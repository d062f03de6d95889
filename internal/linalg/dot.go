package linalg

import (
	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// DotInto computes out = a·b for matrices a (M, K), b (K, N) and a
// preallocated out (M, N). All three must share dtype and device.
func (d *Dispatcher) DotInto(a, b, out *tensor.RawTensor) error {
	if err := checkDot(a, b, out); err != nil {
		return err
	}

	dot, be, err := lookup[kernel.DotKernel](d, a.Device(), kernel.DotName)
	if err != nil {
		return errors.Wrap(err, "dot")
	}
	klog.V(3).InfoS("dispatch", "op", kernel.DotName, "backend", be.Name(),
		"a", a.Shape(), "b", b.Shape(), "dtype", a.DType())

	if err := dot.Call(a, b, out); err != nil {
		return errors.Wrapf(err, "dot on %s", be.Name())
	}
	return nil
}

// Dot computes the dot product of a and b into a new tensor.
//
// Shapes follow numpy.dot for a right operand of rank two or less:
//
//	(M, K)  · (K, N) -> (M, N)
//	(..., K) · (K, N) -> (..., N)
//	(..., K) · (K)    -> (...)
//	(K)     · (K)    -> ()       scalar
//	()      · x      -> shape of x, scalar multiple
//
// Every case is reduced to a single 2-D Dot kernel call over reshaped views.
func (d *Dispatcher) Dot(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(ErrNilTensor, "dot")
	}
	if a.DType() != b.DType() {
		return nil, errors.Wrapf(ErrDTypeMismatch, "dot: %s and %s", a.DType(), b.DType())
	}
	if a.Device() != b.Device() {
		return nil, errors.Wrapf(ErrDeviceMismatch, "dot: %s and %s", a.Device(), b.Device())
	}

	a2, b2, outShape, err := dotOperands(a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}

	av, err := a.Reshape(a2)
	if err != nil {
		return nil, errors.Wrap(err, "dot")
	}
	bv, err := b.Reshape(b2)
	if err != nil {
		return nil, errors.Wrap(err, "dot")
	}
	out, err := tensor.NewRaw(outShape, a.DType(), a.Device())
	if err != nil {
		return nil, errors.Wrap(err, "dot")
	}
	outView, err := out.Reshape(tensor.Shape{a2[0], b2[1]})
	if err != nil {
		return nil, errors.Wrap(err, "dot")
	}

	if err := d.DotInto(av, bv, outView); err != nil {
		return nil, err
	}
	return out, nil
}

// dotOperands maps the shapes of a and b to the 2-D shapes handed to the
// kernel and the shape of the result.
func dotOperands(a, b tensor.Shape) (a2, b2, out tensor.Shape, err error) {
	switch {
	case len(a) == 0:
		// Scalar times b: (1, 1)·(1, |b|).
		return tensor.Shape{1, 1}, tensor.Shape{1, b.NumElements()}, b.Clone(), nil
	case len(b) == 0:
		// a times scalar: (|a|, 1)·(1, 1).
		return tensor.Shape{a.NumElements(), 1}, tensor.Shape{1, 1}, a.Clone(), nil
	case len(b) > 2:
		return nil, nil, nil, errors.Wrapf(ErrShapeMismatch, "dot: rhs %v has rank %d > 2", b, len(b))
	}

	k := a[len(a)-1]
	if b[0] != k {
		return nil, nil, nil, errors.Wrapf(ErrShapeMismatch, "dot: %v · %v (contracted dims %d != %d)", a, b, k, b[0])
	}

	rows := a[:len(a)-1].NumElements()
	n := 1
	out = a[:len(a)-1].Clone()
	if len(b) == 2 {
		n = b[1]
		out = append(out, n)
	}
	return tensor.Shape{rows, k}, tensor.Shape{k, n}, out, nil
}

// checkDot validates the kernel preconditions of DotInto.
func checkDot(a, b, out *tensor.RawTensor) error {
	if a == nil || b == nil || out == nil {
		return errors.Wrap(ErrNilTensor, "dot")
	}

	m, k, ok := a.Shape().Matrix()
	if !ok {
		return errors.Wrapf(ErrShapeMismatch, "dot: a must be 2-D, got %v", a.Shape())
	}
	l, n, ok := b.Shape().Matrix()
	if !ok {
		return errors.Wrapf(ErrShapeMismatch, "dot: b must be 2-D, got %v", b.Shape())
	}
	if k != l {
		return errors.Wrapf(ErrShapeMismatch, "dot: %v · %v (contracted dims %d != %d)", a.Shape(), b.Shape(), k, l)
	}
	if want := (tensor.Shape{m, n}); !out.Shape().Equal(want) {
		return errors.Wrapf(ErrShapeMismatch, "dot: out is %v, want %v", out.Shape(), want)
	}

	if a.DType() != b.DType() || a.DType() != out.DType() {
		return errors.Wrapf(ErrDTypeMismatch, "dot: a %s, b %s, out %s", a.DType(), b.DType(), out.DType())
	}
	if a.Device() != b.Device() || a.Device() != out.Device() {
		return errors.Wrapf(ErrDeviceMismatch, "dot: a %s, b %s, out %s", a.Device(), b.Device(), out.Device())
	}
	return nil
}
