package linalg

import (
	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// QR decomposes the matrix a according to mode.
// See kernel.QRKernel for the shapes of q and r; q is nil in kernel.QRModeR.
//
// Numeric failures reported by the backend (e.g. kernel.ErrNonFinite) are
// returned wrapped with the backend name.
func (d *Dispatcher) QR(a *tensor.RawTensor, mode kernel.QRMode) (q, r *tensor.RawTensor, err error) {
	if a == nil {
		return nil, nil, errors.Wrap(ErrNilTensor, "qr")
	}
	if _, _, ok := a.Shape().Matrix(); !ok {
		return nil, nil, errors.Wrapf(ErrShapeMismatch, "qr: a must be 2-D, got %v", a.Shape())
	}
	if !a.DType().IsFloat() {
		return nil, nil, errors.Wrapf(kernel.ErrUnsupportedDType, "qr: %s", a.DType())
	}
	if !mode.Valid() {
		return nil, nil, errors.Wrapf(kernel.ErrUnsupportedMode, "qr: mode %d", int(mode))
	}

	qr, be, err := lookup[kernel.QRKernel](d, a.Device(), kernel.QRName)
	if err != nil {
		return nil, nil, errors.Wrap(err, "qr")
	}
	klog.V(3).InfoS("dispatch", "op", kernel.QRName, "backend", be.Name(),
		"a", a.Shape(), "dtype", a.DType(), "mode", mode)

	q, r, err = qr.Call(a, mode)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "qr on %s", be.Name())
	}
	return q, r, nil
}
