package kernel

import (
	"strings"

	"github.com/born-ml/linalg/internal/tensor"
	"github.com/pkg/errors"
)

// Operation names. Constant for every kernel of the given kind.
const (
	DotName = "Dot"
	QRName  = "QR"
)

// DotKernel computes a matrix product into a preallocated output.
//
// All operands are matrices (two-dimensional tensors). Let the shapes of a and b
// be (M, K) and (L, N). Then K == L must hold, out must have shape (M, N), and
// a, b and out must share one dtype. Otherwise the behavior is undefined.
//
// The returned error reports backend failures only (device errors, a dtype the
// backend cannot handle), never precondition violations.
type DotKernel interface {
	Kernel
	Call(a, b, out *tensor.RawTensor) error
}

// QRKernel factors a matrix into an orthonormal-column Q and an upper-triangular R.
//
// a must be two-dimensional with a floating point dtype. Result shapes for
// a of shape (M, N) and K = min(M, N):
//
//	reduced:  Q (M, K), R (K, N)
//	complete: Q (M, M), R (M, N)
//	r:        nil,      R (K, N)
//	raw:      h (N, M), tau (K)
//
// Results are newly allocated and owned by the caller.
type QRKernel interface {
	Kernel
	Call(a *tensor.RawTensor, mode QRMode) (q, r *tensor.RawTensor, err error)
}

// DotBase fixes Name for Dot kernels. Embed it in backend implementations.
type DotBase struct{}

// Name returns DotName.
func (DotBase) Name() string { return DotName }

// QRBase fixes Name for QR kernels. Embed it in backend implementations.
type QRBase struct{}

// Name returns QRName.
func (QRBase) Name() string { return QRName }

// QRMode selects the variant of a QR decomposition.
type QRMode int

// Supported QR modes, matching numpy.linalg.qr.
const (
	QRModeReduced QRMode = iota
	QRModeComplete
	QRModeR
	QRModeRaw
)

var qrModeNames = [...]string{"reduced", "complete", "r", "raw"}

// String returns the mode's name.
func (m QRMode) String() string {
	if m < 0 || int(m) >= len(qrModeNames) {
		return "unknown"
	}
	return qrModeNames[m]
}

// Valid reports whether m is one of the defined modes.
func (m QRMode) Valid() bool {
	return m >= QRModeReduced && m <= QRModeRaw
}

// ParseQRMode parses "reduced", "complete", "r" or "raw" (case-insensitive).
func ParseQRMode(s string) (QRMode, error) {
	for i, name := range qrModeNames {
		if strings.EqualFold(s, name) {
			return QRMode(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedMode, "qr mode %q", s)
}

// QRShapes returns the shapes of both results of a QR decomposition of an
// m×n matrix. q is nil in QRModeR.
func QRShapes(m, n int, mode QRMode) (q, r tensor.Shape) {
	k := min(m, n)
	switch mode {
	case QRModeComplete:
		return tensor.Shape{m, m}, tensor.Shape{m, n}
	case QRModeR:
		return nil, tensor.Shape{k, n}
	case QRModeRaw:
		return tensor.Shape{n, m}, tensor.Shape{k}
	default:
		return tensor.Shape{m, k}, tensor.Shape{k, n}
	}
}
