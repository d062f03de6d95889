package linalg

import "github.com/pkg/errors"

// Dispatch errors. Kernel-level errors (kernel.ErrUnsupportedDType,
// kernel.ErrNonFinite, ...) are propagated unchanged beneath added context.
var (
	ErrNilTensor        = errors.New("linalg: nil tensor")
	ErrShapeMismatch    = errors.New("linalg: shape mismatch")
	ErrDTypeMismatch    = errors.New("linalg: dtype mismatch")
	ErrDeviceMismatch   = errors.New("linalg: device mismatch")
	ErrBackendNotFound  = errors.New("linalg: backend not found")
	ErrDuplicateBackend = errors.New("linalg: backend already registered")
)
