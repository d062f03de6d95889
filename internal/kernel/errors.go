package kernel

import "github.com/pkg/errors"

// Kernel errors. Match with errors.Is; they are usually wrapped with context.
var (
	ErrKernelNotFound   = errors.New("kernel: not found")
	ErrDuplicateKernel  = errors.New("kernel: already registered")
	ErrKernelType       = errors.New("kernel: registered kernel has unexpected type")
	ErrUnsupportedDType = errors.New("kernel: unsupported dtype")
	ErrUnsupportedMode  = errors.New("kernel: unsupported qr mode")
	ErrNonFinite        = errors.New("kernel: input contains NaN or Inf")
)
