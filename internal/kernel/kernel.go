// Package kernel declares the named capabilities that compute backends implement.
//
// A kernel is one operation family (e.g. "Dot", "QR") as provided by one backend.
// Kernels perform no validation of their own: every documented precondition is
// the caller's responsibility, and callers normally reach kernels only through
// the dispatcher in internal/linalg, which validates shapes once up front.
package kernel

// Kernel is implemented by every backend kernel.
// Name identifies the operation family and is the registry key.
type Kernel interface {
	Name() string
}
