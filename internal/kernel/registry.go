package kernel

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Registry maps operation names to the kernels of one backend.
// It is safe for concurrent use.
type Registry struct {
	owner   string
	mu      sync.RWMutex
	kernels map[string]Kernel
}

// NewRegistry creates an empty registry. owner names the backend in logs and errors.
func NewRegistry(owner string) *Registry {
	return &Registry{
		owner:   owner,
		kernels: make(map[string]Kernel),
	}
}

// Register adds a kernel under its Name.
// It returns ErrDuplicateKernel if the name is already taken.
func (r *Registry) Register(k Kernel) error {
	name := k.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.kernels[name]; exists {
		return errors.Wrapf(ErrDuplicateKernel, "%s: %s", r.owner, name)
	}
	r.kernels[name] = k
	klog.V(4).InfoS("registered kernel", "backend", r.owner, "kernel", name)
	return nil
}

// MustRegister is like Register but panics on error.
// Backends use it while wiring their fixed kernel set.
func (r *Registry) MustRegister(kernels ...Kernel) {
	for _, k := range kernels {
		if err := r.Register(k); err != nil {
			panic(err)
		}
	}
}

// Get returns the kernel registered under name.
func (r *Registry) Get(name string) (Kernel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kernels[name]
	return k, ok
}

// Names returns the registered operation names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.kernels))
	for name := range r.kernels {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of registered kernels.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.kernels)
}

// Lookup returns the kernel registered under name as a K.
//
// Example:
//
//	dot, err := kernel.Lookup[kernel.DotKernel](reg, kernel.DotName)
func Lookup[K Kernel](r *Registry, name string) (K, error) {
	var zero K
	k, ok := r.Get(name)
	if !ok {
		return zero, errors.Wrapf(ErrKernelNotFound, "%s: %s", r.owner, name)
	}
	typed, ok := k.(K)
	if !ok {
		return zero, errors.Wrapf(ErrKernelType, "%s: %s is %T", r.owner, name, k)
	}
	return typed, nil
}
