//go:build windows

package webgpu

import (
	"testing"

	"github.com/born-ml/linalg/internal/backend"
	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/kernel/kerneltest"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ backend.Backend = (*Backend)(nil)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := New()
	if err != nil {
		t.Skipf("WebGPU not available on this system: %v", err)
	}
	t.Cleanup(b.Release)
	return b
}

func TestIsAvailable(t *testing.T) {
	t.Logf("WebGPU available: %v", IsAvailable())
}

func TestNew(t *testing.T) {
	b := newTestBackend(t)
	assert.Equal(t, "webgpu", b.Name())
	assert.Equal(t, tensor.WebGPU, b.Device())
	assert.Equal(t, []string{kernel.DotName}, b.Kernels().Names())
}

func TestDotKernel_Contract(t *testing.T) {
	b := newTestBackend(t)
	dot, err := kernel.Lookup[kernel.DotKernel](b.Kernels(), kernel.DotName)
	require.NoError(t, err)

	kerneltest.CheckDot(t, dot, tensor.WebGPU, tensor.Float32)
}

func TestDotKernel_Float64Rejected(t *testing.T) {
	b := newTestBackend(t)
	dot, err := kernel.Lookup[kernel.DotKernel](b.Kernels(), kernel.DotName)
	require.NoError(t, err)

	a := tensor.MustFromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.WebGPU)
	out, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Float64, tensor.WebGPU)
	require.NoError(t, err)
	assert.ErrorIs(t, dot.Call(a, a, out), kernel.ErrUnsupportedDType)
}
