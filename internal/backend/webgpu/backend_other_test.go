//go:build !windows

package webgpu

import (
	"testing"

	"github.com/born-ml/linalg/internal/backend"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/stretchr/testify/assert"
)

var _ backend.Backend = (*Backend)(nil)

func TestNew_Unavailable(t *testing.T) {
	b, err := New()
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, IsAvailable())
}

func TestStub_Metadata(t *testing.T) {
	var b Backend
	assert.Equal(t, "webgpu", b.Name())
	assert.Equal(t, tensor.WebGPU, b.Device())
	assert.Zero(t, b.Kernels().Len())
	b.Release()
}
