// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package webgpu_test

import (
	"testing"

	"github.com/born-ml/linalg/backend/webgpu"
	"github.com/born-ml/linalg/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	gpu, err := webgpu.New()
	if err != nil {
		assert.True(t, errors.Is(err, webgpu.ErrUnavailable), "got %v", err)
		return
	}
	defer gpu.Release()

	assert.Equal(t, webgpu.Name, gpu.Name())
	assert.Equal(t, tensor.WebGPU, gpu.Device())
	assert.Equal(t, []string{"Dot"}, gpu.Kernels().Names())
}
