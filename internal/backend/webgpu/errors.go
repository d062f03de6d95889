// Package webgpu implements linalg kernels as WebGPU compute shaders.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package webgpu

import "github.com/pkg/errors"

// Name is the configuration identifier of the WebGPU backend.
const Name = "webgpu"

// ErrUnavailable is returned by New when no WebGPU adapter can be used.
var ErrUnavailable = errors.New("webgpu: not available")
