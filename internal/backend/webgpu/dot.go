//go:build windows

package webgpu

import (
	"encoding/binary"

	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/pkg/errors"
)

// DotKernel multiplies float32 matrices with a compute shader.
type DotKernel struct {
	kernel.DotBase
	backend *Backend
}

// Call computes out = a·b on the GPU and copies the result into out's buffer.
// Shapes are not checked; see kernel.DotKernel.
func (k *DotKernel) Call(a, b, out *tensor.RawTensor) error {
	if a.DType() != tensor.Float32 {
		return errors.Wrapf(kernel.ErrUnsupportedDType, "webgpu dot: %s", a.DType())
	}
	if err := k.backend.runMatMul(a, b, out); err != nil {
		return errors.Wrap(err, "webgpu dot")
	}
	return nil
}

// runMatMul executes C = A·B on the GPU. A is [M, K], B is [K, N], C is [M, N].
func (b *Backend) runMatMul(a, other, out *tensor.RawTensor) error {
	//nolint:gosec // G115: Safe conversions, shape dimensions are non-negative
	M := uint32(a.Shape()[0])
	//nolint:gosec // G115: Safe conversions, shape dimensions are non-negative
	K := uint32(a.Shape()[1])
	//nolint:gosec // G115: Safe conversions, shape dimensions are non-negative
	N := uint32(other.Shape()[1])

	shader := b.compileShader("matmul", matmulShader)
	pipeline := b.getOrCreatePipeline("matmul", shader)

	bufferA := b.createBuffer(a.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferA.Release()

	bufferOther := b.createBuffer(other.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferOther.Release()

	//nolint:gosec // G115: Safe conversion, ByteSize() returns non-negative int
	resultSize := uint64(out.ByteSize())
	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()

	// M, K, N: u32 each, padded to 16 bytes.
	params := make([]byte, 16)
	binary.LittleEndian.PutUint32(params[0:4], M)
	binary.LittleEndian.PutUint32(params[4:8], K)
	binary.LittleEndian.PutUint32(params[8:12], N)
	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	//nolint:gosec // G115: Safe conversions, ByteSize() returns non-negative int
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferA, 0, uint64(a.ByteSize())),
		wgpu.BufferBindingEntry(1, bufferOther, 0, uint64(other.ByteSize())),
		wgpu.BufferBindingEntry(2, bufferResult, 0, resultSize),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 16),
	})
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)
	computePass.DispatchWorkgroups((N+workgroupSize-1)/workgroupSize, (M+workgroupSize-1)/workgroupSize, 1)
	computePass.End()

	b.queue.Submit(encoder.Finish(nil))

	return b.readBuffer(bufferResult, out.Data()[:resultSize])
}
