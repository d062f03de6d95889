package cpu

import (
	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
	"github.com/pkg/errors"
)

// DotKernel multiplies 2-D tensors on the CPU.
// Supported dtypes: float32, float64, int32, int64.
type DotKernel struct {
	kernel.DotBase
	cfg Config
}

// Call computes out = a·b. Shapes are not checked; see kernel.DotKernel.
func (k *DotKernel) Call(a, b, out *tensor.RawTensor) error {
	m, kDim := a.Shape()[0], a.Shape()[1]
	n := b.Shape()[1]

	switch a.DType() {
	case tensor.Float32:
		matmul(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, kDim, n, k.cfg)
	case tensor.Float64:
		matmul(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, kDim, n, k.cfg)
	case tensor.Int32:
		matmul(out.AsInt32(), a.AsInt32(), b.AsInt32(), m, kDim, n, k.cfg)
	case tensor.Int64:
		matmul(out.AsInt64(), a.AsInt64(), b.AsInt64(), m, kDim, n, k.cfg)
	default:
		return errors.Wrapf(kernel.ErrUnsupportedDType, "cpu dot: %s", a.DType())
	}
	return nil
}

type number interface {
	float32 | float64 | int32 | int64
}

// matmul computes C = A·B for row-major A (m×k), B (k×n), C (m×n).
// Row blocks are distributed across workers; within a block the k and n
// dimensions are tiled so the touched parts of B stay in cache.
func matmul[T number](c, a, b []T, m, k, n int, cfg Config) {
	tile := max(cfg.TileSize, 1)
	rowBlocks := (m + tile - 1) / tile

	parallel.For(rowBlocks, func(block int) {
		i0 := block * tile
		i1 := min(i0+tile, m)

		for i := i0; i < i1; i++ {
			row := c[i*n : (i+1)*n]
			for j := range row {
				row[j] = 0
			}
		}

		for k0 := 0; k0 < k; k0 += tile {
			k1 := min(k0+tile, k)
			for j0 := 0; j0 < n; j0 += tile {
				j1 := min(j0+tile, n)
				for i := i0; i < i1; i++ {
					cRow := c[i*n : (i+1)*n]
					aRow := a[i*k : (i+1)*k]
					for kk := k0; kk < k1; kk++ {
						aik := aRow[kk]
						bRow := b[kk*n : (kk+1)*n]
						for j := j0; j < j1; j++ {
							cRow[j] += aik * bRow[j]
						}
					}
				}
			}
		}
	}, cfg.Parallel)
}
