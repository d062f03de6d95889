package kerneltest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatMulAndTranspose(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6} // 2×3
	b := []float64{7, 8, 9, 10, 11, 12}
	assert.Equal(t, []float64{58, 64, 139, 154}, MatMul(a, b, 2, 3, 2))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, Transpose(a, 2, 3))
}

func TestExpandRaw_IdentityReflectors(t *testing.T) {
	// tau = 0 means every reflector is the identity: Q = I, R = triu(h^T).
	h := []float64{2, 0, 1, 3} // n×m = 2×2, compact = [[2, 1], [0, 3]]
	q, r := ExpandRaw(h, []float64{0, 0}, 2, 2)
	assert.Equal(t, []float64{1, 0, 0, 1}, q)
	assert.Equal(t, []float64{2, 1, 0, 3}, r)
}
