package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the SIMD capabilities of the host CPU.
type Features struct {
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// TileSize returns the Dot block edge for these features.
// Wider vector units keep more of a tile hot per cache line.
func (f Features) TileSize() int {
	switch {
	case f.HasAVX512:
		return 128
	case f.HasAVX2, f.HasNEON:
		return 64
	default:
		return 32
	}
}
