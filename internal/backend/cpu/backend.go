// Package cpu implements the pure Go backend for linalg kernels.
package cpu

import (
	"github.com/born-ml/linalg/internal/kernel"
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

// Name is the configuration identifier of the CPU backend.
const Name = "cpu"

// Config controls the CPU kernels.
type Config struct {
	Parallel parallel.Config // Row/column fan-out.
	TileSize int             // Dot block size; 0 picks one from CPU features.
}

// DefaultConfig returns parallel execution on all CPUs with an automatic tile size.
func DefaultConfig() Config {
	return Config{
		Parallel: parallel.DefaultConfig(),
	}
}

// CPUBackend provides Dot and QR kernels on host memory.
type CPUBackend struct {
	cfg      Config
	features Features
	kernels  *kernel.Registry
}

// New creates a CPU backend with DefaultConfig.
func New() *CPUBackend {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a CPU backend with the given configuration.
func NewWithConfig(cfg Config) *CPUBackend {
	features := DetectFeatures()
	if cfg.TileSize <= 0 {
		cfg.TileSize = features.TileSize()
	}

	cpu := &CPUBackend{
		cfg:      cfg,
		features: features,
		kernels:  kernel.NewRegistry(Name),
	}
	cpu.kernels.MustRegister(
		&DotKernel{cfg: cfg},
		&QRKernel{cfg: cfg},
	)
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return Name
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return tensor.CPU
}

// Kernels returns the registry holding the Dot and QR kernels.
func (cpu *CPUBackend) Kernels() *kernel.Registry {
	return cpu.kernels
}

// Config returns the effective configuration, with TileSize resolved.
func (cpu *CPUBackend) Config() Config {
	return cpu.cfg
}

// Features returns the CPU features detected at construction.
func (cpu *CPUBackend) Features() Features {
	return cpu.features
}
