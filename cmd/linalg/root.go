package main

import (
	"flag"
	"fmt"

	"github.com/born-ml/linalg/backend/cpu"
	"github.com/born-ml/linalg/backend/webgpu"
	"github.com/born-ml/linalg/linalg"
	"github.com/born-ml/linalg/tensor"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

type options struct {
	backend string
	dtype   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "linalg",
		Short:         "Matrix multiplication and QR decomposition on pluggable backends",
		SilenceUsage: true,
	}

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)
	root.PersistentFlags().StringVar(&opts.backend, "backend", "", "backend to run on (default: first backend for the CPU)")
	root.PersistentFlags().StringVar(&opts.dtype, "dtype", "float64", "element type of the input matrices")

	root.AddCommand(
		newVersionCmd(),
		newBackendsCmd(opts),
		newDotCmd(opts),
		newQRCmd(opts),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "linalg %s\n", version)
		},
	}
}

func newBackendsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List backends and their kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, release, err := opts.dispatcher()
			if err != nil {
				return err
			}
			defer release()

			out := cmd.OutOrStdout()
			for _, b := range d.Backends() {
				fmt.Fprintf(out, "%-8s %-7s %v\n", b.Name(), b.Device(), b.Kernels().Names())
			}

			f := cpu.DetectFeatures()
			fmt.Fprintf(out, "\ncpu: %s avx2=%t avx512=%t neon=%t tile=%d\n",
				f.Architecture, f.HasAVX2, f.HasAVX512, f.HasNEON, f.TileSize())
			return nil
		},
	}
}

// dispatcher builds the dispatcher for a command. WebGPU is added when it can be opened;
// it is required only when selected with --backend.
func (o *options) dispatcher() (*linalg.Dispatcher, func(), error) {
	d := linalg.NewDefault()
	release := func() {}

	gpu, err := webgpu.New()
	switch {
	case err == nil:
		if err := d.Register(gpu); err != nil {
			gpu.Release()
			return nil, nil, err
		}
		release = gpu.Release
	case o.backend == webgpu.Name:
		return nil, nil, err
	default:
		klog.V(2).InfoS("webgpu backend skipped", "reason", err)
	}

	if o.backend != "" {
		if err := d.Use(o.backend); err != nil {
			release()
			return nil, nil, err
		}
	}
	return d, release, nil
}

// device returns the device of the selected backend.
func (o *options) device(d *linalg.Dispatcher) (tensor.Device, error) {
	if o.backend == "" {
		return tensor.CPU, nil
	}
	b, err := d.Backend(o.backend)
	if err != nil {
		return 0, err
	}
	return b.Device(), nil
}

func (o *options) dataType() (tensor.DataType, error) {
	dt, err := tensor.ParseDataType(o.dtype)
	if err != nil {
		return 0, errors.Wrap(err, "--dtype")
	}
	if dt == tensor.Bool || dt == tensor.Uint8 {
		return 0, errors.Wrapf(linalg.ErrUnsupportedDType, "--dtype %s", dt)
	}
	return dt, nil
}
