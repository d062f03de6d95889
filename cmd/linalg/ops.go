package main

import (
	"github.com/born-ml/linalg/linalg"
	"github.com/born-ml/linalg/tensor"
	"github.com/spf13/cobra"
)

func newDotCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dot A.json B.json",
		Short: "Multiply two matrices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, release, err := opts.dispatcher()
			if err != nil {
				return err
			}
			defer release()

			operands, err := opts.load(cmd, d, args...)
			if err != nil {
				return err
			}

			out, err := d.Dot(operands[0], operands[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), encodeTensor(out))
		},
	}
}

func newQRCmd(opts *options) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "qr A.json",
		Short: "Compute the QR decomposition of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := linalg.ParseQRMode(mode)
			if err != nil {
				return err
			}

			d, release, err := opts.dispatcher()
			if err != nil {
				return err
			}
			defer release()

			operands, err := opts.load(cmd, d, args...)
			if err != nil {
				return err
			}

			q, r, err := d.QR(operands[0], m)
			if err != nil {
				return err
			}

			var result map[string]any
			switch m {
			case linalg.QRModeRaw:
				result = map[string]any{"h": encodeTensor(q), "tau": encodeTensor(r)}
			case linalg.QRModeR:
				result = map[string]any{"r": encodeTensor(r)}
			default:
				result = map[string]any{"q": encodeTensor(q), "r": encodeTensor(r)}
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "reduced", "QR mode: reduced, complete, r or raw")
	return cmd
}

// load reads the matrices named by paths onto the selected backend's device.
func (o *options) load(cmd *cobra.Command, d *linalg.Dispatcher, paths ...string) ([]*tensor.RawTensor, error) {
	dtype, err := o.dataType()
	if err != nil {
		return nil, err
	}
	device, err := o.device(d)
	if err != nil {
		return nil, err
	}

	out := make([]*tensor.RawTensor, 0, len(paths))
	for _, p := range paths {
		t, err := readMatrix(p, cmd.InOrStdin(), dtype, device)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
