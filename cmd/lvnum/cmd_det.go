// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/matrix"
)

// maxDetSize bounds the det command; shapes are types, so each size is a
// separate instantiation below.
const maxDetSize = 6

func newDetCmd(a *app) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "det --size n -- v1 v2 ...",
		Short: "Print an n×n matrix filled row-major from the values and its determinant",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]float64, len(args))
			for i, s := range args {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("value %d: %w", i+1, err)
				}
				values[i] = v
			}

			out := cmd.OutOrStdout()
			switch size {
			case 1:
				return detOf[matrix.D1](out, a.logger, values)
			case 2:
				return detOf[matrix.D2](out, a.logger, values)
			case 3:
				return detOf[matrix.D3](out, a.logger, values)
			case 4:
				return detOf[matrix.D4](out, a.logger, values)
			case 5:
				return detOf[matrix.D5](out, a.logger, values)
			case 6:
				return detOf[matrix.D6](out, a.logger, values)
			default:
				return fmt.Errorf("--size %d: want 1..%d", size, maxDetSize)
			}
		},
	}
	cmd.Flags().IntVar(&size, "size", 3, fmt.Sprintf("matrix order, 1..%d", maxDetSize))

	return cmd
}

// detOf builds the N×N matrix (truncating surplus values with a logged
// warning), prints it and its determinant.
func detOf[N matrix.Dim](w io.Writer, logger *slog.Logger, values []float64) error {
	m, err := matrix.FromValues[float64, N, N](values, matrix.WithLogger(logger))
	if err != nil {
		return err
	}
	d, err := matrix.Det(m)
	if err != nil {
		return err
	}
	if err = m.Print(w); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "det = %v\n", d)

	return err
}
