// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtCorner   = "--"
	_fmtRowOpen  = "|"
	_fmtRowClose = " |\n"
	_fmtSign     = " " // stands in for '-' before non-negative values
	_fmtNil      = "<nil>"
)

var _ fmt.Stringer = (*Matrix[int, D1, D1])(nil)

// Print writes the bordered grid rendering of m to w:
//
//	(empty line)
//	--   --
//	| 1-2 |
//	| 3 4 |
//	--   --
//
// The border is "--", 2*C−1 spaces and "--" (2*C+3 characters). Each cell is
// written with %v; non-negative cells get one leading space so they line up
// with the sign of negative ones. Cells are not otherwise padded, and the
// output is meant for people, not for parsing back.
func (m *Matrix[T, R, C]) Print(w io.Writer) error {
	_, err := io.WriteString(w, m.render())

	return err
}

// String implements fmt.Stringer with the same layout as Print.
func (m *Matrix[T, R, C]) String() string { return m.render() }

func (m *Matrix[T, R, C]) render() string {
	if m == nil || m.data == nil {
		return _fmtNil
	}
	rows, cols := m.Shape()
	border := _fmtCorner + strings.Repeat(" ", 2*cols-1) + _fmtCorner

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(border)
	sb.WriteString("\n")
	var v T
	for i := 0; i < rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ {
			v = m.data[i*cols+j]
			if v >= 0 {
				sb.WriteString(_fmtSign)
			}
			fmt.Fprintf(&sb, "%v", v)
		}
		sb.WriteString(_fmtRowClose)
	}
	sb.WriteString(border)
	sb.WriteString("\n")

	return sb.String()
}
