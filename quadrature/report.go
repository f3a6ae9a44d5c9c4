// SPDX-License-Identifier: MIT

package quadrature

import (
	"io"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of significant digits WriteReport uses
// when given a non-positive precision.
const DefaultPrecision = 8

// exactPrecision is used for the "Actual result" header line.
const exactPrecision = 6

// WriteReport prints results grouped per algorithm and rule:
//
//	X^4
//	Actual result: 6.4
//
//	N: 10
//	Trapezium: 6.464
//	Trapezium % Error: 1
//	N: 100
//	...
//
// A blank line closes each rule group and another one each algorithm.
// Numbers use %g-style formatting with precision significant digits.
// Groups are formed from consecutive results, so pass Study's output
// unchanged (or any slice sorted the same way).
func WriteReport[T Float](w io.Writer, results []Result[T], precision int) error {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	bits := bitSize[T]()

	var sb strings.Builder
	for i, r := range results {
		newAlg := i == 0 || results[i-1].Algorithm != r.Algorithm
		newRule := newAlg || results[i-1].Rule != r.Rule
		if newRule && i > 0 {
			sb.WriteString("\n") // closes the previous rule group
		}
		if newAlg {
			if i > 0 {
				sb.WriteString("\n") // closes the previous algorithm
			}
			sb.WriteString(r.Algorithm)
			sb.WriteString("\nActual result: ")
			sb.WriteString(strconv.FormatFloat(float64(r.Exact), 'g', exactPrecision, bits))
			sb.WriteString("\n\n")
		}
		sb.WriteString("N: ")
		sb.WriteString(strconv.Itoa(r.N))
		sb.WriteString("\n")
		sb.WriteString(r.Rule)
		sb.WriteString(": ")
		sb.WriteString(strconv.FormatFloat(float64(r.Estimate), 'g', precision, bits))
		sb.WriteString("\n")
		sb.WriteString(r.Rule)
		sb.WriteString(" % Error: ")
		sb.WriteString(strconv.FormatFloat(float64(r.PercentError()), 'g', precision, bits))
		sb.WriteString("\n")
	}
	if len(results) > 0 {
		sb.WriteString("\n\n")
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// bitSize is 32 for float32 element types and 64 otherwise.
func bitSize[T Float]() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 32
	}

	return 64
}
