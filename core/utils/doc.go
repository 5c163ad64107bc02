// Package utils provides numeric helpers shared across the toolbox.
// It converts the dynamically typed results of expression evaluation into
// float64 values and display strings.
package utils
