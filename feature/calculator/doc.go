// Package calculator implements the numeric expression evaluator widget.
//
// Input is tokenized first and may only contain numbers, parentheses and the operators
// + - * / % ^ (or **). Every literal is read as a float64 before the expression is
// compiled with expr, so large integers keep their magnitude instead of wrapping.
// Whole results print as integers ("7"), fractional ones in their shortest form
// ("3.5"). Division by zero, syntax errors and any other token yield an empty result.
package calculator
