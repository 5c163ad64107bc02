package calculator

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"toolbox/core/utils"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/file"
	"github.com/expr-lang/expr/parser/lexer"
)

var (
	// ErrEmptyExpression is returned for blank input.
	ErrEmptyExpression = errors.New("empty expression")
	// ErrUnsupportedToken is returned for anything other than numbers, parentheses and
	// arithmetic operators.
	ErrUnsupportedToken = errors.New("unsupported token")
	// ErrNotNumeric is returned when an expression evaluates to something other than a number.
	ErrNotNumeric = errors.New("expression is not numeric")
	// ErrNotFinite is returned for infinite or NaN results, e.g. division by zero.
	ErrNotFinite = errors.New("result is not finite")
)

var (
	literalPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]*)?([eE][+-]?[0-9]+)?$`)

	operators = map[string]bool{
		"+": true, "-": true, "*": true, "/": true, "%": true, "^": true, "**": true,
	}
)

// Evaluate computes an arithmetic expression: numeric literals, parentheses and the
// operators + - * / % ^ (** is accepted for ^). All arithmetic is float64.
func Evaluate(expression string) (result string, err error) {
	if strings.TrimSpace(expression) == "" {
		return "", ErrEmptyExpression
	}

	source, err := normalize(expression)
	if err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = "", fmt.Errorf("evaluation panicked: %v", r)
		}
	}()

	env := map[string]any{}
	program, err := expr.Compile(source,
		expr.Env(env),
		expr.DisableAllBuiltins(),
		expr.Function("fmod", fmod, new(func(float64, float64) float64)),
		expr.Operator("%", "fmod"),
	)
	if err != nil {
		return "", fmt.Errorf("failed to compile expression: %w", err)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate expression: %w", err)
	}
	return formatNumber(out)
}

// Result evaluates expression and returns "" on any error.
func Result(expression string) string {
	r, err := Evaluate(expression)
	if err != nil {
		return ""
	}
	return r
}

// normalize checks every token and rebuilds the expression with each literal written
// as a float, so no integer arithmetic or int64 literal limit applies.
func normalize(expression string) (string, error) {
	// The lexer drops comments without emitting a token.
	if strings.Contains(expression, "//") || strings.Contains(expression, "/*") {
		return "", fmt.Errorf("%w: comment", ErrUnsupportedToken)
	}

	tokens, err := lexer.Lex(file.NewSource(expression))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedToken, err)
	}

	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		switch {
		case tok.Kind == lexer.EOF:
		case tok.Kind == lexer.Number && literalPattern.MatchString(tok.Value):
			v := tok.Value
			if !strings.ContainsAny(v, ".eE") {
				v += ".0"
			}
			parts = append(parts, v)
		case tok.Kind == lexer.Operator && operators[tok.Value]:
			parts = append(parts, tok.Value)
		case tok.Kind == lexer.Bracket && (tok.Value == "(" || tok.Value == ")"):
			parts = append(parts, tok.Value)
		default:
			return "", fmt.Errorf("%w: %q", ErrUnsupportedToken, tok.Value)
		}
	}
	return strings.Join(parts, " "), nil
}

func fmod(params ...any) (any, error) {
	return math.Mod(params[0].(float64), params[1].(float64)), nil
}

func formatNumber(v any) (string, error) {
	if _, ok := utils.ToFloat64(v); !ok {
		return "", fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
	s, ok := utils.FormatNumber(v)
	if !ok {
		return "", ErrNotFinite
	}
	return s, nil
}
