package providers

import (
	"context"
	"math"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/beacon-sh/beacon/internal/launcher"
)

// calcScore outranks every other provider: when the user typed an
// expression, the answer is what they want.
const calcScore = math.MaxInt32

// CalculatorProvider evaluates queries of the form "=<expression>".
type CalculatorProvider struct{}

// NewCalculatorProvider creates the calculator provider.
func NewCalculatorProvider() *CalculatorProvider {
	return &CalculatorProvider{}
}

func (p *CalculatorProvider) Name() string { return "calculator" }

// Query evaluates the expression after the leading "=". Queries without
// the prefix, or expressions that do not parse, report nothing.
func (p *CalculatorProvider) Query(_ context.Context, text string, onResults func([]launcher.Result)) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "=") {
		return
	}
	expr := strings.TrimSpace(strings.TrimPrefix(trimmed, "="))
	if expr == "" {
		return
	}

	value, err := evalExpression(expr)
	if err != nil {
		return
	}

	onResults([]launcher.Result{&CalcResult{
		expression: expr,
		value:      formatValue(value),
	}})
}

// CalcResult is the evaluated value of an arithmetic expression.
// Activation copies it to the clipboard.
type CalcResult struct {
	expression string
	value      string
}

func (r *CalcResult) Title() string   { return r.value }
func (r *CalcResult) Tooltip() string { return r.expression + " = " + r.value }
func (r *CalcResult) Score() int      { return calcScore }
func (r *CalcResult) Icon() string    { return "=" }

func (r *CalcResult) Equals(other launcher.Result) bool {
	o, ok := other.(*CalcResult)
	return ok && o.expression == r.expression && o.value == r.value
}

func (r *CalcResult) Activate(_ context.Context) error {
	return clipboard.WriteAll(r.value)
}
