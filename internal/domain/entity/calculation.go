package entity

import (
	"fmt"
	"strconv"
)

// Calculation is the outcome of a binary arithmetic operation.
type Calculation struct {
	A        float64
	B        float64
	Operator string
	Result   float64
}

// String renders the calculation as "a <op> b = result".
func (c Calculation) String() string {
	return fmt.Sprintf("%s %s %s = %s", formatNumber(c.A), c.Operator, formatNumber(c.B), formatNumber(c.Result))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
