package service

import (
	"starknet_balance_checker/internal/app/port"
	"starknet_balance_checker/internal/domain/entity"
)

type calculatorServiceImpl struct{}

// NewCalculatorService creates the arithmetic backend of the calculator server.
func NewCalculatorService() port.CalculatorService {
	return calculatorServiceImpl{}
}

func (calculatorServiceImpl) Add(a, b float64) entity.Calculation {
	return entity.Calculation{A: a, B: b, Operator: "+", Result: a + b}
}

func (calculatorServiceImpl) Multiply(a, b float64) entity.Calculation {
	return entity.Calculation{A: a, B: b, Operator: "×", Result: a * b}
}
