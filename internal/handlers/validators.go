package handlers

import (
	"github.com/fincore/backoffice/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidators wires the custom binding validators into gin's
// validator engine. Must be called once before routes are served.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("decimal4", validateDecimal4)
}

// validateDecimal4 accepts a positive decimal string with at most
// domain.AmountScale fractional digits. This is the wire format for all
// monetary amounts.
func validateDecimal4(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return false
	}
	return amount.Exponent() >= -domain.AmountScale
}
