package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RegisterValidators teaches v about decimal.Decimal fields and adds the money tags used by the
// request DTOs:
//
//	decimal_gt0   value > 0
//	decimal_gte0  value >= 0
//	percentage    0 <= value <= 100
func RegisterValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	for tag, fn := range map[string]func(decimal.Decimal) bool{
		"decimal_gt0":  func(d decimal.Decimal) bool { return d.IsPositive() },
		"decimal_gte0": func(d decimal.Decimal) bool { return !d.IsNegative() },
		"percentage":   func(d decimal.Decimal) bool { return !d.IsNegative() && d.LessThanOrEqual(hundred) },
	} {
		if err := v.RegisterValidation(tag, decimalRule(fn)); err != nil {
			return err
		}
	}
	return nil
}

// decimalValue exposes a decimal to the validator as its string form.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func decimalRule(check func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return false
		}
		return check(d)
	}
}
