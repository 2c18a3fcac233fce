package dto

import (
	"fmt"
	"reflect"

	"github.com/granaapp/grana-go/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Teach the validator to treat decimal.Decimal as a float so numeric
	// rules (gt, gte) apply to amounts.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

func amountNotPositiveErr() error {
	return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
}

// checkStruct runs the shared validator over a request and maps failures to
// apperrors.ErrValidation so callers can reject before any network call.
func checkStruct(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}
