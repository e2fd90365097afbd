package validatorx

import (
	"reflect"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("qty_gt0", decimalPositive)
	_ = v.RegisterValidation("qty_gte0", decimalNonNegative)
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

func decimalPositive(fl gpvalidator.FieldLevel) bool {
	d, ok := asDecimal(fl.Field())
	return ok && d.IsPositive()
}

func decimalNonNegative(fl gpvalidator.FieldLevel) bool {
	d, ok := asDecimal(fl.Field())
	return ok && !d.IsNegative()
}

func asDecimal(field reflect.Value) (decimal.Decimal, bool) {
	if !field.CanInterface() {
		return decimal.Zero, false
	}
	d, ok := field.Interface().(decimal.Decimal)
	return d, ok
}
