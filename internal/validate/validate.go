package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/config/config.go
//   type Config struct {
//       Duration     time.Duration `yaml:"duration" validate:"min=1s,max=23h59m59s,whole_seconds"`
//       ...
//   }
//
// Besides the built-in tags (min/max on time.Duration, hexcolor, oneof, ...)
// it registers whole_seconds, which rejects durations with a sub-second remainder.

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		if err := validatorInst.RegisterValidation("whole_seconds", wholeSeconds); err != nil {
			panic(err)
		}
	})
	return validatorInst
}

// wholeSeconds accepts time.Duration values that are an exact number of seconds.
func wholeSeconds(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(time.Duration)
	if !ok {
		return false
	}
	return d%time.Second == 0
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
