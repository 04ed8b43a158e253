package entity

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"academico/internal/apperror"
)

var validate = validator.New()

// Validate checks the grade against its struct tags. Nota must lie in
// [0, 10] inclusive.
func (g *Grade) Validate() error { return check(g) }

// Validate checks the absence entry. Faltas must be >= 0.
func (a *Absence) Validate() error { return check(a) }

func check(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return apperror.ValidationError{
			Field:   f.Field(),
			Value:   f.Value(),
			Message: fmt.Sprintf("failed on '%s'", f.Tag()),
		}
	}
	return err
}
