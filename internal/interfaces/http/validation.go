package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reporta los campos con su nombre JSON (EMP_CD, details[0].PRD_PRICE).
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessage arma un mensaje legible con los campos que fallaron.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	missing := make([]string, 0, len(verrs))
	other := make([]string, 0)
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		if fe.Tag() == "required" {
			missing = append(missing, field)
		} else {
			other = append(other, field+" ("+fe.Tag()+")")
		}
	}
	parts := make([]string, 0, 2)
	if len(missing) > 0 {
		parts = append(parts, "campos requeridos ausentes: "+strings.Join(missing, ", "))
	}
	if len(other) > 0 {
		parts = append(parts, "campos inválidos: "+strings.Join(other, ", "))
	}
	return strings.Join(parts, "; ")
}
