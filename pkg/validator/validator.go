package validator

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/johnquangdev/meeting-actions/errors"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance.
// Field names in messages come from the form tag, then the json tag.
func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation and reports failures as INVALID_ARGUMENT
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stdErrors.As(err, &verrs) {
		return errors.ErrInternal(err)
	}

	msgs := make([]string, 0, len(verrs))
	appErr := errors.ErrInvalidArgument("")
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s'", fe.Field(), fe.Tag()))
		appErr = appErr.WithDetail(fe.Field(), fe.Tag())
	}
	appErr.Message = "validation failed: " + strings.Join(msgs, ", ")
	return appErr
}
