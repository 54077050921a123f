package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "todo-lists.com/todo-lists/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Field errors are reported under the json name, e.g. "due_date".
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		}
		return name
	})

	return v
}

// Struct validates input against its `validate` tags and converts failures
// into a validation exception with one message per field.
func Struct(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	order := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fe.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = Message(name, fe.Tag(), fe.Param())
		order = append(order, name)
	}

	return apperrors.NewValidation(fields, order)
}

// Message renders the human readable text for a failed rule.
func Message(field, tag, param string) string {
	label := strings.ReplaceAll(field, "_", " ")

	switch tag {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", label, param)
	case "datetime":
		return fmt.Sprintf("The %s field must be a valid date.", label)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", label)
	case "boolean":
		return fmt.Sprintf("The %s field must be true or false.", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}
