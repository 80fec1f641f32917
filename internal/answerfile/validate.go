package answerfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidFile = errors.New("invalid answer file")

var validate = validator.New()

var validationMessages = map[string]string{
	"required": "is required",
	"len":      "must have exactly %s answers",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"oneof":    "must be one of: %s",
}

// ValidateStrict requires every item of every instrument to be answered with
// an in-range value.
func ValidateStrict(f *File) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating answer file: %w", err)
	}
	return fmt.Errorf("%w: %s", ErrInvalidFile, formatValidationErrors(verrs))
}

func formatValidationErrors(verrs validator.ValidationErrors) string {
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := validationMessages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		if strings.Contains(msg, "%s") {
			param := fe.Param()
			if fe.Tag() == "oneof" {
				param = strings.Join(strings.Fields(param), ", ")
			}
			msg = fmt.Sprintf(msg, param)
		}
		problems = append(problems, fieldPath(fe)+" "+msg)
	}
	return strings.Join(problems, "; ")
}

// fieldPath turns "File.ASRS[19]" into "asrs[19]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}
