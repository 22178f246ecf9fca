package seed

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// Issue is a seed value the presentation layer should flag. Issues never stop
// generation on their own.
type Issue struct {
	Field   string
	Value   string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (got %q)", i.Field, i.Message, i.Value)
}

// Validate lists the values of s that will be replaced by defaults or that
// name a font outside the catalog.
func Validate(s Seed) []Issue {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []Issue{{Field: "seed", Message: err.Error()}}
	}

	issues := make([]Issue, 0, len(ves))
	for _, fe := range ves {
		issues = append(issues, Issue{
			Field:   fe.Field(),
			Value:   fmt.Sprint(fe.Value()),
			Message: messageForTag(fe.Tag(), fe.Param()),
		})
	}
	return issues
}

// Strict turns the first issue into a ValidationError.
func Strict(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	first := issues[0]
	msg := first.Message
	if len(issues) > 1 {
		msg = fmt.Sprintf("%s (and %d more)", msg, len(issues)-1)
	}
	return brandkiterrors.NewValidationError(first.Field, msg, nil)
}

func messageForTag(tag, param string) string {
	switch tag {
	case "hex6":
		return "must be # followed by 6 hexadecimal digits"
	case "font":
		return "is not in the font catalog"
	case "px_positive":
		return "must be a number greater than zero"
	case "px_nonnegative":
		return "must be a number of zero or more"
	case "max":
		return fmt.Sprintf("must be at most %s characters", param)
	default:
		return fmt.Sprintf("failed validation for tag '%s'", tag)
	}
}
