package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issue is one violated field: a path of field-name segments plus a
// human-readable message.
type Issue struct {
	Path    []string
	Message string
}

func (i Issue) String() string {
	return strings.Join(i.Path, ".") + ": " + i.Message
}

// Error aggregates every issue found during a parse. Its message joins the
// entries with "; ".
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.String())
	}
	return strings.Join(msgs, "; ")
}

// Binder populates dst from the request (JSON body or query parameters).
type Binder func(dst any) error

// Schema is the strategy the validation middleware is parameterized by:
// bind the raw input, normalize, validate, and return the value downstream
// handlers will see. Schema failures return *Error; anything else is
// propagated unchanged.
type Schema interface {
	Parse(bind Binder) (any, error)
}

// Normalizer lets a payload trim, lowercase, or default its fields before
// validation. The normalized value is what reaches the handler.
type Normalizer interface {
	Normalize()
}

// NewValidator returns a validator configured to report fields by their
// json tag names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

type structSchema[T any] struct {
	v *validator.Validate
}

// Struct builds a Schema for payload type T using struct validate tags.
func Struct[T any](v *validator.Validate) Schema {
	return structSchema[T]{v: v}
}

func (s structSchema[T]) Parse(bind Binder) (any, error) {
	dst := new(T)
	if err := bind(dst); err != nil {
		// Binders describe their own input source; anything else is a
		// plain body decode failure.
		var ve *Error
		if errors.As(err, &ve) {
			return nil, ve
		}
		return nil, &Error{Issues: []Issue{{Path: []string{"body"}, Message: "must be valid JSON"}}}
	}

	if n, ok := any(dst).(Normalizer); ok {
		n.Normalize()
	}

	if err := s.v.Struct(dst); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return nil, &Error{Issues: issuesOf(ve)}
		}
		// Not a schema failure; let it bubble untouched.
		return nil, err
	}
	return dst, nil
}

func issuesOf(ve validator.ValidationErrors) []Issue {
	issues := make([]Issue, 0, len(ve))
	for _, fe := range ve {
		issues = append(issues, Issue{
			Path:    fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return issues
}

// fieldPath strips the root struct name from the namespace and keeps the
// remaining segments, already renamed to json tags by the validator.
func fieldPath(fe validator.FieldError) []string {
	segments := strings.Split(fe.Namespace(), ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	return segments
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
