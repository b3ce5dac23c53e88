package middleware

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"voice-enhancer/internal/api/errors"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validator report fields by their JSON names.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
	})
}

// ValidateRequest binds the JSON body into req and validates its struct
// tags. The first failing field is reported. An empty body is validated as
// an empty object.
func ValidateRequest(c *gin.Context, req interface{}) error {
	useJSONFieldNames()

	err := c.ShouldBindJSON(req)
	if stderrors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(req)
	}
	if err == nil {
		return nil
	}

	// A mistyped field stops binding before validation runs, so validate the
	// fields that did decode and report whichever failure is declared first.
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) && typeErr.Field != "" {
		if vErr := firstFailingBefore(req, typeErr); vErr != nil {
			return vErr
		}
	}
	return translateBindError(err)
}

// firstFailingBefore returns the first validation failure declared ahead of
// the mistyped field, or nil.
func firstFailingBefore(req interface{}, typeErr *json.UnmarshalTypeError) *errors.APIError {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(binding.Validator.ValidateStruct(req), &validationErrs) || len(validationErrs) == 0 {
		return nil
	}
	fe := validationErrs[0]
	mistyped := strings.SplitN(typeErr.Field, ".", 2)[0]
	if fieldIndex(req, fe.Field()) >= fieldIndex(req, mistyped) {
		return nil
	}
	return errors.NewValidationError(fe.Field(), fieldMessage(fe))
}

// fieldIndex is the declaration position of the field with the given JSON
// name, or -1 when req has no such field.
func fieldIndex(req interface{}, name string) int {
	t := reflect.TypeOf(req)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return -1
	}
	for i := 0; i < t.NumField(); i++ {
		if jsonName(t.Field(i)) == name {
			return i
		}
	}
	return -1
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func translateBindError(err error) *errors.APIError {
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return errors.NewValidationError(fe.Field(), fieldMessage(fe))
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) && typeErr.Field != "" {
		return errors.NewValidationError(typeErr.Field,
			fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String()))
	}

	return errors.NewBadRequestError(errors.MsgInvalidRequestBody)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " is too short"
	case "max":
		return field + " is too long"
	case "oneof":
		return field + " must be one of the allowed values"
	default:
		return field + " is invalid"
	}
}
