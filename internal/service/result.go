package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "bustrip-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// OperationResult is the envelope every mutating endpoint answers with
type OperationResult struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

// SuccessResult wraps data in a successful result
func SuccessResult(message string, data interface{}) *OperationResult {
	return &OperationResult{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// FailureResult converts an error into a failed result. Errors outside the domain
// taxonomy are reported generically so that infrastructure details do not leak.
func FailureResult(err error) *OperationResult {
	result := &OperationResult{
		Success: false,
		Code:    apperrors.Code(err),
	}

	if !apperrors.IsDomain(err) {
		result.Message = "internal server error"
		return result
	}
	result.Message = err.Error()

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		result.Errors = validationErr.FieldErrors()
	}

	return result
}

// NewValidator creates a validator that reports json field names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct runs struct validation and converts failures into a field validation error
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = describeTag(fe)
		}
		return fmt.Errorf("validation failed: %w", apperrors.NewFieldValidationError(fields))
	}
	return fmt.Errorf("validation failed: %w", apperrors.NewValidationError("request", err.Error()))
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gtfield":
		return "must be after " + fe.Param()
	}
	return "failed " + fe.Tag() + " validation"
}

// normalizePagination applies the default page size and converts page numbers to limit/offset
func normalizePagination(page, pageSize int) (int, int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return pageSize, (page - 1) * pageSize, page, pageSize
}
