package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"reflect"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services/listing"
)

var registerOnce sync.Once

// RegisterJSONFieldNames makes validation errors report JSON field names
// (fuelType) instead of Go field names (FuelType).
func RegisterJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
	})
}

// ─────────────────────────────────────────────────────────────
// Domain error → HTTP mapping
// ─────────────────────────────────────────────────────────────

// RespondError maps a listing error to its status code. Upstream and
// configuration failures are logged with op and answered generically.
func RespondError(c *gin.Context, op string, err error) {
	var vErr *listing.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, vErr.Message, vErr.Issues))
	case errors.Is(err, listing.ErrInvalidID):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid item ID"))
	case errors.Is(err, listing.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Item not found"))
	default:
		log.Printf("[%s] %v", op, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
	}
}

// RespondBindError answers a failed BindJSON with every failing field.
func RespondBindError(c *gin.Context, err error) {
	issues := BindIssues(err)
	if len(issues) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Validation failed", issues))
}

// BindIssues converts binding errors into field issues. Errors that are not
// tied to a field (malformed JSON) yield none.
func BindIssues(err error) []models.FieldIssue {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		issues := make([]models.FieldIssue, 0, len(vErrs))
		for _, fe := range vErrs {
			issues = append(issues, models.FieldIssue{
				Field:   fe.Field(),
				Message: issueMessage(fe),
			})
		}
		return issues
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []models.FieldIssue{{
			Field:   typeErr.Field,
			Message: "must be a " + jsonKind(typeErr.Type),
		}}
	}

	if errors.Is(err, io.EOF) {
		return []models.FieldIssue{{Field: "body", Message: "is required"}}
	}
	return nil
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s characters or items", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s characters or items", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "whole number"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "list"
	default:
		return "valid value"
	}
}
