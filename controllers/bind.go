package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

// ErrMalformedBody is returned by BindJSON when the body is not a JSON object.
var ErrMalformedBody = errors.New("malformed request body")

// FieldErrors lists every field of a request body that failed to decode or
// validate.
type FieldErrors []models.FieldIssue

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, is := range e {
		parts[i] = is.Field + " " + is.Message
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// BindJSON decodes a flat request struct field by field so that one value of
// the wrong type does not hide the validation failures of the others. Fields
// that fail to decode are left at their zero value and reported once.
func BindJSON(c *gin.Context, dst any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return io.EOF
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind: %T is not a pointer to a struct", dst)
	}
	sv := rv.Elem()
	st := sv.Type()

	var issues FieldErrors
	failed := map[string]bool{}
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		name := jsonName(sf)
		if !sf.IsExported() || name == "" {
			continue
		}
		value, ok := lookupField(fields, name)
		if !ok {
			continue
		}
		fv := sv.Field(i)
		if err := json.Unmarshal(value, fv.Addr().Interface()); err != nil {
			fv.Set(reflect.Zero(fv.Type()))
			failed[name] = true
			issues = append(issues, models.FieldIssue{Field: name, Message: "must be a " + jsonKind(sf.Type)})
		}
	}

	if binding.Validator != nil {
		err := binding.Validator.ValidateStruct(dst)
		var vErrs validator.ValidationErrors
		switch {
		case err == nil:
		case errors.As(err, &vErrs):
			for _, fe := range vErrs {
				if failed[baseField(fe.Field())] {
					continue
				}
				issues = append(issues, models.FieldIssue{Field: fe.Field(), Message: issueMessage(fe)})
			}
		default:
			return err
		}
	}

	if len(issues) > 0 {
		return issues
	}
	return nil
}

// jsonName matches the tag name func registered by RegisterJSONFieldNames.
func jsonName(sf reflect.StructField) string {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

// lookupField prefers an exact key and falls back to a case-insensitive one,
// as encoding/json does.
func lookupField(fields map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if v, ok := fields[name]; ok {
		return v, true
	}
	for k, v := range fields {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// baseField strips an element index: images[2] -> images.
func baseField(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}
