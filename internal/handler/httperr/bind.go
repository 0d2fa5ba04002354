package httperr

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"
	"unicode"

	"venue-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AbortWithBadRequest rejects malformed input with the validation kind.
func AbortWithBadRequest(c *gin.Context, err error, msg string) {
	if err == nil {
		panic("AbortWithBadRequest: err cannot be nil")
	}

	resp := Response{Status: http.StatusBadRequest}
	resp.Error.Kind = string(errs.KindValidation)
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

// AbortWithBindError rejects a body that failed ShouldBindJSON, naming the
// offending fields by their JSON names.
func AbortWithBindError(c *gin.Context, err error) {
	AbortWithBadRequest(c, err, BindMessage(err))
}

func BindMessage(err error) string {
	var (
		fieldErrs validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		timeErr   *time.ParseError
	)
	switch {
	case errs.As(err, &fieldErrs):
		msgs := make([]string, len(fieldErrs))
		for i, fe := range fieldErrs {
			msgs[i] = fieldMessage(fe)
		}
		return "invalid request: " + strings.Join(msgs, "; ")
	case errs.As(err, &typeErr):
		return fmt.Sprintf("invalid request: %s must be %s", typeErr.Field, describeType(typeErr.Type))
	case errs.As(err, &timeErr):
		return "invalid request: times must be RFC 3339"
	case errs.As(err, &syntaxErr), errs.Is(err, io.ErrUnexpectedEOF):
		return "invalid request: body is not valid JSON"
	case errs.Is(err, io.EOF):
		return "invalid request: body is required"
	default:
		return "invalid request: " + err.Error()
	}
}

func fieldMessage(fe validator.FieldError) string {
	name := jsonPath(fe.Namespace())
	text := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "min":
		if text {
			return name + " must be at least " + fe.Param() + " characters"
		}
		return name + " must be at least " + fe.Param()
	case "max":
		if text {
			return name + " must be at most " + fe.Param() + " characters"
		}
		return name + " must be at most " + fe.Param()
	case "gt":
		return name + " must be greater than " + fe.Param()
	case "oneof":
		return name + " must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return name + " failed " + fe.Tag()
	}
}

// jsonPath turns "CreateBookingRequest.FoodPackage.Sections[0].PricePerPerson"
// into "food_package.sections[0].price_per_person".
func jsonPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i, r := range rs {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(rs[i-1]) || unicode.IsDigit(rs[i-1])
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if prevLower || (unicode.IsUpper(rs[i-1]) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func describeType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	default:
		return "of type " + t.String()
	}
}
