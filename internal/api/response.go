// Package api defines the JSON envelope returned by every endpoint and the
// helpers handlers use to write it.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"contact_backend/internal/shared/apperr"
)

// Response is the single envelope used for success and failure bodies.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes one failed input rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OK writes a success envelope.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// NoContent writes a 204 without a body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail writes the envelope for err. Internal errors are logged with detail
// and reported to the client with a generic message.
func Fail(c *gin.Context, log *zap.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	resp := Response{Success: false, Message: apperr.PublicMessage(err)}
	if de, ok := apperr.As(err); ok && de.Kind == apperr.KindValidation {
		resp.Errors = fieldErrors(de.Err)
	}
	c.AbortWithStatusJSON(status, resp)
}

// BindError converts a gin binding failure into a validation DomainError.
func BindError(err error) error {
	return apperr.Wrap(apperr.ErrValidation, err)
}

// fieldErrors flattens validator output into the envelope's errors list.
func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err == nil {
			return nil
		}
		return []FieldError{{Field: "body", Message: "malformed request body"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: jsonFieldName(fe), Message: ruleMessage(fe)})
	}
	return out
}

func jsonFieldName(fe validator.FieldError) string {
	return toSnake(fe.Field())
}

func ruleMessage(fe validator.FieldError) string {
	field := jsonFieldName(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "invalid email"
	case "min":
		return field + " must be at least " + fe.Param() + " characters long"
	case "max":
		return field + " must be at most " + fe.Param() + " characters long"
	case "eqfield":
		return "password confirmation does not match password"
	case "phone":
		return "phone must be a number"
	default:
		return field + " is invalid"
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
