package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Jugal-Chanda/demo-CICD-github/middleware"
	"github.com/Jugal-Chanda/demo-CICD-github/models"
	"github.com/Jugal-Chanda/demo-CICD-github/repository"
	"github.com/Jugal-Chanda/demo-CICD-github/validation"
)

// respondServiceError maps a service error to its HTTP status and
// envelope. Validation, not-found, and conflict errors are expected
// caller mistakes and are not logged; storage errors keep their detail
// in the server log and surface as a generic internal error.
func respondServiceError(c *gin.Context, err error) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(vErr.Code, vErr.Message, vErr.Field))
	case errors.Is(err, repository.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, models.ErrorResponse(models.CodeDuplicateEmail, "Email already exists", "email"))
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeNotFound, "User not found", ""))
	default:
		log.Error().Err(err).
			Str("request_id", middleware.RequestIDFromContext(c)).
			Str("path", c.FullPath()).
			Msg("storage operation failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(models.CodeInternalError, "Internal server error", ""))
	}
}

// respondBindError translates a JSON decode failure. A type mismatch on
// a known field keeps its field name so the caller learns which value
// was malformed.
func respondBindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(
			models.CodeValidationError,
			fmt.Sprintf("%s must be a valid %s", typeErr.Field, jsonKindName(typeErr.Type)),
			typeErr.Field,
		))
		return
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse(models.CodeValidationError, "Invalid JSON body", ""))
}

func jsonKindName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return t.String()
	}
}
