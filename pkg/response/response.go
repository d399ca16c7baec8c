package response

import (
	"errors"
	"net/http"

	pkgErrors "rentdesk-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// OK writes a 200 success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		StatusCode: http.StatusOK,
		Status:     StatusSuccess,
		Message:    MessageSuccess,
		Data:       data,
	})
}

// Accepted writes a 202 success envelope.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, Resp{
		StatusCode: http.StatusAccepted,
		Status:     StatusSuccess,
		Message:    MessageSuccess,
		Data:       data,
	})
}

// Error writes an error envelope. HTTPError and ValidationError keep their status and
// message; binding errors become 400; anything else is reported as a 500.
func Error(c *gin.Context, err error) {
	c.JSON(parseError(err))
}

// ErrorWithMap resolves err through mapping before writing it.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping) {
	for target, httpErr := range mapping {
		if errors.Is(err, target) {
			Error(c, httpErr)
			return
		}
	}
	Error(c, err)
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context) {
	Error(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, MessageUnauthorized))
}

// Forbidden writes a 403 envelope.
func Forbidden(c *gin.Context) {
	Error(c, pkgErrors.NewHTTPError(http.StatusForbidden, MessageForbidden))
}

// PanicError writes a 500 envelope for a recovered panic.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		StatusCode: http.StatusInternalServerError,
		Status:     StatusError,
		Message:    MessageInternalError,
	})
}

func parseError(err error) (int, Resp) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, Resp{
			StatusCode: httpErr.StatusCode,
			Status:     StatusError,
			Message:    httpErr.Message,
		}
	}

	var validationErr *pkgErrors.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, Resp{
			StatusCode: http.StatusBadRequest,
			Status:     StatusError,
			Message:    validationErr.Error(),
		}
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
		}
		return http.StatusBadRequest, Resp{
			StatusCode: http.StatusBadRequest,
			Status:     StatusError,
			Message:    MessageValidation,
			Errors:     details,
		}
	}

	return http.StatusInternalServerError, Resp{
		StatusCode: http.StatusInternalServerError,
		Status:     StatusError,
		Message:    MessageInternalError,
	}
}
