package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// CodeUnauthenticated marks an Unauthorized failure caused by a missing or
// invalid session rather than by missing permissions.
const CodeUnauthenticated = "unauthenticated"

type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"error_code"`
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
	})
}

// StatusFor maps a failure to its HTTP status.
func StatusFor(err error) int {
	var be BusinessError
	if !errors.As(err, &be) {
		return http.StatusInternalServerError
	}

	switch be.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		if be.Code == CodeUnauthenticated {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidTransition, KindOverlapConflict:
		return http.StatusConflict
	case KindDateGuardFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Respond renders err as the failure envelope. Infrastructure failures are
// logged with their cause and rendered with a generic message.
func Respond(c *gin.Context, logger log.Logger, err error) {
	status := StatusFor(err)

	var be BusinessError
	if !errors.As(err, &be) || be.Kind == KindInfrastructure {
		level.Error(logger).Log(
			"msg", "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"err", err,
		)
		Write(c, http.StatusInternalServerError, "internal_error", genericMessage)
		return
	}

	Write(c, status, be.Code, be.Message)
}
