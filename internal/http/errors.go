package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "taskvault.com/taskvault/internal/errors"
)

// ErrorHandler maps application errors to one status plus a JSON body.
// Validation errors additionally carry their field-level list.
func ErrorHandler(log *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *apperrors.Exception
		if errors.As(err, &appErr) {
			body := echo.Map{"message": appErr.Message}
			if len(appErr.Fields) > 0 {
				body["errors"] = appErr.Fields
			}
			_ = c.JSON(appErr.StatusCode, body)
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, echo.Map{"message": fmt.Sprintf("%v", httpErr.Message)})
			return
		}

		log.WithError(err).Error("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
}
