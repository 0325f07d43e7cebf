package httpapi

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/GulfDevInnovations/royal-academy/internal/apperrors"
)

var errUnauthorized = apperrors.New(apperrors.CodeUnauthenticated, "missing or invalid access token")

// appHTTPErrorHandler renders every error as {"error": message, "code": CODE}.
func appHTTPErrorHandler(err error, c echo.Context) {
	status := http.StatusInternalServerError
	body := echo.Map{"error": http.StatusText(status), "code": apperrors.CodeUnknown}

	var (
		appErr  *apperrors.Error
		httpErr *echo.HTTPError
		fldErrs validator.ValidationErrors
	)
	switch {
	case errors.As(err, &fldErrs):
		fields := make(map[string]string, len(fldErrs))
		for _, fe := range fldErrs {
			fields[fe.Field()] = fe.Tag()
		}
		status = http.StatusBadRequest
		body = echo.Map{"error": "invalid request", "code": apperrors.CodeInvalidArgument, "fields": fields}
	case errors.As(err, &appErr):
		status = appErr.Code.HTTPStatus()
		body = echo.Map{"error": appErr.Message, "code": appErr.Code}
		if status >= http.StatusInternalServerError {
			log.Printf("[http] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		body = echo.Map{"error": http.StatusText(status), "code": codeForStatus(status)}
		if msg, ok := httpErr.Message.(string); ok {
			body["error"] = msg
		}
	default:
		log.Printf("[http] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		c.Echo().Logger.Error(err)
	}
}

func codeForStatus(status int) apperrors.Code {
	switch status {
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return apperrors.CodeInvalidArgument
	case http.StatusUnauthorized:
		return apperrors.CodeUnauthenticated
	case http.StatusForbidden:
		return apperrors.CodeForbidden
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return apperrors.CodeNotFound
	default:
		return apperrors.CodeUnknown
	}
}
