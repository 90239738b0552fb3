package http

import (
	"errors"
	"log/slog"
	"net/http"

	"droncakes/internal/core/application/usecases/commands"
	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain and application errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrNoCapacity),
		errors.Is(err, order.ErrOrderAlreadyDelivered),
		errors.Is(err, order.ErrStatusTransitionNotAllowed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an Error body. Internal errors are logged and
// reported without detail.
func respondError(ctx echo.Context, logger *slog.Logger, err error) error {
	code := statusFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

// NewHTTPErrorHandler renders echo errors (routing, binding, validation) in
// the same Error shape as handler errors.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			_ = respondError(ctx, logger, err)
			return
		}

		message, ok := he.Message.(string)
		if !ok {
			message = http.StatusText(he.Code)
		}

		if he.Code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Request failed", "path", ctx.Path(), "error", err)
		}

		if ctx.Request().Method == http.MethodHead {
			_ = ctx.NoContent(he.Code)
			return
		}

		_ = ctx.JSON(he.Code, Error{Code: he.Code, Message: message})
	}
}
