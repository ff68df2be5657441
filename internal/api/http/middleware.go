package http

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kevin6098/roomi-sub001/internal/observability"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	app.Use(observability.RequestLogger(logger, metrics))
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware is the single place a user-facing error body is
// produced: every failure from the chain becomes {"error": ..., "code": ...}
// with the error's status.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apierror.NewInternal(nil)
			}
			if err != nil {
				apiErr := resolveError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), apiErr.Code)
				}
				if apiErr.StatusCode >= http.StatusInternalServerError {
					logger.Error("request failed", zap.Error(apiErr))
				} else {
					logger.Warn("request rejected",
						zap.Int("status", apiErr.StatusCode),
						zap.String("code", apiErr.Code),
						zap.Error(apiErr),
					)
				}
				c.Status(apiErr.StatusCode)
				_ = c.JSON(fiber.Map{"error": apiErr.Message, "code": apiErr.Code})
				err = nil
			}
		}()
		return c.Next()
	}
}

// resolveError folds framework errors (404 from the router, 405, body
// limits) into the shared taxonomy before the generic mapping runs.
func resolveError(err error) *apierror.APIError {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := apierror.CodeInternal
		switch fiberErr.Code {
		case http.StatusNotFound:
			code = apierror.CodeNotFound
		case http.StatusBadRequest:
			code = apierror.CodeValidation
		case http.StatusUnauthorized:
			code = apierror.CodeUnauthorized
		case http.StatusConflict:
			code = apierror.CodeConflict
		}
		return apierror.New(code, fiberErr.Message, fiberErr.Code)
	}
	return apierror.ToAPIError(err)
}
