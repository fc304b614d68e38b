// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"recipeshare/pkg/logger"
)

// RequestContextKey - ключ Locals с контекстом запроса.
const RequestContextKey = "requestContext"

// NewRequestContextMiddleware создает промежуточное ПО, которое снабжает каждый
// запрос контекстом с идентификатором запроса и дедлайном.
func NewRequestContextMiddleware(timeout time.Duration) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), "")

		if timeout > 0 {
			var cancel context.CancelFunc
			requestCtx, cancel = context.WithTimeout(requestCtx, timeout)
			defer cancel()
		}

		ctx.Locals(RequestContextKey, requestCtx)

		return ctx.Next()
	}
}

// RequestContext возвращает контекст запроса, подготовленный промежуточным ПО.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(RequestContextKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
