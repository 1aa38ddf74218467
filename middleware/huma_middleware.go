package middleware

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

// HumaLogger logs every admin API request. The admin surface bypasses the
// gin middleware chain, so it carries its own access log.
func HumaLogger() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		next(ctx)

		log.Info().
			Str("method", ctx.Method()).
			Str("path", ctx.URL().Path).
			Str("operation", ctx.Operation().OperationID).
			Dur("latency", time.Since(start)).
			Msg("Admin API Request")
	}
}
