package common

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/attribute"
)

func (r *Telemetry) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// * ensure context
		if c.Context() == nil {
			c.SetContext(context.Background())
		}

		// * start span
		ctx, span := r.Tracer.Start(c.Context(), c.Method()+" "+c.Path())
		defer span.End()
		c.SetContext(ctx)

		// * set attributes
		span.SetAttributes(
			attribute.String("http.method", c.Method()),
			attribute.String("http.url", c.OriginalURL()),
			attribute.String("http.user_agent", c.Get("User-Agent")),
		)

		// * count metric
		r.Instrument.HttpActiveRequestCounter(ctx, 1, c.Path())
		defer r.Instrument.HttpActiveRequestCounter(ctx, -1, c.Path())

		// * proceed to next
		started := time.Now()
		err := c.Next()
		r.Instrument.HttpDurationRecord(ctx, time.Since(started).Milliseconds(), c.Path(), c.Response().StatusCode())

		return err
	}
}
