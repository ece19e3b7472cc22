package http

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Middleware func(next Handler) Handler

// RecoverMiddleware turns a panic inside next into an error.
func RecoverMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(ctx *RequestCtx) (err error) {
			defer func() {
				if recovered := recover(); recovered != nil {
					err = fmt.Errorf("http: handler panic: %v", recovered)
				}
			}()

			return next(ctx)
		}
	}
}

func LoggingMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(ctx *RequestCtx) error {
			start := time.Now()
			err := next(ctx)

			status := 0
			if ctx.Response != nil {
				status = ctx.Response.Status
			}

			ctx.Logger.InfoContext(ctx.Context, "request handled",
				"method", ctx.Request.Method,
				"path", ctx.Request.Path,
				"status", status,
				"duration", time.Since(start),
			)

			return err
		}
	}
}

// TelemetryMiddleware opens a server span per request and records request
// count and duration.
func TelemetryMiddleware(tracer trace.Tracer, meter metric.Meter) (Middleware, error) {
	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("The number of handled requests"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Time spent building a response"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return func(next Handler) Handler {
		return func(ctx *RequestCtx) error {
			start := time.Now()

			spanCtx, span := tracer.Start(ctx.Context, ctx.Request.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", ctx.Request.Method),
					attribute.String("url.path", ctx.Request.Path),
					attribute.String("request.id", ctx.ID),
				))
			defer span.End()

			ctx.Context = spanCtx
			err := next(ctx)

			attrs := []attribute.KeyValue{
				attribute.String("http.request.method", ctx.Request.Method),
			}
			if ctx.Route != "" {
				span.SetName(ctx.Request.Method + " " + ctx.Route)
				attrs = append(attrs, attribute.String("http.route", ctx.Route))
			}
			if ctx.Response != nil {
				attrs = append(attrs, attribute.Int("http.response.status_code", ctx.Response.Status))
			}
			span.SetAttributes(attrs...)

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				attrs = append(attrs, attribute.String("error.type", fmt.Sprintf("%T", err)))
			}

			set := metric.WithAttributes(attrs...)
			requests.Add(spanCtx, 1, set)
			duration.Record(spanCtx, time.Since(start).Seconds(), set)

			return err
		}
	}, nil
}
