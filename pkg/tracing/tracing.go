package tracing

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	ServiceName = "pathfinder"

	// GenerationSpan 每次学习路径生成对应一个span
	GenerationSpan = "GenerateLearningPath"
)

// 生成span上的属性
var (
	AttrGenerator = attribute.Key("pathfinder.generator")
	AttrLevel     = attribute.Key("pathfinder.level")
	AttrLocale    = attribute.Key("pathfinder.locale")
	AttrSteps     = attribute.Key("pathfinder.steps")
)

// tracer 每次从全局provider获取，InitTracer之后创建的span才会导出
func tracer() trace.Tracer {
	return otel.Tracer(ServiceName)
}

// InitTracer 注册Jaeger导出器并设置全局provider，调用方负责Shutdown
func InitTracer(serviceName, collectorEndpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(collectorEndpoint)))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp, nil
}

// StartGeneration 开始一次生成的span
func StartGeneration(ctx context.Context, generator, level, locale string) (context.Context, trace.Span) {
	return tracer().Start(ctx, GenerationSpan,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			AttrGenerator.String(generator),
			AttrLevel.String(level),
			AttrLocale.String(locale),
		),
	)
}

// EndGeneration 记录结果并结束span。成功时写入步骤数
func EndGeneration(span trace.Span, steps int, err error) {
	defer span.End()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(AttrSteps.Int(steps))
	span.SetStatus(codes.Ok, "")
}

// GinMiddleware 以路由模板命名span，未匹配的路由用原始路径
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx, span := tracer().Start(ctx, c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPMethodKey.String(c.Request.Method),
				semconv.HTTPRouteKey.String(route),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(semconv.HTTPStatusCodeKey.Int(status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}
