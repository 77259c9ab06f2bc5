// Package tracer provides distributed tracing functionality using OpenTelemetry.
//
// The tracer package offers a simplified interface for implementing distributed tracing
// in Go applications. It abstracts away the complexity of OpenTelemetry to provide
// a clean, easy-to-use API for creating and managing trace spans.
//
// Core Features:
//   - Simple span creation and management
//   - Error recording and status tracking
//   - Customizable span attributes
//   - Cross-service trace context propagation
//   - Integration with OpenTelemetry backends via OTLP over HTTP
//
// Basic Usage:
//
//	import (
//		"context"
//
//		"github.com/go-skynet/localai-go/v1/logger"
//		"github.com/go-skynet/localai-go/v1/tracer"
//	)
//
//	// Create a logger
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info})
//
//	// Create a tracer
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "localai-adapter",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//
//	// Create a span
//	ctx, span := tracerClient.StartSpan(ctx, "embed-documents")
//	defer span.End()
//
//	// Add attributes to the span
//	tracerClient.SetAttributes(span, map[string]interface{}{
//		"model":          "text-embedding-ada-002",
//		"document.count": 64,
//	})
//
//	// Record errors
//	if err != nil {
//		tracerClient.RecordErrorOnSpan(span, err)
//		return nil, err
//	}
//
// Distributed Tracing Across Services:
//
//	// In the sending service
//	ctx, span := tracerClient.StartSpan(ctx, "send-request")
//	defer span.End()
//
//	// Extract trace context for an outgoing HTTP request
//	traceHeaders := tracerClient.GetCarrier(ctx)
//	for key, value := range traceHeaders {
//		req.Header.Set(key, value)
//	}
//
//	// In the receiving service
//	func httpHandler(w http.ResponseWriter, r *http.Request) {
//		// Extract headers from the request
//		headers := make(map[string]string)
//		for key, values := range r.Header {
//			if len(values) > 0 {
//				headers[key] = values[0]
//			}
//		}
//
//		// Create a context with the trace information
//		ctx := tracerClient.SetCarrierOnContext(r.Context(), headers)
//
//		// Create a child span in this service
//		ctx, span := tracerClient.StartSpan(ctx, "handle-request")
//		defer span.End()
//		// ...
//	}
//
// # Configuration
//
// The tracer can be configured via environment variables:
//
//	TRACER_SERVICE_NAME=localai-adapter   # Service name attached to all spans
//	APP_ENV=production                    # Deployment environment attribute
//	TRACER_ENABLE_EXPORT=true             # Enable the OTLP HTTP exporter
//
// When export is enabled, the OTLP exporter honours the standard OpenTelemetry
// environment variables such as OTEL_EXPORTER_OTLP_ENDPOINT to select the
// collector address.
//
// # FX Module Integration
//
// This package provides an fx module for easy integration:
//
//	app := fx.New(
//		logger.FXModule,
//		tracer.FXModule,
//		// ... other modules
//	)
//	app.Run()
//
// Best Practices:
//
//   - Create spans for significant operations in your code
//   - Always defer span.End() immediately after creating a span
//   - Use descriptive span names that identify the operation
//   - Add relevant attributes to provide context
//   - Record errors when operations fail
//   - Ensure trace context is properly propagated between services
//
// Thread Safety:
//
// All methods on the Tracer type and Span interface are safe for concurrent use
// by multiple goroutines.
package tracer
