package otel_test

import (
	"context"
	"errors"
	"testing"

	"agenda/config"
	"agenda/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "agenda"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.Book")
	assert.NotNil(t, ctx)

	scope.SetAttributes(map[string]any{
		"professional_id": "b1",
		"duration":        30,
		"blocked":         false,
		"slots":           []string{"08:00"},
		"price":           30.5,
	})
	scope.AddEvent("slot.checked", map[string]any{"start": "08:00"})

	err := errors.New("slot taken")
	scope.TraceIfError(nil)
	scope.TraceIfError(&err)
	scope.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}

func book(scope otel.Scope, fail bool) (err error) {
	defer scope.End()
	defer scope.TraceIfError(&err)

	if fail {
		return errors.New("slot taken")
	}

	return nil
}

func TestScope_TraceIfErrorSeesNamedReturn(t *testing.T) {
	tests := []struct {
		name       string
		fail       bool
		wantStatus codes.Code
	}{
		{name: "failure marks the span", fail: true, wantStatus: codes.Error},
		{name: "success leaves it unset", fail: false, wantStatus: codes.Unset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

			_, span := provider.Tracer("test").Start(context.Background(), "service.Book")
			_ = book(otel.NewScope(span), tt.fail)

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.wantStatus, spans[0].Status().Code)
		})
	}
}
