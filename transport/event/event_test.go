package event_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"agenda/config"
	kafkaMocks "agenda/infras/kafka/mocks"
	otelMocks "agenda/infras/otel/mocks"
	appointmentModel "agenda/internal/domains/appointment/model"
	"agenda/transport/event"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func message(t *testing.T, value any) kafkaGo.Message {
	t.Helper()

	data, err := json.Marshal(value)
	require.NoError(t, err)

	return kafkaGo.Message{Key: []byte("b1|2030-01-07"), Value: data}
}

func TestConsumer_HandlePromoted(t *testing.T) {
	tests := []struct {
		name    string
		message func(t *testing.T) kafkaGo.Message
		wantErr bool
	}{
		{
			name: "promotion",
			message: func(t *testing.T) kafkaGo.Message {
				return message(t, appointmentModel.Event{Type: appointmentModel.EventPromoted, AppointmentID: "a2", WaitlistID: "w2"})
			},
		},
		{
			name: "other event type",
			message: func(t *testing.T) kafkaGo.Message {
				return message(t, appointmentModel.Event{Type: appointmentModel.EventBooked})
			},
		},
		{
			name: "malformed payload",
			message: func(_ *testing.T) kafkaGo.Message {
				return kafkaGo.Message{Value: []byte("{")}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumer := event.New(kafkaMocks.NewMockClient(gomock.NewController(t)), &config.Config{}, otelMocks.NewOtel())

			err := consumer.HandlePromoted(context.Background(), tt.message(t))
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestConsumer_HandlePromoted_LogFields(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).With().Timestamp().Logger()

	consumer := event.New(kafkaMocks.NewMockClient(gomock.NewController(t)), &config.Config{}, otelMocks.NewOtel())

	err := consumer.HandlePromoted(context.Background(), message(t, appointmentModel.Event{
		Type: appointmentModel.EventPromoted, AppointmentID: "a2", Date: "2030-01-07", Time: "10:00",
	}))
	require.NoError(t, err)

	line := buf.String()
	assert.Contains(t, line, `"start_time":"10:00"`)
	assert.Equal(t, 1, strings.Count(line, `"time":`))
}

func TestConsumer_Start(t *testing.T) {
	client := kafkaMocks.NewMockClient(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.Kafka.Topics.Waitlist = "agenda.waitlist.v1"

	handled := 0

	client.EXPECT().
		Consume(gomock.Any(), gomock.Any(), "agenda.waitlist.v1", gomock.Any()).
		Do(func(_ context.Context, _, _ string, handler func(kafkaGo.Message)) {
			handler(message(t, appointmentModel.Event{Type: appointmentModel.EventPromoted, WaitlistID: "w1"}))
			handler(kafkaGo.Message{Value: []byte("not json")})
			handled += 2
		})

	event.New(client, cfg, otelMocks.NewOtel()).Start(context.Background())

	assert.Equal(t, 2, handled)
}
