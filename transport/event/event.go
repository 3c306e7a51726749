package event

import (
	"context"
	"fmt"

	"agenda/config"
	"agenda/infras/kafka"
	"agenda/infras/otel"
	appointmentModel "agenda/internal/domains/appointment/model"
	"agenda/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const consumerGroup = "agenda-notifications"

// Consumer turns waitlist promotions into client notifications.
type Consumer struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) *Consumer {
	return &Consumer{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// Start blocks until ctx is done.
func (c *Consumer) Start(ctx context.Context) {
	group := c.cfg.Kafka.ConsumerGroup
	if group == "" {
		group = consumerGroup
	}

	log.Info().Str("topic", c.cfg.Kafka.Topics.Waitlist).Str("group", group).Msg("Starting waitlist notification consumer")

	c.client.Consume(ctx, group, c.cfg.Kafka.Topics.Waitlist, func(message kafkaGo.Message) {
		if err := c.HandlePromoted(ctx, message); err != nil {
			log.Error().Err(err).Str("key", string(message.Key)).Msg("failed to handle waitlist event")
		}
	})
}

func (c *Consumer) HandlePromoted(ctx context.Context, message kafkaGo.Message) (err error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandlePromoted")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key, event, err := kafka.DecodeKafkaMessage[appointmentModel.Event](message)
	if err != nil {
		return fmt.Errorf("failed to decode waitlist event: %w", err)
	}

	if event.Type != appointmentModel.EventPromoted {
		log.Debug().Str("type", event.Type).Msg("ignoring waitlist event")

		return nil
	}

	scope.SetAttributes(map[string]any{
		"event.key":      key,
		"appointment_id": event.AppointmentID,
		"waitlist_id":    event.WaitlistID,
	})

	log.Info().
		Str("appointment_id", event.AppointmentID).
		Str("waitlist_id", event.WaitlistID).
		Str("professional_id", event.ProfessionalID).
		Str("client_phone", event.ClientPhone).
		Str("date", event.Date).
		Str("start_time", event.Time).
		Msg("Client booked from waitlist, notification queued")

	return nil
}
