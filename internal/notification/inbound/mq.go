package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/unifydesk/internal/pkg/config"
	"github.com/shandysiswandi/unifydesk/internal/pkg/goroutine"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/messaging"
	"github.com/shandysiswandi/unifydesk/internal/pkg/uid"
	"github.com/shandysiswandi/unifydesk/internal/shared/event"
)

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Messaging,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHanlder := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enableConsumerNames := cfg.GetArray("modules.notification.consumer_names")

	var consumers = []struct {
		name              string
		topic             string // destination where publisher sent message
		nsqConsumerName   string // for nsq
		natsConsumerName  string // for nats
		kafkaConsumerName string // for kafka
		handler           messaging.Handler
	}{
		{
			name:              event.OtpIssuedDestinationConsumerNotification,
			topic:             event.OtpIssuedDestination,
			nsqConsumerName:   event.OtpIssuedDestinationConsumerNotification,
			natsConsumerName:  event.OtpIssuedDestinationConsumerNotification,
			kafkaConsumerName: event.OtpIssuedDestinationConsumerNotification,
			handler:           mqHanlder.OtpIssuedNotification,
		},
		{
			name:              event.UserRegisteredDestinationConsumerNotification,
			topic:             event.UserRegisteredDestination,
			nsqConsumerName:   event.UserRegisteredDestinationConsumerNotification,
			natsConsumerName:  event.UserRegisteredDestinationConsumerNotification,
			kafkaConsumerName: event.UserRegisteredDestinationConsumerNotification,
			handler:           mqHanlder.UserRegisteredNotification,
		},
	}

	for _, consumer := range consumers {
		if len(enableConsumerNames) > 0 && slices.Contains(enableConsumerNames, consumer.name) {
			routine.Go(ctx, func(pCtx context.Context) error {
				slog.InfoContext(ctx, "Running job for handling consumer", "consumer", consumer.name)
				return messenger.Consume(pCtx,
					consumer.topic,
					consumer.handler,
					messaging.WithChannel(consumer.nsqConsumerName),
					messaging.WithQueueGroup(consumer.natsConsumerName),
					messaging.WithGroup(consumer.kafkaConsumerName),
					messaging.WithAutoAck(true),
					messaging.WithConcurrency(10),
					messaging.WithMaxInFlight(10),
				)
			})
		}
	}
}
