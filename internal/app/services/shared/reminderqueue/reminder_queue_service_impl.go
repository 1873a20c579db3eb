package reminderqueue

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	reminderQueueInstance contracts.ReminderQueueService
	onceReminderQueue     sync.Once
)

type reminderQueueService struct {
	channel   *amqp.Channel
	queueName string
	limiter   *rate.Limiter
	Log       *zap.Logger
}

// NewReminderQueueService declares the durable reminder queue and returns a
// publisher throttled to the configured publish rate, so a bulk booking
// burst cannot flood the broker.
func NewReminderQueueService(conn *amqp.Connection, internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.ReminderQueueService, error) {
	var initErr error
	onceReminderQueue.Do(func() {
		channel, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}

		_, err = channel.QueueDeclare(
			internalConfig.App.RabbitMQReminderQueue, // name
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,   // args
		)
		if err != nil {
			initErr = err
			return
		}

		prefetch := internalConfig.App.ReminderDrainBatchSize
		if prefetch <= 0 {
			prefetch = 1
		}
		if err := channel.Qos(prefetch, 0, false); err != nil {
			initErr = err
			return
		}

		perSecond := internalConfig.App.ReminderPublishPerSecond
		if perSecond <= 0 {
			perSecond = 1
		}

		reminderQueueInstance = &reminderQueueService{
			channel:   channel,
			queueName: internalConfig.App.RabbitMQReminderQueue,
			limiter:   rate.NewLimiter(rate.Limit(perSecond), perSecond),
			Log:       logger,
		}
	})
	return reminderQueueInstance, initErr
}

func (s *reminderQueueService) Enqueue(ctx context.Context, message contracts.ReminderMessage) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.channel.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		s.Log.Error("reminderQueueService.Enqueue publish failed",
			zap.String(constvars.LoggingQueueNameKey, s.queueName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	return nil
}

// FetchN pulls up to max messages with basic.get and no auto-ack; the
// caller acks or requeues each one by delivery tag. Undecodable payloads
// are acked and dropped so they cannot wedge the queue head.
func (s *reminderQueueService) FetchN(ctx context.Context, max int) ([]contracts.QueuedReminder, error) {
	if max <= 0 {
		max = 1
	}

	items := make([]contracts.QueuedReminder, 0, max)
	for i := 0; i < max; i++ {
		delivery, ok, err := s.channel.Get(s.queueName, false)
		if err != nil {
			return nil, exceptions.ErrRabbitMQConsumeMessage(err, s.queueName)
		}
		if !ok {
			break
		}

		var message contracts.ReminderMessage
		if err := json.Unmarshal(delivery.Body, &message); err != nil {
			s.Log.Error("reminderQueueService.FetchN dropping undecodable message",
				zap.String(constvars.LoggingQueueNameKey, s.queueName),
				zap.Error(err),
			)
			_ = delivery.Ack(false)
			continue
		}
		items = append(items, contracts.QueuedReminder{DeliveryTag: delivery.DeliveryTag, Message: message})
	}

	return items, nil
}

func (s *reminderQueueService) Ack(ctx context.Context, deliveryTag uint64) error {
	if err := s.channel.Ack(deliveryTag, false); err != nil {
		return exceptions.ErrRabbitMQConsumeMessage(err, s.queueName)
	}
	return nil
}

// Requeue returns an unprocessed message to the queue for a later drain.
func (s *reminderQueueService) Requeue(ctx context.Context, deliveryTag uint64) error {
	if err := s.channel.Nack(deliveryTag, false, true); err != nil {
		return exceptions.ErrRabbitMQConsumeMessage(err, s.queueName)
	}
	return nil
}
