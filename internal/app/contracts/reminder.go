package contracts

import "context"

// ReminderMessage is what the reminder queue carries for downstream
// notification senders.
type ReminderMessage struct {
	AppointmentID string `json:"appointment_id"`
	PatientID     string `json:"patient_id"`
	DoctorID      string `json:"doctor_id"`
	StartTime     int64  `json:"start_time"`
	Kind          string `json:"kind"`
}

// QueuedReminder pairs a fetched message with its broker delivery tag so
// the drain worker can ack or requeue it individually.
type QueuedReminder struct {
	DeliveryTag uint64
	Message     ReminderMessage
}

type ReminderQueueService interface {
	Enqueue(ctx context.Context, message ReminderMessage) error
	FetchN(ctx context.Context, max int) ([]QueuedReminder, error)
	Ack(ctx context.Context, deliveryTag uint64) error
	Requeue(ctx context.Context, deliveryTag uint64) error
}

// ReminderSender delivers a single reminder to the patient's notification
// channel.
type ReminderSender interface {
	Send(ctx context.Context, message ReminderMessage) error
}
