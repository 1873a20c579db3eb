package reminderqueue

import (
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"context"

	"go.uber.org/zap"
)

type logReminderSender struct {
	Log *zap.Logger
}

// NewLogReminderSender returns a sender that records each dispatched
// reminder on the application log. The clinic has no SMS or email channel
// provisioned yet; this keeps the drain path exercised until one exists.
func NewLogReminderSender(logger *zap.Logger) contracts.ReminderSender {
	return &logReminderSender{Log: logger}
}

func (s *logReminderSender) Send(ctx context.Context, message contracts.ReminderMessage) error {
	s.Log.Info("reminder dispatched",
		zap.String(constvars.LoggingAppointmentIDKey, message.AppointmentID),
		zap.String(constvars.LoggingPatientIDKey, message.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, message.DoctorID),
		zap.Int64("start_time", message.StartTime),
		zap.String(constvars.LoggingReminderKindKey, message.Kind),
	)
	return nil
}
