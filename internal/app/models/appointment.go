package models

const (
	AppointmentStatusBooked    = "booked"
	AppointmentStatusCancelled = "cancelled"
)

type Appointment struct {
	ID        string `bson:"_id,omitempty"`
	SlotID    string `bson:"slotId"`
	DoctorID  string `bson:"doctorId"`
	PatientID string `bson:"patientId"`
	StartTime int64  `bson:"startTime"`
	EndTime   int64  `bson:"endTime"`
	Reason    string `bson:"reason,omitempty"`
	Status    string `bson:"status"`
	TimeModel `bson:",inline"`
}
