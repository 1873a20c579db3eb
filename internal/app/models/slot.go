package models

// Slot is one bookable interval. Start and end are UTC epoch milliseconds;
// startTime < endTime always holds for stored slots.
type Slot struct {
	ID        string `bson:"_id,omitempty"`
	DoctorID  string `bson:"doctorId"`
	StartTime int64  `bson:"startTime"`
	EndTime   int64  `bson:"endTime"`
	IsBooked  bool   `bson:"isBooked"`
}
