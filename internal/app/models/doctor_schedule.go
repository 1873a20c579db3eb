package models

// DoctorSchedule is a standing generation policy the slot worker expands
// day by day on its rolling window.
type DoctorSchedule struct {
	ID                  string `bson:"_id,omitempty"`
	DoctorID            string `bson:"doctorId"`
	DailyStartTime      string `bson:"dailyStartTime"`
	DailyEndTime        string `bson:"dailyEndTime"`
	SlotDurationMinutes int    `bson:"slotDurationMinutes"`
	BreakStartTime      string `bson:"breakStartTime,omitempty"`
	BreakEndTime        string `bson:"breakEndTime,omitempty"`
	IncludeWeekends     bool   `bson:"includeWeekends"`
	Active              bool   `bson:"active"`
	// LastGeneratedDate is the latest civil date slots exist for.
	LastGeneratedDate string `bson:"lastGeneratedDate,omitempty"`
	TimeModel         `bson:",inline"`
}
