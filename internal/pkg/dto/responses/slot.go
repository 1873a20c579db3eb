package responses

type CreatedSlot struct {
	SlotID string `json:"slot_id"`
}

// BulkSlots reports the identifiers inserted, in generation order.
type BulkSlots struct {
	SlotIDs       []string `json:"slot_ids"`
	InsertedCount int      `json:"inserted_count"`
}

// AvailableSlot renders slot bounds as wall-clock display strings.
type AvailableSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DoctorSchedule struct {
	ID                  string `json:"id"`
	DoctorID            string `json:"doctor_id"`
	DailyStartTime      string `json:"daily_start_time"`
	DailyEndTime        string `json:"daily_end_time"`
	SlotDurationMinutes int    `json:"slot_duration_minutes"`
	BreakStartTime      string `json:"break_start_time,omitempty"`
	BreakEndTime        string `json:"break_end_time,omitempty"`
	IncludeWeekends     bool   `json:"include_weekends"`
	Active              bool   `json:"active"`
}
