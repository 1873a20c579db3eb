package requests

type CreateSlot struct {
	DoctorID  string `json:"doctor_id" validate:"required"`
	Date      string `json:"date" validate:"required,date_yyyymmdd"`
	StartTime string `json:"start_time" validate:"required,time_hhmm"`
	EndTime   string `json:"end_time" validate:"required,time_hhmm"`
}

// CreateBulkSlots is the generation policy expanded into per-day slots.
// Break times are optional but must come as a pair.
type CreateBulkSlots struct {
	DoctorID            string `json:"doctor_id" validate:"required"`
	StartDate           string `json:"start_date" validate:"required,date_yyyymmdd"`
	EndDate             string `json:"end_date" validate:"required,date_yyyymmdd"`
	DailyStartTime      string `json:"daily_start_time" validate:"required,time_hhmm"`
	DailyEndTime        string `json:"daily_end_time" validate:"required,time_hhmm"`
	SlotDurationMinutes int    `json:"slot_duration_minutes" validate:"required,gt=0,lte=480"`
	BreakStartTime      string `json:"break_start_time" validate:"required_with=BreakEndTime,omitempty,time_hhmm"`
	BreakEndTime        string `json:"break_end_time" validate:"required_with=BreakStartTime,omitempty,time_hhmm"`
	IncludeWeekends     bool   `json:"include_weekends"`
}

type GetAvailableSlots struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Date     string `json:"date" validate:"required,date_yyyymmdd"`
}

// UpsertDoctorSchedule stores a standing generation policy that the slot
// worker expands on its rolling window.
type UpsertDoctorSchedule struct {
	DoctorID            string `json:"doctor_id" validate:"required"`
	DailyStartTime      string `json:"daily_start_time" validate:"required,time_hhmm"`
	DailyEndTime        string `json:"daily_end_time" validate:"required,time_hhmm"`
	SlotDurationMinutes int    `json:"slot_duration_minutes" validate:"required,gt=0,lte=480"`
	BreakStartTime      string `json:"break_start_time" validate:"required_with=BreakEndTime,omitempty,time_hhmm"`
	BreakEndTime        string `json:"break_end_time" validate:"required_with=BreakStartTime,omitempty,time_hhmm"`
	IncludeWeekends     bool   `json:"include_weekends"`
	Active              bool   `json:"active"`
}
