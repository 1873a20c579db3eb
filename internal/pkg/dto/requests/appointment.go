package requests

type BookAppointment struct {
	SessionData string `json:"-"`
	SlotID      string `json:"slot_id" validate:"required"`
	Reason      string `json:"reason" validate:"omitempty,max=300"`
}

type CancelAppointment struct {
	SessionData   string `json:"-"`
	AppointmentID string `json:"-"`
}

type ListAppointments struct {
	SessionData string `json:"-"`
}
