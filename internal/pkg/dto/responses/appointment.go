package responses

type Appointment struct {
	ID        string `json:"id"`
	SlotID    string `json:"slot_id"`
	DoctorID  string `json:"doctor_id"`
	PatientID string `json:"patient_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason,omitempty"`
	Status    string `json:"status"`
}
