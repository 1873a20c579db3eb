package responses

type Vaccination struct {
	ID               string `json:"id"`
	PatientID        string `json:"patient_id"`
	VaccineName      string `json:"vaccine_name"`
	DoseNumber       int    `json:"dose_number"`
	AdministeredDate string `json:"administered_date"`
	AdministeredBy   string `json:"administered_by"`
	Notes            string `json:"notes,omitempty"`
}
