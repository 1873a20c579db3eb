package requests

type CreateVaccination struct {
	PatientID        string `json:"patient_id" validate:"required"`
	VaccineName      string `json:"vaccine_name" validate:"required,min=2,max=100"`
	DoseNumber       int    `json:"dose_number" validate:"required,gte=1,lte=10"`
	AdministeredDate string `json:"administered_date" validate:"required,date_yyyymmdd"`
	AdministeredBy   string `json:"administered_by" validate:"required,min=2,max=100"`
	Notes            string `json:"notes" validate:"omitempty,max=300"`
}
