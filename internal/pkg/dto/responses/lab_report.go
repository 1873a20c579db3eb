package responses

type LabReport struct {
	ID         string `json:"id"`
	PatientID  string `json:"patient_id"`
	Title      string `json:"title"`
	ReportDate string `json:"report_date"`
	OrderedBy  string `json:"ordered_by,omitempty"`
	FileName   string `json:"file_name"`
}

type LabReportDownload struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	PresignedURL string `json:"presigned_url"`
}
