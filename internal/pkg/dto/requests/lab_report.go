package requests

// UploadLabReport carries the multipart form fields plus the decoded file.
type UploadLabReport struct {
	PatientID  string `json:"patient_id" validate:"required"`
	Title      string `json:"title" validate:"required,min=2,max=150"`
	ReportDate string `json:"report_date" validate:"required,date_yyyymmdd"`
	OrderedBy  string `json:"ordered_by" validate:"omitempty,max=100"`

	FileName      string `json:"-"`
	FileExtension string `json:"-"`
	FileData      []byte `json:"-"`
}
