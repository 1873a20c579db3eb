package requests

type CreatePatient struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"required,phone_number"`
	DateOfBirth string `json:"date_of_birth" validate:"required,date_yyyymmdd"`
	Gender      string `json:"gender" validate:"required,oneof=male female other"`
	BloodGroup  string `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Address     string `json:"address" validate:"omitempty,max=300"`
}

type UpdatePatient struct {
	PatientID   string `json:"-"`
	FullName    string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,phone_number"`
	BloodGroup  string `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Address     string `json:"address" validate:"omitempty,max=300"`
}
