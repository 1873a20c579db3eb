package models

type Vaccination struct {
	ID               string `bson:"_id,omitempty"`
	PatientID        string `bson:"patientId"`
	VaccineName      string `bson:"vaccineName"`
	DoseNumber       int    `bson:"doseNumber"`
	AdministeredDate string `bson:"administeredDate"`
	AdministeredBy   string `bson:"administeredBy"`
	Notes            string `bson:"notes,omitempty"`
	TimeModel        `bson:",inline"`
}
