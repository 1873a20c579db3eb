package models

type LabReport struct {
	ID         string `bson:"_id,omitempty"`
	PatientID  string `bson:"patientId"`
	Title      string `bson:"title"`
	ReportDate string `bson:"reportDate"`
	OrderedBy  string `bson:"orderedBy,omitempty"`
	FileName   string `bson:"fileName"`
	ObjectName string `bson:"objectName"`
	TimeModel  `bson:",inline"`
}
