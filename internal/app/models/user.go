package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	FullName  string `bson:"fullName"`
	Role      string `bson:"role"`
	PatientID string `bson:"patientId,omitempty"`
	DoctorID  string `bson:"doctorId,omitempty"`
	TimeModel `bson:",inline"`
}
