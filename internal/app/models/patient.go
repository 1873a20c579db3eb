package models

type Patient struct {
	ID          string `bson:"_id,omitempty"`
	FullName    string `bson:"fullName"`
	Email       string `bson:"email,omitempty"`
	PhoneNumber string `bson:"phoneNumber"`
	DateOfBirth string `bson:"dateOfBirth"`
	Gender      string `bson:"gender"`
	BloodGroup  string `bson:"bloodGroup,omitempty"`
	Address     string `bson:"address,omitempty"`
	TimeModel   `bson:",inline"`
}
