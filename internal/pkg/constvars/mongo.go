package constvars

const (
	MongoCollectionUsers           = "users"
	MongoCollectionPatients        = "patients"
	MongoCollectionSlots           = "slots"
	MongoCollectionAppointments    = "appointments"
	MongoCollectionVaccinations    = "vaccinations"
	MongoCollectionLabReports      = "lab_reports"
	MongoCollectionDoctorSchedules = "doctor_schedules"
)
