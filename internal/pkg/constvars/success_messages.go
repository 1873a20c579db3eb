package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess = "user registered successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// Patient messages
	PatientCreatedSuccess = "patient registered successfully"
	PatientUpdatedSuccess = "patient updated successfully"
	PatientGetSuccess     = "get patient successfully"
	PatientListSuccess    = "get patients successfully"

	// Slot messages
	SlotCreatedSuccess      = "slot created successfully"
	SlotsGeneratedSuccess   = "slots generated successfully"
	SlotsAvailableSuccess   = "get available slots successfully"
	ScheduleUpsertedSuccess = "doctor schedule saved successfully"

	// Appointment messages
	AppointmentBookedSuccess    = "appointment booked successfully"
	AppointmentCancelledSuccess = "appointment cancelled successfully"
	AppointmentListSuccess      = "get appointments successfully"

	// Vaccination messages
	VaccinationCreatedSuccess = "vaccination record created successfully"
	VaccinationListSuccess    = "get vaccination records successfully"

	// Lab report messages
	LabReportUploadedSuccess = "lab report uploaded successfully"
	LabReportGetSuccess      = "get lab report successfully"
	LabReportListSuccess     = "get lab reports successfully"
)
