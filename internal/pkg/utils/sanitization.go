package utils

import (
	"arogya-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterRequest(request *requests.Register) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.FullName = strings.TrimSpace(request.FullName)
	request.Role = strings.ToLower(strings.TrimSpace(request.Role))
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeCreatePatientRequest(request *requests.CreatePatient) {
	request.FullName = strings.TrimSpace(request.FullName)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
	request.Address = strings.TrimSpace(request.Address)
	request.BloodGroup = strings.ToUpper(strings.TrimSpace(request.BloodGroup))
}

func SanitizeCreateSlotRequest(request *requests.CreateSlot) {
	request.DoctorID = strings.TrimSpace(request.DoctorID)
	request.Date = strings.TrimSpace(request.Date)
	request.StartTime = strings.TrimSpace(request.StartTime)
	request.EndTime = strings.TrimSpace(request.EndTime)
}

func SanitizeCreateBulkSlotsRequest(request *requests.CreateBulkSlots) {
	request.DoctorID = strings.TrimSpace(request.DoctorID)
	request.StartDate = strings.TrimSpace(request.StartDate)
	request.EndDate = strings.TrimSpace(request.EndDate)
	request.DailyStartTime = strings.TrimSpace(request.DailyStartTime)
	request.DailyEndTime = strings.TrimSpace(request.DailyEndTime)
	request.BreakStartTime = strings.TrimSpace(request.BreakStartTime)
	request.BreakEndTime = strings.TrimSpace(request.BreakEndTime)
}

func SanitizeCreateVaccinationRequest(request *requests.CreateVaccination) {
	request.PatientID = strings.TrimSpace(request.PatientID)
	request.VaccineName = strings.TrimSpace(request.VaccineName)
	request.AdministeredBy = strings.TrimSpace(request.AdministeredBy)
}
