package models

import (
	"arogya-service/internal/pkg/constvars"
	"time"
)

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	PatientID string    `json:"patient_id,omitempty"`
	DoctorID  string    `json:"doctor_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsNotPatient() bool {
	return s.Role != constvars.RolePatient
}

func (s *Session) IsNotDoctor() bool {
	return s.Role != constvars.RoleDoctor
}
