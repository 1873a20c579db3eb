package routers

import (
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/services/core/labreports"
	"arogya-service/internal/app/services/core/patients"
	"arogya-service/internal/app/services/core/vaccinations"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	vaccinationController *vaccinations.VaccinationController,
	labReportController *labreports.LabReportController,
) {
	router.Use(middlewares.Authenticate)

	router.Post("/", patientController.RegisterPatient)
	router.Get("/", patientController.ListPatients)
	router.Get("/{patientID}", patientController.GetPatient)
	router.Put("/{patientID}", patientController.UpdatePatient)
	router.Get("/{patientID}/vaccinations", vaccinationController.ListPatientVaccinations)
	router.Get("/{patientID}/lab-reports", labReportController.ListPatientLabReports)
}
