package routers

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/services/core/appointments"
	"arogya-service/internal/app/services/core/auth"
	"arogya-service/internal/app/services/core/labreports"
	"arogya-service/internal/app/services/core/patients"
	"arogya-service/internal/app/services/core/slots"
	"arogya-service/internal/app/services/core/vaccinations"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	patientController *patients.PatientController,
	slotController *slots.SlotController,
	appointmentController *appointments.AppointmentController,
	vaccinationController *vaccinations.VaccinationController,
	labReportController *labreports.LabReportController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController, vaccinationController, labReportController)
			})

			r.Route("/slots", func(r chi.Router) {
				attachSlotRoutes(r, middlewares, slotController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/vaccinations", func(r chi.Router) {
				attachVaccinationRoutes(r, middlewares, vaccinationController)
			})

			r.Route("/lab-reports", func(r chi.Router) {
				attachLabReportRoutes(r, middlewares, labReportController)
			})
		})
	})
}
