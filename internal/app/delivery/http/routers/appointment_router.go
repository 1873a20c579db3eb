package routers

import (
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", appointmentController.BookAppointment)
	router.Get("/", appointmentController.ListAppointments)
	router.Delete("/{appointmentID}", appointmentController.CancelAppointment)
}
