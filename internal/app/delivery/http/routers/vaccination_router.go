package routers

import (
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/services/core/vaccinations"

	"github.com/go-chi/chi/v5"
)

func attachVaccinationRoutes(router chi.Router, middlewares *middlewares.Middlewares, vaccinationController *vaccinations.VaccinationController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", vaccinationController.RecordVaccination)
}
