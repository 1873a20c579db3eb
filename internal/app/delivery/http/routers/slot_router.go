package routers

import (
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/services/core/slots"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, middlewares *middlewares.Middlewares, slotController *slots.SlotController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", slotController.CreateSlot)
	router.Post("/bulk", slotController.CreateBulkSlots)
	router.Get("/available", slotController.GetAvailableSlots)
	router.Put("/schedule", slotController.UpsertDoctorSchedule)
}
