package routers

import (
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/services/core/labreports"

	"github.com/go-chi/chi/v5"
)

func attachLabReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, labReportController *labreports.LabReportController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", labReportController.UploadLabReport)
	router.Get("/{reportID}/download", labReportController.GetLabReportDownload)
}
