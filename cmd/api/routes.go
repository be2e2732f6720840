package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	httpadp "greenmarket-backend/internal/adapter/http"
	appmw "greenmarket-backend/internal/adapter/middleware"
)

type handlers struct {
	health      *httpadp.Handler
	estimation  *httpadp.EstimationHandler
	quotation   *httpadp.QuotationHandler
	project     *httpadp.ProjectHandler
	maintenance *httpadp.MaintenanceHandler
}

// registerRoutes mounts every endpoint. Writes that change workflow state go
// through the idempotency middleware; the estimation calculator does not.
func registerRoutes(e *echo.Echo, h handlers, rdb redis.Cmdable, idempTTL time.Duration) {
	e.GET("/health", h.health.Health)
	e.GET("/ready", h.health.Ready)

	e.POST("/estimations", h.estimation.Estimate)

	idem := appmw.Idempotency(rdb, appmw.Options{TTL: idempTTL})

	q := e.Group("/quotations")
	q.GET("", h.quotation.ListQuotations)
	q.POST("", h.quotation.RequestQuotation, idem)
	q.GET("/:quotation_id", h.quotation.GetQuotation)
	q.GET("/:quotation_id/versions", h.quotation.ListVersions)
	q.POST("/:quotation_id/versions", h.quotation.CreateDraft, idem)
	q.GET("/:quotation_id/versions/:version_id", h.quotation.GetVersion)
	q.PUT("/:quotation_id/versions/:version_id", h.quotation.UpdateDraft, idem)
	q.POST("/:quotation_id/versions/:version_id/submit", h.quotation.SubmitVersion, idem)
	q.POST("/:quotation_id/versions/:version_id/finalize", h.quotation.FinalizeVersion, idem)
	q.GET("/:quotation_id/versions/:version_id/export", h.quotation.ExportVersion)

	p := e.Group("/projects")
	p.GET("/completed", h.project.ListCompleted)
	p.GET("/:project_id", h.project.GetProject)
	p.POST("/:project_id/steps/:step_type/complete", h.project.CompleteStep, idem)
	p.GET("/:project_id/maintenances", h.maintenance.ListByProject)
	p.POST("/:project_id/maintenances", h.maintenance.Schedule, idem)

	m := e.Group("/maintenances")
	m.GET("/:maintenance_id", h.maintenance.GetMaintenance)
	m.POST("/:maintenance_id/reschedule", h.maintenance.RequestReschedule, idem)
	m.POST("/:maintenance_id/confirm", h.maintenance.Confirm, idem)
	m.POST("/:maintenance_id/reject", h.maintenance.Reject, idem)
	m.POST("/:maintenance_id/complete", h.maintenance.Complete, idem)
}
