package routes

import (
	"innsight/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuditRoutes registers all endpoints for the audit engine.
func RegisterAuditRoutes(r *gin.Engine, auditHandler *handlers.AuditHandler) {
	api := r.Group("/api/audit")
	{
		api.POST("/run", auditHandler.RunAudit)          // trigger a consistency check
		api.GET("/report", auditHandler.GetLatestReport) // latest cached report
	}
}
