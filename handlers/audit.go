package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"innsight/models"
	"innsight/services/audit"
	"innsight/utils"
)

// AuditHandler exposes the audit engine over HTTP.
type AuditHandler struct {
	Service audit.AuditService
	Cache   *redis.Client
	Logger  *zap.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc audit.AuditService, cache *redis.Client, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{Service: svc, Cache: cache, Logger: logger}
}

// RunAudit triggers a consistency check, optionally scoped to one property via
// the "propertyId" query parameter, and returns the report as JSON unchanged.
func (h *AuditHandler) RunAudit(c *gin.Context) {
	propertyID := c.Query("propertyId")

	report := h.Service.RunConsistencyCheck(c.Request.Context(), propertyID)

	// Cache the latest report per scope so dashboards can poll cheaply.
	if h.Cache != nil {
		if payload, err := json.Marshal(report); err == nil {
			if err := h.Cache.Set(c.Request.Context(), utils.ReportCacheKey(propertyID), payload, utils.ReportCacheTTL()).Err(); err != nil {
				h.Logger.Warn("failed to cache consistency report", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, report)
}

// GetLatestReport returns the most recent cached report for the scope, if any.
func (h *AuditHandler) GetLatestReport(c *gin.Context) {
	if h.Cache == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "report cache unavailable", "")
		return
	}
	propertyID := c.Query("propertyId")

	payload, err := h.Cache.Get(c.Request.Context(), utils.ReportCacheKey(propertyID)).Bytes()
	if err == redis.Nil {
		utils.JSONError(c, http.StatusNotFound, "no report cached for this scope", "trigger a run first")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read cached report", err.Error())
		return
	}

	var report models.ConsistencyReport
	if err := json.Unmarshal(payload, &report); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "cached report is corrupt", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}
