package handlers

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsJSON []byte

type APIHandler struct{}

func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

// Endpoints serves GET /api: a self-description of every route the service
// exposes, shipped with the binary.
func (h *APIHandler) Endpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": json.RawMessage(endpointsJSON)})
}

// HealthCheck serves GET /api/health-check as a liveness probe.
func (h *APIHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "connection ok"})
}
