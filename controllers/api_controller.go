package controllers

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsJSON []byte

// EndpointsJSON returns the endpoint catalog served at GET /api.
func EndpointsJSON() []byte { return endpointsJSON }

// APIController serves the endpoint catalog.
type APIController struct{}

// NewAPIController creates a new APIController instance.
func NewAPIController() *APIController { return &APIController{} }

// GetEndpoints describes every available endpoint.
func (a *APIController) GetEndpoints(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", endpointsJSON)
}
