package stacks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stackpilot-backend/internal/assessment"
	"stackpilot-backend/internal/catalog"
	"stackpilot-backend/internal/shared/server/respond"
	"stackpilot-backend/internal/stacks/engine"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches stack plan routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/stack-plans", h.create)
	rg.GET("/stack-plans", h.list)
	rg.GET("/stack-plans/:id", h.get)
	rg.GET("/tools", h.listTools)
	rg.GET("/tools/:id", h.getTool)
}

func (h *Handler) create(c *gin.Context) {
	var in assessment.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	plan, err := h.Svc.CreatePlan(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, engine.ErrInfrastructure):
			respond.Error(c, http.StatusServiceUnavailable, "dependency_unavailable", "tool catalog is unavailable", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create stack plan", nil)
		}
		return
	}

	c.Set("planId", plan.ID)
	respond.Created(c, plan)
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	plans, err := h.Svc.ListRecentPlans(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list stack plans", nil)
		return
	}
	if plans == nil {
		plans = []StackPlan{}
	}
	respond.JSON(c, http.StatusOK, plans)
}

func (h *Handler) get(c *gin.Context) {
	plan, err := h.Svc.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "stack plan not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch stack plan", nil)
		}
		return
	}

	c.Set("planId", plan.ID)
	respond.JSON(c, http.StatusOK, plan)
}

func (h *Handler) listTools(c *gin.Context) {
	tools, err := h.Svc.ListTools(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list tools", nil)
		return
	}
	respond.JSON(c, http.StatusOK, tools)
}

func (h *Handler) getTool(c *gin.Context) {
	tool, err := h.Svc.GetTool(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "tool not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch tool", nil)
		return
	}
	respond.JSON(c, http.StatusOK, tool)
}
