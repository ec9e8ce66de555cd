package handler

import (
	"errors"

	"courier-backoffice/internal/core/logger"
	"courier-backoffice/internal/features/fleet/domain"
	"courier-backoffice/internal/features/fleet/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FleetHandler handles HTTP requests for fleet operations.
type FleetHandler struct {
	service ports.FleetService
}

// NewFleetHandler creates a new FleetHandler.
func NewFleetHandler(service ports.FleetService) *FleetHandler {
	return &FleetHandler{
		service: service,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// AllocateRequest represents the request body for allocating a truck.
type AllocateRequest struct {
	// TruckID is the id of the truck to allocate.
	TruckID string `json:"truck_id"`
}

// ListConsignments godoc
// @Summary List consignments
// @Description Returns the current consignment snapshot, optionally filtered by status
// @Tags fleet
// @Produce json
// @Param status query string false "Status filter (pending, in-transit, delivered)"
// @Success 200 {array} domain.Consignment
// @Router /consignments [get]
func (h *FleetHandler) ListConsignments(c *fiber.Ctx) error {
	return c.JSON(h.service.Consignments(c.Query("status")))
}

// ListTrucks godoc
// @Summary List trucks
// @Description Returns the current truck snapshot, optionally filtered by status
// @Tags fleet
// @Produce json
// @Param status query string false "Status filter (available, in-transit, maintenance)"
// @Success 200 {array} domain.Truck
// @Router /trucks [get]
func (h *FleetHandler) ListTrucks(c *fiber.Ctx) error {
	return c.JSON(h.service.Trucks(c.Query("status")))
}

// CreateConsignment godoc
// @Summary Create a consignment
// @Description Creates a pending consignment and refreshes the snapshot
// @Tags fleet
// @Accept json
// @Produce json
// @Param consignment body domain.ConsignmentDraft true "Consignment fields"
// @Success 201
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /consignments [post]
func (h *FleetHandler) CreateConsignment(c *fiber.Ctx) error {
	var draft domain.ConsignmentDraft
	if err := c.BodyParser(&draft); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	if err := h.service.AddConsignment(c.Context(), draft); err != nil {
		return h.internalError(c, "Failed to create consignment", err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// CreateTruck godoc
// @Summary Create a truck
// @Description Creates an available truck and refreshes the snapshot
// @Tags fleet
// @Accept json
// @Produce json
// @Param truck body domain.TruckDraft true "Truck fields"
// @Success 201
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /trucks [post]
func (h *FleetHandler) CreateTruck(c *fiber.Ctx) error {
	var draft domain.TruckDraft
	if err := c.BodyParser(&draft); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	if err := h.service.AddTruck(c.Context(), draft); err != nil {
		return h.internalError(c, "Failed to create truck", err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// AllocateTruck godoc
// @Summary Allocate a truck to a consignment
// @Description Links an available truck to a consignment and moves both to in-transit
// @Tags fleet
// @Accept json
// @Produce json
// @Param id path string true "Consignment ID"
// @Param allocation body AllocateRequest true "Truck to allocate"
// @Success 200
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /consignments/{id}/allocate [post]
func (h *FleetHandler) AllocateTruck(c *fiber.Ctx) error {
	consignmentID := c.Params("id")

	var req AllocateRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}
	if req.TruckID == "" {
		return h.badRequest(c, "truck_id is required")
	}

	if err := h.service.AllocateTruck(c.Context(), consignmentID, req.TruckID); err != nil {
		return h.mapServiceError(c, "Failed to allocate truck", err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// MarkDelivered godoc
// @Summary Mark a consignment delivered
// @Description Moves a consignment to delivered and frees its truck
// @Tags fleet
// @Produce json
// @Param id path string true "Consignment ID"
// @Success 200
// @Failure 404 {object} ErrorResponse
// @Router /consignments/{id}/delivered [post]
func (h *FleetHandler) MarkDelivered(c *fiber.Ctx) error {
	if err := h.service.MarkConsignmentDelivered(c.Context(), c.Params("id")); err != nil {
		return h.mapServiceError(c, "Failed to mark consignment delivered", err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// MarkTruckAvailable godoc
// @Summary Mark a truck available
// @Description Frees a truck; a linked consignment goes back to pending
// @Tags fleet
// @Produce json
// @Param id path string true "Truck ID"
// @Success 200
// @Failure 404 {object} ErrorResponse
// @Router /trucks/{id}/available [post]
func (h *FleetHandler) MarkTruckAvailable(c *fiber.Ctx) error {
	if err := h.service.MarkTruckAvailable(c.Context(), c.Params("id")); err != nil {
		return h.mapServiceError(c, "Failed to mark truck available", err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// Refresh godoc
// @Summary Refresh the fleet snapshot
// @Description Re-fetches raw data and re-applies the allocation ledger
// @Tags fleet
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /refresh [post]
func (h *FleetHandler) Refresh(c *fiber.Ctx) error {
	if err := h.service.Refresh(c.Context()); err != nil {
		return h.internalError(c, "Failed to refresh fleet snapshot", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FleetHandler) mapServiceError(c *fiber.Ctx, logMessage string, err error) error {
	switch {
	case errors.Is(err, domain.ErrConsignmentNotFound), errors.Is(err, domain.ErrTruckNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	case errors.Is(err, domain.ErrTruckNotAvailable):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	default:
		return h.internalError(c, logMessage, err)
	}
}

func (h *FleetHandler) badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID(c),
	})
}

func (h *FleetHandler) internalError(c *fiber.Ctx, logMessage string, err error) error {
	logger.Get().Error(logMessage, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
