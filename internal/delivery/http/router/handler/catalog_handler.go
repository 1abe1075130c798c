package handler

import (
	"log/slog"
	"net/http"

	"homely/internal/delivery/http/response"
	"homely/internal/domain/entity"
	"homely/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for service catalog handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateServiceRequest represents the request body for adding a catalog entry
type CreateServiceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Duration    string  `json:"duration"`
	Photo       string  `json:"photo" validate:"omitempty,url"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Description string  `json:"description"`
}

// ListServices handles retrieving the service catalog, optionally by category
func (h *CatalogHandler) ListServices(c echo.Context) error {
	listings, err := h.catalogUC.ListServiceListings(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "Services retrieved successfully")
}

// CreateService handles adding a new catalog entry
func (h *CatalogHandler) CreateService(c echo.Context) error {
	var req CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	listing := &entity.ServiceListing{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Duration:    req.Duration,
		Photo:       req.Photo,
		Rating:      req.Rating,
		Description: req.Description,
	}

	if err := h.catalogUC.CreateServiceListing(c.Request().Context(), listing); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, listing, "Service created successfully")
}
