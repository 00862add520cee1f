package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"estatex/internal/delivery/http/response"
	"estatex/internal/domain/entity"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Webhook actions accepted on the property-match endpoint.
const (
	actionPropertyCreated = "property_created"
	actionPropertyUpdated = "property_updated"
)

// propertyPayload is the duck-typed listing shape posted by the listing
// service. Rental and resale submissions use different field names for the
// same concept, so every alias is bound and normalized in toEntity.
type propertyPayload struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	Approved        bool    `json:"approved"`
	Location        string  `json:"location"`
	Zone            string  `json:"zone"`
	BuildingSociety string  `json:"buildingSociety"`
	FlatNo          string  `json:"flatNo"`
	Price           string  `json:"price"`
	Rent            string  `json:"rent"`
	ExpectedPrice   string  `json:"expectedPrice"`
	Area            float64 `json:"area"`
	PropertyType    string  `json:"propertyType"`
	Bedrooms        int     `json:"bedrooms"`
	Furnishing      string  `json:"furnishing"`
	Amenities       string  `json:"amenities"`
	Description     string  `json:"description"`
	Verified        bool    `json:"verified"`
}

// toEntity normalizes the payload into the canonical listing shape. The unit
// number (flatNo) is deliberately not carried over.
func (p *propertyPayload) toEntity() (*entity.Property, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid property id")
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = strings.TrimSpace(p.BuildingSociety)
	}

	// Rental listings carry "rent", resale listings "expectedPrice"; some
	// older submissions already send a unified "price".
	display := p.Price
	if display == "" {
		display = p.Rent
	}
	if display == "" {
		display = p.ExpectedPrice
	}

	now := time.Now()

	return &entity.Property{
		ID:              id,
		Title:           title,
		Category:        entity.Category(strings.ToLower(strings.TrimSpace(p.Category))),
		Approved:        p.Approved,
		Location:        p.Location,
		Zone:            p.Zone,
		BuildingSociety: p.BuildingSociety,
		PriceNumeric:    entity.ParsePrice(display),
		Area:            p.Area,
		PropertyType:    p.PropertyType,
		Bedrooms:        p.Bedrooms,
		Furnishing:      p.Furnishing,
		Amenities:       entity.ParseAmenities(p.Amenities),
		Description:     p.Description,
		Verified:        p.Verified,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

type webhookRequest struct {
	Action       string          `json:"action"`
	PropertyData propertyPayload `json:"propertyData"`
}

// WebhookHandler holds dependencies for the listing-service webhook.
type WebhookHandler struct {
	evaluationUC usecase.EvaluationUsecase
	logger       *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(evaluationUC usecase.EvaluationUsecase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		evaluationUC: evaluationUC,
		logger:       logger,
	}
}

// PropertyMatch handles a listing created/updated notification from the
// listing service and evaluates the listing against all active alerts.
func (h *WebhookHandler) PropertyMatch(c echo.Context) error {
	var req webhookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid webhook payload")
	}

	if req.Action != actionPropertyCreated && req.Action != actionPropertyUpdated {
		return response.BadRequest(c, "UNKNOWN_ACTION", "Unknown webhook action: "+req.Action)
	}

	property, err := req.PropertyData.toEntity()
	if err != nil {
		return response.BadRequest(c, "INVALID_PROPERTY", err.Error())
	}

	result, err := h.evaluationUC.EvaluateProperty(c.Request().Context(), property)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Webhook evaluation finished",
		slog.String("action", req.Action),
		slog.String("property_id", property.ID.String()),
		slog.Int("matches_found", result.MatchesFound),
	)

	return response.Success(c, http.StatusOK, result, "Property evaluated")
}
