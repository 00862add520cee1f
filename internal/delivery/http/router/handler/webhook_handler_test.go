package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estatex/internal/domain/entity"
	mockUC "estatex/internal/mocks/usecase"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testHandlerLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPropertyPayload_ToEntity_RentalAliases(t *testing.T) {
	id := uuid.New()
	payload := &propertyPayload{
		ID:              id.String(),
		Category:        "Rental",
		Approved:        true,
		Location:        "Andheri West",
		BuildingSociety: "Sunshine Heights",
		FlatNo:          "B-1204",
		Rent:            "₹45,000",
		Area:            950,
		PropertyType:    "2BHK",
		Bedrooms:        2,
		Amenities:       "Gym, Swimming Pool,Parking",
	}

	property, err := payload.toEntity()
	require.NoError(t, err)

	assert.Equal(t, id, property.ID)
	assert.Equal(t, entity.CategoryRental, property.Category)
	// Title falls back to the building name when absent
	assert.Equal(t, "Sunshine Heights", property.Title)
	// The rental price alias normalizes into the numeric price
	assert.InDelta(t, 45000, property.PriceNumeric, 0.001)
	assert.Equal(t, []string{"Gym", "Swimming Pool", "Parking"}, property.Amenities)
}

func TestPropertyPayload_ToEntity_ResaleAliases(t *testing.T) {
	payload := &propertyPayload{
		ID:            uuid.New().String(),
		Title:         "Sea-facing 3BHK",
		Category:      "resale",
		ExpectedPrice: "1.2 Cr",
	}

	property, err := payload.toEntity()
	require.NoError(t, err)

	assert.Equal(t, entity.CategoryResale, property.Category)
	assert.Equal(t, "Sea-facing 3BHK", property.Title)
	assert.InDelta(t, 12_000_000, property.PriceNumeric, 0.001)
}

func TestPropertyPayload_ToEntity_UnifiedPriceWins(t *testing.T) {
	payload := &propertyPayload{
		ID:    uuid.New().String(),
		Title: "Listing",
		Price: "30K",
		Rent:  "₹45,000",
	}

	property, err := payload.toEntity()
	require.NoError(t, err)
	assert.InDelta(t, 30_000, property.PriceNumeric, 0.001)
}

func TestPropertyPayload_ToEntity_InvalidID(t *testing.T) {
	payload := &propertyPayload{ID: "not-a-uuid"}

	_, err := payload.toEntity()
	assert.Error(t, err)
}

func TestWebhookHandler_PropertyMatch(t *testing.T) {
	evaluationUC := mockUC.NewMockEvaluationUsecase(t)
	evaluationUC.EXPECT().
		EvaluateProperty(mock.Anything, mock.MatchedBy(func(p *entity.Property) bool {
			return p.Title == "Sunshine Heights" && p.Approved
		})).
		Return(&usecase.CycleResult{AlertsEvaluated: 3, MatchesFound: 1}, nil)

	h := NewWebhookHandler(evaluationUC, testHandlerLogger())

	body := `{
		"action": "property_created",
		"propertyData": {
			"id": "` + uuid.NewString() + `",
			"buildingSociety": "Sunshine Heights",
			"category": "rental",
			"approved": true,
			"rent": "₹45,000"
		}
	}`

	c, rec := postJSON("/api/webhooks/property-match", body)
	require.NoError(t, h.PropertyMatch(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"matchesFound":1`)
}

func TestWebhookHandler_PropertyMatch_UnknownAction(t *testing.T) {
	evaluationUC := mockUC.NewMockEvaluationUsecase(t)
	h := NewWebhookHandler(evaluationUC, testHandlerLogger())

	c, rec := postJSON("/api/webhooks/property-match", `{"action":"property_deleted","propertyData":{}}`)
	require.NoError(t, h.PropertyMatch(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_ACTION")
	evaluationUC.AssertNotCalled(t, "EvaluateProperty")
}
