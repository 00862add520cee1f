package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"estatex/internal/delivery/http/response"
	"estatex/internal/domain/repository"
	"estatex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for the channel-partner search handler.
type SearchHandler struct {
	uc     usecase.SearchUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		uc:     uc,
		logger: logger,
	}
}

// Search handles the channel-partner listing search request.
func (h *SearchHandler) Search(c echo.Context) error {
	filter := repository.SearchFilter{
		Query:        c.QueryParam("q"),
		Location:     c.QueryParam("location"),
		Category:     c.QueryParam("category"),
		PropertyType: c.QueryParam("propertyType"),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_PRICE", "minPrice must be numeric")
		}
		filter.MinPrice = value
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_PRICE", "maxPrice must be numeric")
		}
		filter.MaxPrice = value
	}

	results, err := h.uc.Search(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, results, "")
}
