package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/misshanya/link-shortener/pkg/form"
	"github.com/misshanya/link-shortener/web/internal/transport/http/dto"
)

const pageTemplate = "index.html"

type service interface {
	Submit(ctx context.Context, origin, longURL, customShort string) (form.State, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{service: service}
}

// Index renders the idle form.
func (h *Handler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, pageTemplate, form.State{})
}

// Submit handles the form post and renders the form with the outcome inline.
func (h *Handler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ShortenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	state, _ := h.service.Submit(ctx, requestOrigin(c), req.Original, req.Short)

	return c.Render(http.StatusOK, pageTemplate, state)
}

// ShortenURL is the JSON flavour of Submit.
func (h *Handler) ShortenURL(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ShortenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	state, err := h.service.Submit(ctx, requestOrigin(c), req.Original, req.Short)

	var validationErr *form.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, state.Error)
	case err != nil:
		return echo.NewHTTPError(http.StatusBadGateway, state.Error)
	}

	resp := &dto.ShortenResponse{
		ShortURL: state.Result.ShortURL,
		Short:    state.Result.Response.Short,
		Original: state.Result.Response.Original,
		Response: state.Result.Response.Raw,
	}
	return c.JSON(http.StatusOK, resp)
}

func requestOrigin(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}
