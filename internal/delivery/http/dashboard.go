package http

import (
	"crypto-analysis/internal/dto"
	"crypto-analysis/pkg/logger"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupDashboard(base *echo.Group) {
	v1 := base.Group("/v1")
	{
		v1.GET("/dashboard", h.getDashboard)
		v1.GET("/psychology", h.getPsychology)
		v1.GET("/symbols", h.getFormOptions)
	}
}

// bindDashboardRequest starts from the widget defaults and overlays the query.
func (h *HttpAPIHandler) bindDashboardRequest(c echo.Context) (dto.DashboardRequest, error) {
	req := h.service.DashboardService.FormOptions().DefaultRequest()
	if err := c.Bind(&req); err != nil {
		return req, err
	}
	req.Symbol = strings.ToUpper(req.Symbol)
	req.Currency = strings.ToUpper(req.Currency)

	if err := h.validator.Struct(req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *HttpAPIHandler) getDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := h.bindDashboardRequest(c)
	if err != nil {
		h.log.WarnContext(ctx, "Invalid dashboard request", logger.ErrorField(err))
		return c.JSON(http.StatusBadRequest, invalidInputResponse(err))
	}

	dashboard := h.service.DashboardService.Render(ctx, req.ToSession())
	if dashboard.HasError(dto.ErrorKindDataUnavailable) {
		return c.JSON(http.StatusBadGateway, dto.NewBaseResponse(http.StatusBadGateway, "price history unavailable", dashboard))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", dashboard))
}

func (h *HttpAPIHandler) getPsychology(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", h.service.DashboardService.Psychology()))
}

func (h *HttpAPIHandler) getFormOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", h.service.DashboardService.FormOptions()))
}

func invalidInputResponse(err error) *dto.BaseResponse {
	resp := dto.NewBadRequestResponse(err.Error())
	resp.Data = dto.DashboardError{
		Kind:    dto.ErrorKindInvalidInput,
		Message: err.Error(),
	}
	return resp
}
