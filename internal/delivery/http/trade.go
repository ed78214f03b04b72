package http

import (
	"crypto-analysis/internal/analysis"
	"crypto-analysis/internal/chart"
	"crypto-analysis/internal/dto"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupTrade(base *echo.Group) {
	tradeGroup := base.Group("/v1/trade")
	tradeGroup.POST("/calculate", h.calculateTrade)
}

func (h *HttpAPIHandler) calculateTrade(c echo.Context) error {
	ctx := c.Request().Context()

	req := h.service.DashboardService.FormOptions().Trade
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, invalidInputResponse(errors.New("invalid request body")))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, invalidInputResponse(err))
	}

	params, err := h.service.DashboardService.CalculateTrade(ctx, req.ToInput())
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, invalidInputResponse(err))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to calculate trade parameters", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", dto.TradeCalculation{
		Input:      req,
		Parameters: params,
		Chart:      chart.TradeParameters(params),
	}))
}
