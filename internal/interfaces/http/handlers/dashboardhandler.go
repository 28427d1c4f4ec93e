package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/dashboard/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// AutoCloseRunner sweeps stale answered tickets. Satisfied by the ticket
// auto-close use case.
type AutoCloseRunner interface {
	Execute(ctx context.Context) (int, error)
}

// DashboardHandler handles the admin statistics endpoints.
type DashboardHandler struct {
	getStatsUseCase usecases.GetStatsExecutor
	getTrendUseCase usecases.GetTrendExecutor
	autoCloseRunner AutoCloseRunner
	logger          logger.Interface
}

func NewDashboardHandler(
	getStatsUseCase usecases.GetStatsExecutor,
	getTrendUseCase usecases.GetTrendExecutor,
	autoCloseRunner AutoCloseRunner,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		getStatsUseCase: getStatsUseCase,
		getTrendUseCase: getTrendUseCase,
		autoCloseRunner: autoCloseRunner,
		logger:          logger,
	}
}

// GetStats handles GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	days, err := parseDaysQuery(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid days parameter")
		return
	}

	result, err := h.getStatsUseCase.Execute(c.Request.Context(), usecases.GetStatsQuery{
		Days:       days,
		TicketType: c.Query("ticket_type"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTrends handles GET /api/dashboard/stats/trends
func (h *DashboardHandler) GetTrends(c *gin.Context) {
	days, err := parseDaysQuery(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid days parameter")
		return
	}

	result, err := h.getTrendUseCase.Execute(c.Request.Context(), usecases.GetTrendQuery{
		Days:       days,
		TicketType: c.Query("ticket_type"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AutoClose handles POST /api/dashboard/auto-close
func (h *DashboardHandler) AutoClose(c *gin.Context) {
	closed, err := h.autoCloseRunner.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("auto-close sweep failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"closed": closed})
}

func parseDaysQuery(c *gin.Context) (int, error) {
	raw := c.Query("days")
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
