package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kleverretail/retail-cloud/internal/api/handler/v1/response"
	"github.com/kleverretail/retail-cloud/internal/domain"
)

type DashboardService interface {
	Summary(ctx context.Context) (domain.Summary, error)
}

type DashboardHandler struct {
	svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
	}
}

// HandleGetDashboard godoc
// @Summary      Record counts for the back-office dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.Summary
// @Failure      500  {object}  response.Err
// @Router       /api/v1/dashboard [get]
func (h *DashboardHandler) HandleGetDashboard(ctx *gin.Context) {
	summary, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetDashboard -> h.svc.Summary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
