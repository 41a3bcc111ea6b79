package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kleverretail/retail-cloud/internal/api/handler/v1/request"
	"github.com/kleverretail/retail-cloud/internal/api/handler/v1/response"
	"github.com/kleverretail/retail-cloud/internal/domain"
	"github.com/kleverretail/retail-cloud/internal/service"
)

type StaffService interface {
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	GetStaff(ctx context.Context, username string) (domain.Staff, error)
	CreateStaff(ctx context.Context, staff domain.Staff) (domain.Staff, error)
}

type StaffHandler struct {
	svc StaffService
}

func NewStaffHandler(svc StaffService) *StaffHandler {
	return &StaffHandler{
		svc: svc,
	}
}

// HandleListStaff godoc
// @Summary      List staff
// @Tags         staff
// @Produce      json
// @Success      200  {array}   domain.Staff
// @Failure      500  {object}  response.Err
// @Router       /api/v1/staff [get]
func (h *StaffHandler) HandleListStaff(ctx *gin.Context) {
	staff, err := h.svc.ListStaff(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListStaff -> h.svc.ListStaff -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, staff)
}

// HandleGetStaff godoc
// @Summary      Get a staff member by username
// @Tags         staff
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  domain.Staff
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /api/v1/staff/{username} [get]
func (h *StaffHandler) HandleGetStaff(ctx *gin.Context) {
	username := ctx.Param("username")

	staff, err := h.svc.GetStaff(ctx.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("staff", "username", username))
			return
		}

		err = fmt.Errorf("HandleGetStaff -> h.svc.GetStaff -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, staff)
}

// HandleCreateStaff godoc
// @Summary      Add a staff member
// @Description  Role defaults to "staff" when omitted.
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateStaffRequest  true  "staff member"
// @Success      201      {object}  domain.Staff
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/v1/staff [post]
func (h *StaffHandler) HandleCreateStaff(ctx *gin.Context) {
	var req request.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	staff, err := h.svc.CreateStaff(ctx.Request.Context(), domain.Staff{
		Username: req.Username,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, service.ErrStaffUsernameExists) {
			response.RenderErr(ctx, response.ErrConflict(fmt.Errorf("username %q is taken", req.Username)))
			return
		}

		err = fmt.Errorf("HandleCreateStaff -> h.svc.CreateStaff -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, staff)
}
