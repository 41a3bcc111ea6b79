package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kleverretail/retail-cloud/internal/api/handler/v1/request"
	"github.com/kleverretail/retail-cloud/internal/api/handler/v1/response"
	"github.com/kleverretail/retail-cloud/internal/domain"
	"github.com/kleverretail/retail-cloud/internal/service"
)

type OrderService interface {
	CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error)
	GetOrder(ctx context.Context, id uint) (domain.Order, error)
	ListOrders(ctx context.Context, storeCode string) ([]domain.Order, error)
}

type OrderHandler struct {
	svc OrderService
}

func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{
		svc: svc,
	}
}

// HandleListOrders godoc
// @Summary      List orders, newest first
// @Tags         orders
// @Produce      json
// @Param        store_code  query     string  false  "Store code"
// @Success      200         {array}   domain.Order
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /api/v1/orders [get]
func (h *OrderHandler) HandleListOrders(ctx *gin.Context) {
	code := ctx.Query("store_code")

	orders, err := h.svc.ListOrders(ctx.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("store", "code", code))
			return
		}

		err = fmt.Errorf("HandleListOrders -> h.svc.ListOrders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// HandleGetOrder godoc
// @Summary      Get an order with its lines
// @Tags         orders
// @Produce      json
// @Param        orderID  path      int  true  "Order ID"
// @Success      200      {object}  domain.Order
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/v1/orders/{orderID} [get]
func (h *OrderHandler) HandleGetOrder(ctx *gin.Context) {
	idStr := ctx.Param("orderID")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid order id %q", idStr)))
		return
	}

	order, err := h.svc.GetOrder(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("order", "id", id))
			return
		}

		err = fmt.Errorf("HandleGetOrder -> h.svc.GetOrder -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// HandleCreateOrder godoc
// @Summary      Create an order
// @Description  Same payload as the POS endpoint. Returns the stored order.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateOrderRequest  true  "order"
// @Success      201      {object}  domain.Order
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/v1/orders [post]
func (h *OrderHandler) HandleCreateOrder(ctx *gin.Context) {
	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	order, err := h.svc.CreateOrder(ctx.Request.Context(), req.Draft())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownStore),
			errors.Is(err, service.ErrInvalidOrder),
			errors.Is(err, service.ErrTotalMismatch):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleCreateOrder -> h.svc.CreateOrder -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, order)
}
