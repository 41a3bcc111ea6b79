package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kleverretail/retail-cloud/internal/api/handler/v1/request"
	"github.com/kleverretail/retail-cloud/internal/api/handler/v1/response"
	"github.com/kleverretail/retail-cloud/internal/service"
)

const (
	posStatusOK          = "ok"
	posErrUnknownStore   = "Unknown store"
	posErrStoreNotFound  = "Store not found"
	posErrInternalServer = "Internal server error"
)

// POSHandler serves the endpoints the point-of-sale client is built against.
// Bodies and status codes must not change shape.
type POSHandler struct {
	catalog CatalogService
	orders  OrderService
}

func NewPOSHandler(catalog CatalogService, orders OrderService) *POSHandler {
	return &POSHandler{
		catalog: catalog,
		orders:  orders,
	}
}

// HandleListStores godoc
// @Summary      List stores for the POS client
// @Tags         pos
// @Produce      json
// @Success      200  {array}   response.POSStore
// @Failure      500  {object}  response.POSError
// @Router       /api/stores [get]
func (h *POSHandler) HandleListStores(ctx *gin.Context) {
	stores, err := h.catalog.ListStores(ctx.Request.Context())
	if err != nil {
		h.renderInternalErr(ctx, fmt.Errorf("HandleListStores -> h.catalog.ListStores -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPOSStores(stores))
}

// HandleListItems godoc
// @Summary      List a store's items for the POS client
// @Tags         pos
// @Produce      json
// @Param        store_code  path      string  true  "Store code"
// @Success      200         {array}   response.POSItem
// @Failure      404         {object}  response.POSError
// @Failure      500         {object}  response.POSError
// @Router       /api/items/{store_code} [get]
func (h *POSHandler) HandleListItems(ctx *gin.Context) {
	items, err := h.catalog.ListItems(ctx.Request.Context(), ctx.Param("store_code"))
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			ctx.JSON(http.StatusNotFound, response.POSError{Error: posErrStoreNotFound})
			return
		}

		h.renderInternalErr(ctx, fmt.Errorf("HandleListItems -> h.catalog.ListItems -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPOSItems(items))
}

// HandleCreateOrder godoc
// @Summary      Submit a completed sale from the POS client
// @Tags         pos
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateOrderRequest  true  "order"
// @Success      200      {object}  response.POSOrderCreated
// @Failure      400      {object}  response.POSError
// @Failure      500      {object}  response.POSError
// @Router       /api/orders [post]
func (h *POSHandler) HandleCreateOrder(ctx *gin.Context) {
	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.POSError{Error: err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, response.POSError{Error: err.Error()})
		return
	}

	order, err := h.orders.CreateOrder(ctx.Request.Context(), req.Draft())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownStore):
			ctx.JSON(http.StatusBadRequest, response.POSError{Error: posErrUnknownStore})
		case errors.Is(err, service.ErrInvalidOrder), errors.Is(err, service.ErrTotalMismatch):
			ctx.JSON(http.StatusBadRequest, response.POSError{Error: err.Error()})
		default:
			h.renderInternalErr(ctx, fmt.Errorf("HandleCreateOrder -> h.orders.CreateOrder -> %w", err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.POSOrderCreated{OrderID: order.ID, Status: posStatusOK})
}

func (h *POSHandler) renderInternalErr(ctx *gin.Context, err error) {
	zap.L().Error(posErrInternalServer,
		zap.Error(err),
		zap.String("request_id", requestid.Get(ctx)),
		zap.String("path", ctx.Request.URL.Path),
	)
	ctx.JSON(http.StatusInternalServerError, response.POSError{Error: posErrInternalServer})
}
