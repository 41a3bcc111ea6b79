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

type CatalogService interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	GetStore(ctx context.Context, code string) (domain.Store, error)
	CreateStore(ctx context.Context, store domain.Store) (domain.Store, error)
	ListItems(ctx context.Context, code string) ([]domain.Item, error)
	ListAllItems(ctx context.Context) ([]domain.Item, error)
	CreateItem(ctx context.Context, storeCode string, item domain.Item) (domain.Item, error)
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleListStores godoc
// @Summary      List stores
// @Tags         stores
// @Produce      json
// @Success      200  {array}   domain.Store
// @Failure      500  {object}  response.Err
// @Router       /api/v1/stores [get]
func (h *CatalogHandler) HandleListStores(ctx *gin.Context) {
	stores, err := h.svc.ListStores(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListStores -> h.svc.ListStores -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stores)
}

// HandleGetStore godoc
// @Summary      Get a store by code
// @Tags         stores
// @Produce      json
// @Param        storeCode  path      string  true  "Store code"
// @Success      200        {object}  domain.Store
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /api/v1/stores/{storeCode} [get]
func (h *CatalogHandler) HandleGetStore(ctx *gin.Context) {
	code := ctx.Param("storeCode")

	store, err := h.svc.GetStore(ctx.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("store", "code", code))
			return
		}

		err = fmt.Errorf("HandleGetStore -> h.svc.GetStore -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, store)
}

// HandleCreateStore godoc
// @Summary      Add a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateStoreRequest  true  "store"
// @Success      201      {object}  domain.Store
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/v1/stores [post]
func (h *CatalogHandler) HandleCreateStore(ctx *gin.Context) {
	var req request.CreateStoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	store, err := h.svc.CreateStore(ctx.Request.Context(), domain.Store{
		Code: req.Code,
		Name: req.Name,
		City: req.City,
	})
	if err != nil {
		if errors.Is(err, service.ErrStoreCodeExists) {
			response.RenderErr(ctx, response.ErrConflict(fmt.Errorf("store %q already exists", req.Code)))
			return
		}

		err = fmt.Errorf("HandleCreateStore -> h.svc.CreateStore -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, store)
}

// HandleListItems godoc
// @Summary      List items, optionally for one store
// @Tags         items
// @Produce      json
// @Param        store_code  query     string  false  "Store code"
// @Success      200         {array}   domain.Item
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /api/v1/items [get]
func (h *CatalogHandler) HandleListItems(ctx *gin.Context) {
	code := ctx.Query("store_code")

	var (
		items []domain.Item
		err   error
	)
	if code == "" {
		items, err = h.svc.ListAllItems(ctx.Request.Context())
	} else {
		items, err = h.svc.ListItems(ctx.Request.Context(), code)
	}
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("store", "code", code))
			return
		}

		err = fmt.Errorf("HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleCreateItem godoc
// @Summary      Add an item to a store
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        storeCode  path      string                     true  "Store code"
// @Param        request    body      request.CreateItemRequest  true  "item"
// @Success      201        {object}  domain.Item
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /api/v1/stores/{storeCode}/items [post]
func (h *CatalogHandler) HandleCreateItem(ctx *gin.Context) {
	code := ctx.Param("storeCode")

	var req request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.CreateItem(ctx.Request.Context(), code, domain.Item{
		Code:  req.Code,
		Name:  req.Name,
		Price: req.PriceFloat(),
		Stock: req.StockOrZero(),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoreNotFound):
			response.RenderErr(ctx, response.ErrNotFound("store", "code", code))
		case errors.Is(err, service.ErrItemCodeExists):
			response.RenderErr(ctx, response.ErrConflict(fmt.Errorf("item %q already exists in store %q", req.Code, code)))
		case errors.Is(err, service.ErrInvalidItem):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleCreateItem -> h.svc.CreateItem -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, item)
}
