package v1

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleverretail/retail-cloud/internal/api/handler/v1/response"
	"github.com/kleverretail/retail-cloud/internal/domain"
)

const widgetOrderBody = `{"store_code":"HRG-001","staff_username":"admin","discount":0,"total":20.00,` +
	`"items":[{"name":"Widget","price":10.00,"qty":2}]}`

func newOrderRouter(svc *fakeOrderService) *gin.Engine {
	h := NewOrderHandler(svc)
	r := newTestRouter()
	r.GET("/orders", h.HandleListOrders)
	r.POST("/orders", h.HandleCreateOrder)
	r.GET("/orders/:orderID", h.HandleGetOrder)

	return r
}

func TestOrderHandler_CreateAndGet(t *testing.T) {
	svc := &fakeOrderService{catalog: harrogate()}
	r := newOrderRouter(svc)

	rec := doRequest(t, r, http.MethodPost, "/orders", widgetOrderBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.EqualValues(t, 1, created.ID)
	assert.Equal(t, "HRG-001", created.StoreCode)
	require.Len(t, created.Lines, 1)
	assert.Equal(t, "Widget", created.Lines[0].ItemName)

	rec = doRequest(t, r, http.MethodGet, "/orders/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var found domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	assert.Equal(t, created.ID, found.ID)

	rec = doRequest(t, r, http.MethodGet, "/orders/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/orders/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_CreateOrder_UnknownStore(t *testing.T) {
	svc := &fakeOrderService{catalog: harrogate()}
	r := newOrderRouter(svc)

	rec := doRequest(t, r, http.MethodPost, "/orders",
		`{"store_code":"NOPE","total":20,"items":[{"name":"Widget","price":10,"qty":2}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var errBody response.Err
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "unknown store", errBody.ErrorText)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	svc := &fakeOrderService{catalog: harrogate()}
	r := newOrderRouter(svc)

	for i := 0; i < 2; i++ {
		rec := doRequest(t, r, http.MethodPost, "/orders", widgetOrderBody)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, r, http.MethodGet, "/orders?store_code=HRG-001", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.EqualValues(t, 2, orders[0].ID)

	rec = doRequest(t, r, http.MethodGet, "/orders?store_code=NOPE", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
