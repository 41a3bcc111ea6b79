package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeOrder(t *testing.T, body string) CreateOrderRequest {
	t.Helper()

	var req CreateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	return req
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"store_code":"HRG-001","total":20,"items":[{"name":"Widget","price":10,"qty":2}]}`, ""},
		{"valid with strings", `{"store_code":"HRG-001","total":"20.00","discount":"0","items":[{"name":"Widget","price":"10.00","qty":"2"}]}`, ""},
		{"no items", `{"store_code":"HRG-001","total":0}`, ""},
		{"missing store code is left to the lookup", `{"total":0}`, ""},
		{"long store code is left to the lookup", `{"store_code":"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456","total":0}`, ""},
		{"total at the limit", `{"store_code":"HRG-001","total":1000000000000}`, ""},
		{"total over the limit", `{"store_code":"HRG-001","total":1000000000000.01}`, "total"},
		{"total overflows float64", `{"store_code":"HRG-001","total":1e400}`, "total"},
		{"discount overflows float64", `{"store_code":"HRG-001","total":1,"discount":"1e400"}`, "discount"},
		{"price overflows float64", `{"store_code":"HRG-001","total":1,"items":[{"name":"Widget","price":1e400,"qty":1}]}`, "price"},
		{"missing total", `{"store_code":"HRG-001"}`, "total"},
		{"null total", `{"store_code":"HRG-001","total":null}`, "total"},
		{"negative total", `{"store_code":"HRG-001","total":-0.01}`, "total"},
		{"negative discount", `{"store_code":"HRG-001","total":1,"discount":-2}`, "discount"},
		{"missing price", `{"store_code":"HRG-001","total":1,"items":[{"name":"Widget","qty":1}]}`, "items[0]"},
		{"negative price", `{"store_code":"HRG-001","total":1,"items":[{"name":"Widget","price":-1,"qty":1}]}`, "price"},
		{"zero qty", `{"store_code":"HRG-001","total":1,"items":[{"name":"Widget","price":1,"qty":0}]}`, "qty"},
		{"fractional qty", `{"store_code":"HRG-001","total":1,"items":[{"name":"Widget","price":1,"qty":"2.5"}]}`, "qty"},
		{"second line invalid", `{"store_code":"HRG-001","total":1,"items":[{"name":"A","price":1,"qty":1},{"name":"","price":1,"qty":1}]}`, "items[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := decodeOrder(t, tt.body)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateOrderRequest_RejectsNonNumbers(t *testing.T) {
	for _, body := range []string{
		`{"store_code":"HRG-001","total":"twenty"}`,
		`{"store_code":"HRG-001","total":true}`,
		`{"store_code":"HRG-001","total":1,"items":[{"name":"W","price":"","qty":1}]}`,
		`{"store_code":"HRG-001","total":1,"items":[{"name":"W","price":1,"qty":"two"}]}`,
	} {
		var req CreateOrderRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}

func TestCreateOrderRequest_Draft(t *testing.T) {
	req := decodeOrder(t, `{"store_code":"HRG-001","staff_username":"admin","total":"17.50","discount":2.5,`+
		`"items":[{"name":"Widget","price":10.00,"qty":2}]}`)
	require.NoError(t, req.Validate())

	draft := req.Draft()
	assert.Equal(t, "HRG-001", draft.StoreCode)
	assert.Equal(t, "admin", draft.StaffUsername)
	assert.Equal(t, "17.5", draft.Total.String())
	assert.Equal(t, "2.5", draft.Discount.String())
	require.Len(t, draft.Lines, 1)
	assert.Equal(t, "Widget", draft.Lines[0].Name)
	assert.Equal(t, "10", draft.Lines[0].Price.String())
	assert.Equal(t, 2, draft.Lines[0].Qty)
	assert.True(t, draft.TotalMatches())
}

func TestCreateOrderRequest_DraftDefaultsDiscount(t *testing.T) {
	req := decodeOrder(t, `{"store_code":"HRG-001","total":0}`)

	draft := req.Draft()
	assert.True(t, draft.Discount.IsZero())
	assert.NotNil(t, draft.Lines)
	assert.Empty(t, draft.Lines)
}
