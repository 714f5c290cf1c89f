package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"billkaro/m/domain"
	"billkaro/m/internal/database"
	"billkaro/m/internal/kvstore"
	"billkaro/m/internal/migrations"
	"billkaro/m/internal/report"
	"billkaro/m/internal/store"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db := database.Connect(":memory:")
	t.Cleanup(func() { db.Close() })
	migrations.Run(db)

	st, err := store.Open(kvstore.New(db))
	require.NoError(t, err)
	return New(st, "test_secret").Router()
}

func doJSON(t *testing.T, router http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "owner@shop.com", "password": "1234",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "owner@shop.com", "password": "123",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "", "password": "123456",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/invoices", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/invoices", "not.a.token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	token := loginToken(t, router)
	rec = doJSON(t, router, http.MethodGet, "/invoices", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateInvoiceEndToEnd(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router)

	rec := doJSON(t, router, http.MethodPost, "/invoices", token, map[string]any{
		"type":       "gst",
		"status":     "sent",
		"customerId": "c1",
		"items": []map[string]any{
			{"itemId": "i1", "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var inv domain.Invoice
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&inv))
	require.Regexp(t, `^INV-\d{4}-\d{4}$`, inv.InvoiceNumber)
	require.Equal(t, "Rajesh Kumar", inv.Customer.Name)
	require.InDelta(t, 26998, inv.Subtotal, 1e-6)
	require.InDelta(t, 4859.64, inv.TotalTax, 1e-6)
	require.InDelta(t, 31857.64, inv.GrandTotal, 1e-6)

	// The sale consumed stock.
	rec = doJSON(t, router, http.MethodGet, "/inventory?query=samsung", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []domain.InventoryItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 1)
	require.Equal(t, 22, items[0].Stock)

	rec = doJSON(t, router, http.MethodGet, "/inventory/summary", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary store.InventorySummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
	require.Equal(t, 22, summary.ItemCount)
}

func TestCreateInvoiceValidationError(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router)

	// No customer selected.
	rec := doJSON(t, router, http.MethodPost, "/invoices", token, map[string]any{
		"type":   "gst",
		"status": "sent",
		"items": []map[string]any{
			{"itemId": "i1", "quantity": 1},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown inventory reference.
	rec = doJSON(t, router, http.MethodPost, "/invoices", token, map[string]any{
		"type":       "gst",
		"customerId": "c1",
		"items": []map[string]any{
			{"itemId": "nope", "quantity": 1},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGSTReport(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router)

	rec := doJSON(t, router, http.MethodGet, "/reports/gst?month=2025-07", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary report.GSTSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
	require.Equal(t, "2025-07", summary.Month)
	require.Equal(t, 3, summary.InvoiceCount)
	require.InDelta(t, 3192.89, summary.TotalCGST, 1e-6)
	require.InDelta(t, 6385.78, summary.TotalTax, 1e-6)
}

func TestExpenseLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router)

	rec := doJSON(t, router, http.MethodPost, "/expenses", token, map[string]any{
		"category": "Transport", "description": "Fuel", "amount": 750,
		"date": "2025-07-14", "vendor": "HP Petrol Pump", "paymentMethod": "Cash",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var added domain.Expense
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&added))
	require.NotEmpty(t, added.ID)

	rec = doJSON(t, router, http.MethodDelete, "/expenses/"+added.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/expenses/"+added.ID, token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/expenses", token, map[string]any{
		"category": "", "amount": 100,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router)

	rec := doJSON(t, router, http.MethodGet, "/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile domain.BusinessProfile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&profile))
	require.Equal(t, "Sharma Electronics & General Store", profile.Name)

	profile.Name = "Sharma Superstore"
	rec = doJSON(t, router, http.MethodPut, "/profile", token, profile)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/profile", token, nil)
	var updated domain.BusinessProfile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	require.Equal(t, "Sharma Superstore", updated.Name)
}

func TestMarkInvoicePaid(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router)

	rec := doJSON(t, router, http.MethodPost, "/invoices/inv2/pay", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/invoices?search=INV-2507-1002", token, nil)
	var invoices []domain.Invoice
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&invoices))
	require.Len(t, invoices, 1)
	require.Equal(t, domain.StatusPaid, invoices[0].Status)
	require.NotEmpty(t, invoices[0].PaidAt)

	rec = doJSON(t, router, http.MethodPost, "/invoices/missing/pay", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
