package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"

	"billkaro/m/domain"
	"billkaro/m/internal/billing"
	"billkaro/m/internal/report"
	"billkaro/m/internal/store"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	store  *store.Store
	secret string
}

// New constructs a Handler.
func New(st *store.Store, secret string) *Handler {
	return &Handler{store: st, secret: secret}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Post("/auth/login", h.login)

	r.Group(func(pr chi.Router) {
		pr.Use(h.authMiddleware)

		pr.Post("/auth/logout", h.logout)

		pr.Route("/profile", func(r chi.Router) {
			r.Get("/", h.getProfile)
			r.Put("/", h.setProfile)
		})

		pr.Route("/customers", func(r chi.Router) {
			r.Get("/", h.listCustomers)
			r.Post("/", h.createCustomer)
			r.Put("/{id}", h.updateCustomer)
		})

		pr.Route("/inventory", func(r chi.Router) {
			r.Get("/", h.listInventory)
			r.Post("/", h.createInventoryItem)
			r.Put("/{id}", h.updateInventoryItem)
			r.Delete("/{id}", h.deleteInventoryItem)
			r.Get("/low-stock", h.lowStock)
			r.Get("/summary", h.inventorySummary)
		})

		pr.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.listInvoices)
			r.Post("/", h.createInvoice)
			r.Post("/{id}/pay", h.markInvoicePaid)
			r.Delete("/{id}", h.deleteInvoice)
		})

		pr.Route("/expenses", func(r chi.Router) {
			r.Get("/", h.listExpenses)
			r.Post("/", h.createExpense)
			r.Delete("/{id}", h.deleteExpense)
		})

		pr.Route("/reports", func(r chi.Router) {
			r.Get("/monthly", h.monthlyReport)
			r.Get("/expense-categories", h.expenseCategories)
			r.Get("/gst", h.gstSummary)
			r.Get("/overall", h.overallTotals)
			r.Get("/dashboard", h.dashboard)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Authentication

type authClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (h *Handler) generateToken(email string) (string, error) {
	claims := authClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.secret))
}

func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		tokenString := strings.TrimSpace(header[len("Bearer "):])
		token, err := jwt.ParseWithClaims(tokenString, &authClaims{}, func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(h.secret), nil
		})
		if err != nil || !token.Valid {
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login applies the stand-in credential rule via the store and issues a
// session token on success.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.store.Login(req.Email, req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := h.generateToken(req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to generate token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"token": token, "loggedIn": true})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout()
	respondJSON(w, http.StatusOK, map[string]any{"loggedIn": false})
}

// Profile

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Profile())
}

func (h *Handler) setProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.BusinessProfile
	if err := decodeJSON(r, &profile); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if profile.Name == "" {
		respondError(w, http.StatusBadRequest, "business name is required")
		return
	}
	h.store.SetProfile(profile)
	respondJSON(w, http.StatusOK, profile)
}

// Customers

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers := h.store.Customers(r.URL.Query().Get("query"))
	if customers == nil {
		customers = []domain.Customer{}
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if c.Name == "" {
		respondError(w, http.StatusBadRequest, "customer name is required")
		return
	}
	respondJSON(w, http.StatusCreated, h.store.AddCustomer(c))
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if c.Name == "" {
		respondError(w, http.StatusBadRequest, "customer name is required")
		return
	}
	if !h.store.UpdateCustomer(chi.URLParam(r, "id"), c) {
		respondError(w, http.StatusNotFound, "customer not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Inventory

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	items := h.store.Inventory(r.URL.Query().Get("query"), r.URL.Query().Get("category"))
	if items == nil {
		items = []domain.InventoryItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

type inventoryRequest struct {
	Name              string  `json:"name"`
	SKU               string  `json:"sku"`
	Category          string  `json:"category"`
	HSNCode           string  `json:"hsnCode"`
	Unit              string  `json:"unit"`
	PurchasePrice     float64 `json:"purchasePrice"`
	SellingPrice      float64 `json:"sellingPrice"`
	GSTRate           float64 `json:"gstRate"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"lowStockThreshold"`
}

func (r inventoryRequest) validate() string {
	if r.Name == "" || r.SKU == "" {
		return "name and sku are required"
	}
	if r.PurchasePrice < 0 || r.SellingPrice <= 0 {
		return "selling price must be positive"
	}
	if !domain.ValidGSTRate(r.GSTRate) {
		return "gstRate must be one of 0, 5, 12, 18 or 28"
	}
	if r.Stock < 0 {
		return "stock cannot be negative"
	}
	return ""
}

func (r inventoryRequest) item() domain.InventoryItem {
	return domain.InventoryItem{
		Name:              r.Name,
		SKU:               r.SKU,
		Category:          r.Category,
		HSNCode:           r.HSNCode,
		Unit:              r.Unit,
		PurchasePrice:     r.PurchasePrice,
		SellingPrice:      r.SellingPrice,
		GSTRate:           r.GSTRate,
		Stock:             r.Stock,
		LowStockThreshold: r.LowStockThreshold,
	}
}

func (h *Handler) createInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req inventoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	respondJSON(w, http.StatusCreated, h.store.AddInventoryItem(req.item()))
}

func (h *Handler) updateInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req inventoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if !h.store.UpdateInventoryItem(chi.URLParam(r, "id"), req.item()) {
		respondError(w, http.StatusNotFound, "inventory item not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) deleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteInventoryItem(chi.URLParam(r, "id")) {
		respondError(w, http.StatusNotFound, "inventory item not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	items := h.store.LowStockItems()
	if items == nil {
		items = []domain.InventoryItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) inventorySummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Summary())
}

// Invoices

type invoiceItemRequest struct {
	ItemID   string  `json:"itemId,omitempty"`
	Name     string  `json:"name"`
	HSNCode  string  `json:"hsnCode"`
	Quantity int     `json:"quantity"`
	Unit     string  `json:"unit"`
	Rate     float64 `json:"rate"`
	GSTRate  float64 `json:"gstRate"`
}

type invoiceRequest struct {
	Type       string               `json:"type"`
	Status     string               `json:"status"`
	CustomerID string               `json:"customerId"`
	Items      []invoiceItemRequest `json:"items"`
	Discount   float64              `json:"discount"`
	Notes      string               `json:"notes"`
	DueDate    string               `json:"dueDate"`
}

// createInvoice rebuilds the draft through the computation core. Derived
// fields sent by the client are ignored; only editable inputs are taken.
func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	draft := billing.NewDraft(req.Type != domain.InvoiceTypeNonGST, time.Now())
	draft.Discount = req.Discount
	draft.Notes = req.Notes
	if req.DueDate != "" {
		draft.DueDate = req.DueDate
	}

	if req.CustomerID != "" {
		customer, ok := h.store.Customer(req.CustomerID)
		if !ok {
			respondError(w, http.StatusBadRequest, "customer not found")
			return
		}
		draft.SetCustomer(customer)
	}

	for _, item := range req.Items {
		if item.ItemID != "" {
			stocked, ok := h.store.InventoryItem(item.ItemID)
			if !ok {
				respondError(w, http.StatusBadRequest, "inventory item not found: "+item.ItemID)
				return
			}
			line := draft.AddFromInventory(stocked)
			if item.Quantity > 1 {
				draft.SetItemQuantity(line.ID, line.Quantity+item.Quantity-1)
			}
			if item.Rate > 0 {
				draft.SetItemRate(line.ID, item.Rate)
			}
			continue
		}
		line := draft.AddCustomItem()
		draft.SetItemName(line.ID, item.Name)
		draft.SetItemHSNCode(line.ID, item.HSNCode)
		if item.Unit != "" {
			draft.SetItemUnit(line.ID, item.Unit)
		}
		if item.Quantity > 0 {
			draft.SetItemQuantity(line.ID, item.Quantity)
		}
		draft.SetItemRate(line.ID, item.Rate)
		draft.SetItemGSTRate(line.ID, item.GSTRate)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusDraft
	}

	inv, err := h.store.CreateInvoice(draft, status)
	if err != nil {
		var vErr *billing.ValidationError
		if errors.As(err, &vErr) {
			respondError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to create invoice")
		return
	}
	respondJSON(w, http.StatusCreated, inv)
}

func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	invoices := h.store.Invoices(q.Get("search"), q.Get("status"), q.Get("type"))
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	respondJSON(w, http.StatusOK, invoices)
}

func (h *Handler) markInvoicePaid(w http.ResponseWriter, r *http.Request) {
	if !h.store.MarkInvoicePaid(chi.URLParam(r, "id")) {
		respondError(w, http.StatusNotFound, "invoice not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "paid"})
}

func (h *Handler) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteInvoice(chi.URLParam(r, "id")) {
		respondError(w, http.StatusNotFound, "invoice not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Expenses

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenses := h.store.Expenses()
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	respondJSON(w, http.StatusOK, expenses)
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	var e domain.Expense
	if err := decodeJSON(r, &e); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if e.Category == "" || e.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "category and a positive amount are required")
		return
	}
	if e.Date == "" {
		e.Date = time.Now().Format("2006-01-02")
	}
	respondJSON(w, http.StatusCreated, h.store.AddExpense(e))
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteExpense(chi.URLParam(r, "id")) {
		respondError(w, http.StatusNotFound, "expense not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Reports

func monthParam(r *http.Request) string {
	if month := r.URL.Query().Get("month"); month != "" {
		return month
	}
	return time.Now().Format("2006-01")
}

func (h *Handler) monthlyReport(w http.ResponseWriter, r *http.Request) {
	series := report.MonthlySeries(h.store.AllInvoices(), h.store.Expenses())
	respondJSON(w, http.StatusOK, series)
}

func (h *Handler) expenseCategories(w http.ResponseWriter, r *http.Request) {
	breakdown := report.CategoryBreakdown(h.store.Expenses(), monthParam(r))
	respondJSON(w, http.StatusOK, breakdown)
}

func (h *Handler) gstSummary(w http.ResponseWriter, r *http.Request) {
	summary := report.GSTForMonth(h.store.AllInvoices(), monthParam(r))
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) overallTotals(w http.ResponseWriter, r *http.Request) {
	totals := report.Overall(h.store.AllInvoices(), h.store.Expenses())
	respondJSON(w, http.StatusOK, totals)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	snap := report.Dashboard(h.store.AllInvoices(), h.store.Expenses(), h.store.Inventory("", ""), monthParam(r))
	respondJSON(w, http.StatusOK, snap)
}

// Helpers

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
