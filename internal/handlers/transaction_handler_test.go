package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/services"
	"budgetwise/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// injectTier stands in for the auth middleware in handler tests.
func injectTier(tier models.Tier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("subscriptionTier", tier)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// --- mock transaction service ---

type mockTransactionService struct {
	addTransactionFn    func(form services.TransactionForm) (*models.Transaction, error)
	updateTransactionFn func(id int64, form services.TransactionForm) (*models.Transaction, error)
	deleteTransactionFn func(id int64) error
	listTransactionsFn  func() []models.Transaction
	getTransactionFn    func(id int64) (*models.Transaction, error)
}

func (m *mockTransactionService) AddTransaction(form services.TransactionForm) (*models.Transaction, error) {
	if m.addTransactionFn != nil {
		return m.addTransactionFn(form)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(id int64, form services.TransactionForm) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(id, form)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(id int64) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(id)
	}
	return nil
}

func (m *mockTransactionService) ListTransactions() []models.Transaction {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn()
	}
	return []models.Transaction{}
}

func (m *mockTransactionService) GetTransactionByID(id int64) (*models.Transaction, error) {
	if m.getTransactionFn != nil {
		return m.getTransactionFn(id)
	}
	return &models.Transaction{}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

type mockRecurringService struct {
	processFn func() (int, error)
}

func (m *mockRecurringService) Process() (int, error) {
	if m.processFn != nil {
		return m.processFn()
	}
	return 0, nil
}

var _ services.RecurringServicer = (*mockRecurringService)(nil)

func setupTransactionRouter(handler *TransactionHandler, tier models.Tier) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectTier(tier))
	auth.POST("/transactions", handler.CreateTransaction)
	auth.GET("/transactions", handler.GetTransactions)
	auth.GET("/transactions/:id", handler.GetTransaction)
	auth.PUT("/transactions/:id", handler.UpdateTransaction)
	auth.DELETE("/transactions/:id", handler.DeleteTransaction)
	auth.POST("/transactions/recurring/process", handler.ProcessRecurring)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		txSvc := &mockTransactionService{
			addTransactionFn: func(form services.TransactionForm) (*models.Transaction, error) {
				return &models.Transaction{
					ID:       1,
					Amount:   -42.5,
					Type:     form.Type,
					Category: form.Category,
				}, nil
			},
		}
		handler := NewTransactionHandler(txSvc, &mockRecurringService{}, services.NewFeatureService())
		r := setupTransactionRouter(handler, models.TierFree)

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":42.5,"type":"expense","category":"Groceries"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["amount"].(float64) != -42.5 {
			t.Errorf("expected amount -42.5, got %v", tx["amount"])
		}
	})

	t.Run("returns 400 on invalid payload", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockRecurringService{}, services.NewFeatureService())
		r := setupTransactionRouter(handler, models.TierFree)

		cases := []string{
			`{"type":"expense","category":"X"}`,
			`{"amount":-5,"type":"expense","category":"X"}`,
			`{"amount":10,"type":"refund","category":"X"}`,
			`{"amount":10,"type":"expense","category":"X","date":"03/10/2024"}`,
			`not json`,
		}
		for _, body := range cases {
			if rec := doRequest(r, "POST", "/transactions", body); rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400 for %s, got %d", body, rec.Code)
			}
		}
	})

	t.Run("returns 403 for recurring on free tier", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockRecurringService{}, services.NewFeatureService())
		r := setupTransactionRouter(handler, models.TierFree)

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":10,"type":"expense","category":"X","isRecurring":true,"recurringFrequency":"monthly"}`)
		if rec.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("allows recurring on plus tier", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockRecurringService{}, services.NewFeatureService())
		r := setupTransactionRouter(handler, models.TierPlus)

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":10,"type":"expense","category":"X","isRecurring":true,"recurringFrequency":"monthly"}`)
		if rec.Code != http.StatusCreated {
			t.Errorf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("maps frozen budget to 409", func(t *testing.T) {
		txSvc := &mockTransactionService{
			addTransactionFn: func(services.TransactionForm) (*models.Transaction, error) {
				return nil, apperrors.ErrBudgetFrozen
			},
		}
		handler := NewTransactionHandler(txSvc, &mockRecurringService{}, services.NewFeatureService())
		r := setupTransactionRouter(handler, models.TierFree)

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":10,"type":"expense","category":"X"}`)
		if rec.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	txSvc := &mockTransactionService{
		listTransactionsFn: func() []models.Transaction {
			return []models.Transaction{{ID: 2}, {ID: 1}}
		},
	}
	handler := NewTransactionHandler(txSvc, &mockRecurringService{}, services.NewFeatureService())
	r := setupTransactionRouter(handler, models.TierFree)

	rec := doRequest(r, "GET", "/transactions?page=1&page_size=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) != 1 {
		t.Errorf("expected 1 item on the page, got %d", len(data))
	}
	if result["total_items"].(float64) != 2 {
		t.Errorf("expected 2 total items, got %v", result["total_items"])
	}
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 204", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockRecurringService{}, services.NewFeatureService())
		r := setupTransactionRouter(handler, models.TierFree)

		rec := doRequest(r, "DELETE", "/transactions/123", "")
		if rec.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad id", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockRecurringService{}, services.NewFeatureService())
		r := setupTransactionRouter(handler, models.TierFree)

		rec := doRequest(r, "DELETE", "/transactions/abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_ProcessRecurring(t *testing.T) {
	t.Run("returns count for plus tier", func(t *testing.T) {
		recurring := &mockRecurringService{processFn: func() (int, error) { return 3, nil }}
		handler := NewTransactionHandler(&mockTransactionService{}, recurring, services.NewFeatureService())
		r := setupTransactionRouter(handler, models.TierPlus)

		rec := doRequest(r, "POST", "/transactions/recurring/process", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["created"].(float64) != 3 {
			t.Errorf("expected 3 created, got %v", result["created"])
		}
	})

	t.Run("returns 403 for free tier", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockRecurringService{}, services.NewFeatureService())
		r := setupTransactionRouter(handler, models.TierFree)

		rec := doRequest(r, "POST", "/transactions/recurring/process", "")
		if rec.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", rec.Code)
		}
	})
}
