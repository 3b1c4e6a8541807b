package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pranit96/life.me/internal/api/controller"
	"github.com/pranit96/life.me/internal/config"
	"github.com/pranit96/life.me/internal/model"
	"github.com/pranit96/life.me/internal/repository"
	"github.com/pranit96/life.me/internal/service"
)

// In-memory repositories backing the HTTP tests.

type memUserRepo struct {
	users map[string]model.User
}

func (m *memUserRepo) Upsert(_ context.Context, telegramID string, profile model.UserProfile) (*model.User, error) {
	u, ok := m.users[telegramID]
	if !ok {
		u = model.User{ID: "user-" + telegramID, TelegramID: telegramID, CreatedAt: time.Now()}
	}
	u.Username = profile.Username
	u.FirstName = profile.FirstName
	u.LastName = profile.LastName
	m.users[telegramID] = u
	return &u, nil
}

func (m *memUserRepo) GetByTelegramID(_ context.Context, telegramID string) (*model.User, error) {
	u, ok := m.users[telegramID]
	if !ok {
		return nil, fmt.Errorf("%w: user", model.ErrNotFound)
	}
	return &u, nil
}

type memExpenseRepo struct {
	expenses []model.Expense
}

func (m *memExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	e.CreatedAt = time.Now()
	m.expenses = append(m.expenses, *e)
	return nil
}

func (m *memExpenseRepo) ListByUser(_ context.Context, userID string, limit int) ([]model.Expense, error) {
	if limit <= 0 {
		limit = repository.DefaultExpenseLimit
	}
	out := make([]model.Expense, 0)
	for _, e := range m.expenses {
		if e.UserID == userID && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

type memGoalRepo struct {
	goals map[string]model.Goal
}

func (m *memGoalRepo) Create(_ context.Context, g *model.Goal) error {
	g.CreatedAt = time.Now()
	g.UpdatedAt = g.CreatedAt
	m.goals[g.ID] = *g
	return nil
}

func (m *memGoalRepo) ListByUser(_ context.Context, userID string) ([]model.Goal, error) {
	out := make([]model.Goal, 0)
	for _, g := range m.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memGoalRepo) GetByID(_ context.Context, goalID string) (*model.Goal, error) {
	g, ok := m.goals[goalID]
	if !ok {
		return nil, fmt.Errorf("%w: goal", model.ErrNotFound)
	}
	return &g, nil
}

func (m *memGoalRepo) Update(_ context.Context, goalID string, patch model.GoalPatch) (*model.Goal, error) {
	g, ok := m.goals[goalID]
	if !ok {
		return nil, fmt.Errorf("%w: goal", model.ErrNotFound)
	}
	if patch.CurrentAmount != nil {
		g.CurrentAmount = *patch.CurrentAmount
	}
	if patch.Status != nil {
		g.Status = *patch.Status
	}
	if patch.AIInsights != nil {
		g.AIInsights = *patch.AIInsights
	}
	g.UpdatedAt = time.Now()
	m.goals[goalID] = g
	return &g, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *memExpenseRepo, *memGoalRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &memUserRepo{users: make(map[string]model.User)}
	expenses := &memExpenseRepo{}
	goals := &memGoalRepo{goals: make(map[string]model.Goal)}

	jwtCfg := config.JWTConfig{Secret: "test-secret", ExpireHours: 1}
	authSvc := service.NewAuthService(users, jwtCfg)
	expenseSvc := service.NewExpenseService(expenses, nil)
	goalSvc := service.NewGoalService(goals, expenses, nil)
	analyticsSvc := service.NewAnalyticsService(expenses, goals)

	r := gin.New()
	RegisterRoutes(r, Controllers{
		Auth:      controller.NewAuthController(authSvc),
		Expense:   controller.NewExpenseController(expenseSvc),
		Goal:      controller.NewGoalController(goalSvc),
		Insight:   controller.NewInsightController(nil),
		Database:  controller.NewDatabaseController(nil, nil),
		Analytics: controller.NewAnalyticsController(analyticsSvc),
	}, jwtCfg.Secret)

	return r, expenses, goals
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestLogin(t *testing.T) {
	r, _, _ := newTestRouter(t)

	t.Run("success returns user and token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login",
			`{"telegramId":"12345","username":"alice","firstName":"Alice"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["telegramId"] != "12345" {
			t.Errorf("telegramId = %v", resp["telegramId"])
		}
		if token, _ := resp["token"].(string); token == "" {
			t.Error("expected a token in the login response")
		}
	})

	t.Run("non-numeric telegram ID is a 400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"telegramId":"abc"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] == "" {
			t.Error("expected an error field")
		}
	})

	t.Run("missing telegram ID is a 400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestExpenseEndpoints(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/expenses/u1",
		`{"amount":12.5,"category":"Food","description":"lunch","date":"2025-05-15"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var created model.Expense
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.UserID != "u1" {
		t.Errorf("created = %+v", created)
	}

	w = doJSON(t, r, http.MethodGet, "/api/expenses/u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var listed []model.Expense
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("listed %d expenses, want 1", len(listed))
	}

	w = doJSON(t, r, http.MethodPost, "/api/expenses/u1", `{"amount":5,"date":"15/05/2025"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date status = %d, want 400", w.Code)
	}
}

func TestGoalEndpoints(t *testing.T) {
	r, _, goals := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/goals/u1",
		`{"title":"Bike","targetAmount":300,"category":"Shopping","deadline":"2026-01-01"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var created model.Goal
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Status != model.GoalStatusActive || created.CurrentAmount != 0 {
		t.Errorf("defaults not applied: %+v", created)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/goals/u1/"+created.ID,
		`{"currentAmount":150,"status":"completed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body = %s", w.Code, w.Body.String())
	}
	if g := goals.goals[created.ID]; g.CurrentAmount != 150 || g.Status != model.GoalStatusCompleted {
		t.Errorf("patch not applied: %+v", g)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/goals/u1/nope", `{"currentAmount":1}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing goal status = %d, want 404", w.Code)
	}
}

func TestAnalyticsEndpoint(t *testing.T) {
	r, expenses, goals := newTestRouter(t)
	expenses.expenses = []model.Expense{
		{UserID: "u1", Amount: 50, Category: "Food", Date: time.Now()},
	}
	goals.goals["g1"] = model.Goal{ID: "g1", UserID: "u1", CurrentAmount: 50, TargetAmount: 100, Status: model.GoalStatusActive}

	w := doJSON(t, r, http.MethodGet, "/api/analytics/u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var a model.Analytics
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.TotalExpenses != 50 || a.GoalProgress != 50 || a.ActiveGoals != 1 {
		t.Errorf("analytics = %+v", a)
	}
}

func TestUnconfiguredFeatures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, Controllers{
		Auth:      controller.NewAuthController(nil),
		Expense:   controller.NewExpenseController(nil),
		Goal:      controller.NewGoalController(nil),
		Insight:   controller.NewInsightController(nil),
		Database:  controller.NewDatabaseController(nil, nil),
		Analytics: controller.NewAnalyticsController(nil),
	}, "")

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodPost, "/api/auth/login", `{"telegramId":"1"}`},
		{http.MethodGet, "/api/expenses/u1", ""},
		{http.MethodPost, "/api/ai/insights", `{"userId":"u1","type":"spending"}`},
	} {
		w := doJSON(t, r, tc.method, tc.path, tc.body)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s %s status = %d, want 500", tc.method, tc.path, w.Code)
		}
		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] == "" {
			t.Errorf("%s %s missing error field", tc.method, tc.path)
		}
	}
}

func TestDatabaseEndpointsRequireToken(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/database/query", `{"query":"SELECT 1"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	// A token from a real login gets through the middleware.
	login := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"telegramId":"7"}`)
	var resp map[string]any
	if err := json.Unmarshal(login.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatal("no token issued")
	}

	req := httptest.NewRequest(http.MethodPost, "/api/database/init", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	// The DB itself is not configured in this test; the middleware let us
	// through and the controller reported the missing store.
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 from unconfigured store", w.Code)
	}
}
