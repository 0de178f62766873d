package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"gadget_haven_backend/internal/catalog"
	catalogrepo "gadget_haven_backend/internal/catalog/repository"
	"gadget_haven_backend/internal/events"
	apphttp "gadget_haven_backend/internal/http"
	"gadget_haven_backend/internal/http/router"
	"gadget_haven_backend/internal/submissions"
	subrepo "gadget_haven_backend/internal/submissions/repository"
	"gadget_haven_backend/platform/docstore"
	"gadget_haven_backend/platform/logger"
	"gadget_haven_backend/platform/validator"
)

type httpConfig struct{}

func (httpConfig) GetHTTPAddr() string      { return ":0" }
func (httpConfig) GetCORSAllowAll() bool    { return true }
func (httpConfig) GetCORSOrigins() []string { return nil }
func (httpConfig) GetCORSAllowCreds() bool  { return false }

type downStore struct{}

func (downStore) Ping(context.Context) error { return errors.New("no route to host") }

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T, store *docstore.MemoryStore, health apphttp.HealthChecker) *gin.Engine {
	t.Helper()
	log := logger.Discard()
	repo, err := catalogrepo.New()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	bus := events.NewInMemoryBus(log)
	return router.New(&apphttp.App{
		Config: httpConfig{},
		Logger: log,
		Health: health,
		Modules: []apphttp.Module{
			catalog.NewModule(repo, log),
			submissions.NewModule(store, validator.New(), bus, log),
		},
	})
}

func do(engine http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

type errorBody struct {
	Error   string `json:"error"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}

func TestRootAndHealth(t *testing.T) {
	store := docstore.NewMemoryStore()
	engine := newEngine(t, store, store)

	rec := do(engine, http.MethodGet, "/api/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("root: expected 200, got %d", rec.Code)
	}
	root := decode[map[string]string](t, rec)
	if root["message"] != "Welcome to Gadget Haven API" || root["version"] != "1.0.0" {
		t.Fatalf("unexpected root body %v", root)
	}

	rec = do(engine, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK || decode[map[string]any](t, rec)["status"] != "healthy" {
		t.Fatalf("health: unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestHealthReportsUnreachableStore(t *testing.T) {
	engine := newEngine(t, docstore.NewMemoryStore(), downStore{})
	rec := do(engine, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if decode[map[string]any](t, rec)["status"] != "unhealthy" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestCatalogEndpoints(t *testing.T) {
	engine := newEngine(t, docstore.NewMemoryStore(), nil)

	all := do(engine, http.MethodGet, "/api/products?category=All", "")
	plain := do(engine, http.MethodGet, "/api/products", "")
	if all.Code != http.StatusOK || !bytes.Equal(all.Body.Bytes(), plain.Body.Bytes()) {
		t.Fatalf("category=All must equal the unfiltered list")
	}

	laptops := decode[[]map[string]any](t, do(engine, http.MethodGet, "/api/products?category=Laptops", ""))
	if len(laptops) != 4 {
		t.Fatalf("expected 4 laptops, got %d", len(laptops))
	}

	rec := do(engine, http.MethodGet, "/api/products/9999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decode[errorBody](t, rec); body.Error != "Product not found" {
		t.Fatalf("unexpected error body %+v", body)
	}

	for _, path := range []string{"/api/categories", "/api/repair-services", "/api/testimonials"} {
		if rec := do(engine, http.MethodGet, path, ""); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestInvalidEmailIsRejectedWithoutSaving(t *testing.T) {
	store := docstore.NewMemoryStore()
	engine := newEngine(t, store, nil)

	rec := do(engine, http.MethodPost, "/api/contact",
		`{"name":"Ada","email":"not-an-email","phone":"080","message":"hi"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decode[errorBody](t, rec)
	if body.Error != "validation failed" || len(body.Details) != 1 || body.Details[0].Field != "email" {
		t.Fatalf("unexpected error body %+v", body)
	}
	if store.Count(subrepo.ContactForms) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestSubmissionsRoundTrip(t *testing.T) {
	cases := []struct {
		name       string
		create     string
		list       string
		collection string
		payload    map[string]any
	}{
		{
			name:       "contact",
			create:     "/api/contact",
			collection: subrepo.ContactForms,
			payload: map[string]any{
				"name": "Ada", "email": "ada@example.com", "phone": "08031234567", "message": "Do you stock chargers?",
			},
		},
		{
			name:       "sell request",
			create:     "/api/sell-request",
			list:       "/api/sell-requests",
			collection: subrepo.SellRequests,
			payload: map[string]any{
				"device_type": "Phone", "model": "iPhone 13", "storage": "128GB", "condition": "Good",
				"battery_health": "87%", "name": "Ada", "email": "ada@example.com", "phone": "080",
				"additional_info": "Original box included",
			},
		},
		{
			name:       "swap request",
			create:     "/api/swap-request",
			list:       "/api/swap-requests",
			collection: subrepo.SwapRequests,
			payload: map[string]any{
				"current_device_type": "Phone", "current_model": "iPhone 11", "current_condition": "Fair",
				"desired_device": "iPhone 14", "name": "Ada", "email": "ada@example.com", "phone": "080",
				"additional_info": "Can add cash",
			},
		},
		{
			name:       "repair booking",
			create:     "/api/repair-booking",
			list:       "/api/repair-bookings",
			collection: subrepo.RepairBookings,
			payload: map[string]any{
				"device_type": "Phone", "device_model": "Pixel 7", "issue": "Screen",
				"issue_description": "Cracked corner", "preferred_date": "2025-07-01",
				"name": "Ada", "phone": "080", "email": "ada@example.com",
			},
		},
		{
			name:       "price quote",
			create:     "/api/price-quote",
			collection: subrepo.PriceQuotes,
			payload: map[string]any{
				"product_name": "MacBook Air M2", "product_category": "Laptops",
				"name": "Ada", "phone": "080", "email": "ada@example.com", "message": "Best price?",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := docstore.NewMemoryStore()
			engine := newEngine(t, store, nil)
			body, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("encode payload: %v", err)
			}

			before := time.Now().UTC().Add(-time.Second)
			rec := do(engine, http.MethodPost, tc.create, string(body))
			if rec.Code != http.StatusOK {
				t.Fatalf("create: expected 200, got %d %s", rec.Code, rec.Body.String())
			}
			created := decode[map[string]any](t, rec)
			for field, want := range tc.payload {
				if created[field] != want {
					t.Errorf("field %s: expected %v, got %v", field, want, created[field])
				}
			}
			id, _ := created["id"].(string)
			if id == "" {
				t.Fatalf("expected a generated id")
			}
			createdAt, err := time.Parse(time.RFC3339Nano, fmt.Sprint(created["created_at"]))
			if err != nil || createdAt.Before(before) {
				t.Fatalf("unexpected created_at %v (%v)", created["created_at"], err)
			}
			if store.Count(tc.collection) != 1 {
				t.Fatalf("expected one stored document")
			}

			if tc.list == "" {
				return
			}
			if created["status"] != "pending" {
				t.Fatalf("expected pending status, got %v", created["status"])
			}
			rec = do(engine, http.MethodGet, tc.list, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("list: expected 200, got %d", rec.Code)
			}
			listed := decode[[]map[string]any](t, rec)
			if len(listed) != 1 || listed[0]["id"] != id || listed[0]["status"] != "pending" {
				t.Fatalf("unexpected list %v", listed)
			}
			listedAt, err := time.Parse(time.RFC3339Nano, fmt.Sprint(listed[0]["created_at"]))
			if err != nil || !listedAt.Equal(createdAt) {
				t.Fatalf("listed created_at %v does not match %v", listed[0]["created_at"], createdAt)
			}
		})
	}
}

func TestBlankOptionalEmailIsRejected(t *testing.T) {
	store := docstore.NewMemoryStore()
	engine := newEngine(t, store, nil)

	for _, email := range []string{`""`, `"   "`} {
		payload := `{"device_type":"Phone","device_model":"Pixel 7","issue":"Screen","preferred_date":"2025-07-01","name":"Ada","phone":"080","email":` + email + `}`
		rec := do(engine, http.MethodPost, "/api/repair-booking", payload)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("email %s: expected 400, got %d", email, rec.Code)
		}
		if body := decode[errorBody](t, rec); len(body.Details) != 1 || body.Details[0].Field != "email" {
			t.Fatalf("email %s: unexpected error body %+v", email, body)
		}
	}
	if store.Count(subrepo.RepairBookings) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestConcurrentContactSubmissions(t *testing.T) {
	const n = 25
	store := docstore.NewMemoryStore()
	engine := newEngine(t, store, nil)

	var mu sync.Mutex
	ids := make(map[string]bool, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		payload := fmt.Sprintf(`{"name":"Customer %d","email":"c%d@example.com","phone":"080","message":"hello"}`, i, i)
		g.Go(func() error {
			rec := do(engine, http.MethodPost, "/api/contact", payload)
			if rec.Code != http.StatusOK {
				return fmt.Errorf("status %d: %s", rec.Code, rec.Body.String())
			}
			var created struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			ids[created.ID] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("submission failed: %v", err)
	}
	if len(ids) != n {
		t.Fatalf("expected %d distinct ids, got %d", n, len(ids))
	}
	if got := store.Count(subrepo.ContactForms); got != n {
		t.Fatalf("expected %d documents, got %d", n, got)
	}
}

func TestMalformedBodies(t *testing.T) {
	engine := newEngine(t, docstore.NewMemoryStore(), nil)

	rec := do(engine, http.MethodPost, "/api/price-quote",
		`{"product_name":42,"product_category":"Laptops","name":"Ada","phone":"080"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("wrong type: expected 400, got %d", rec.Code)
	}
	if body := decode[errorBody](t, rec); len(body.Details) != 1 || body.Details[0].Field != "product_name" {
		t.Fatalf("unexpected error body %+v", body)
	}

	if rec := do(engine, http.MethodPost, "/api/swap-request", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("empty body: expected 400, got %d", rec.Code)
	}
	if rec := do(engine, http.MethodPost, "/api/sell-request", `{"model":`); rec.Code != http.StatusBadRequest {
		t.Fatalf("truncated body: expected 400, got %d", rec.Code)
	}
}

func TestNonObjectBodyIsBadRequest(t *testing.T) {
	engine := newEngine(t, docstore.NewMemoryStore(), nil)

	for _, payload := range []string{`[]`, `"hello"`, `42`} {
		rec := do(engine, http.MethodPost, "/api/contact", payload)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", payload, rec.Code)
		}
		body := decode[errorBody](t, rec)
		if body.Error != "invalid request" || len(body.Details) != 0 {
			t.Fatalf("body %s: unexpected error body %+v", payload, body)
		}
	}
}

func TestOversizedBodyIsRejected(t *testing.T) {
	store := docstore.NewMemoryStore()
	engine := newEngine(t, store, nil)

	payload := `{"name":"Ada","email":"ada@example.com","phone":"080","message":"` + strings.Repeat("a", 70<<10) + `"}`
	rec := do(engine, http.MethodPost, "/api/contact", payload)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
	if body := decode[errorBody](t, rec); body.Error != "request body too large" {
		t.Fatalf("unexpected error body %+v", body)
	}
	if store.Count(subrepo.ContactForms) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestUnknownFieldsAreIgnored(t *testing.T) {
	store := docstore.NewMemoryStore()
	engine := newEngine(t, store, nil)

	rec := do(engine, http.MethodPost, "/api/sell-request",
		`{"device_type":"Phone","model":"iPhone 13","storage":"128GB","condition":"Good","name":"Ada","email":"ada@example.com","phone":"080","coupon":"FREE"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	if _, ok := decode[map[string]any](t, rec)["coupon"]; ok {
		t.Fatalf("unknown field must not be echoed")
	}
	if store.Count(subrepo.SellRequests) != 1 {
		t.Fatalf("expected one stored sell request")
	}
}
