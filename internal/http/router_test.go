package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"yogabooking/internal/cart"
	"yogabooking/internal/config"
	"yogabooking/internal/domain/models"
	"yogabooking/internal/repositories"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repositories.MemoryCatalog) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := repositories.NewMemoryCatalog()
	catalog.Seed(models.ClassRecord{
		ID: "c1", ClassType: "Flow Yoga", Date: "Monday, 06/01/2025",
		Time: "10:00", Duration: 60, Capacity: 20, Price: 20.0, TeacherName: "Alice",
	})
	catalog.Seed(models.ClassRecord{
		ID: "c2", ClassType: "Aerial", Date: "Tuesday, 07/01/2025",
		Time: "18:00", Duration: 45, Capacity: 10, Price: 15.0, TeacherName: "Bob",
	})

	env := config.Env{
		AppAddr:            ":0",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}
	r := NewRouter(env, Deps{
		Catalog:  catalog,
		Ledger:   repositories.NewMemoryLedger(),
		Profiles: repositories.NewMemoryProfiles(),
		Carts:    cart.NewManager(),
	})
	return r, catalog
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload map[string]any
	if ct := w.Header().Get("Content-Type"); strings.Contains(ct, "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode response for %s %s: %v (%s)", method, path, err, w.Body.String())
		}
	}
	return w, payload
}

func TestBookingFlowOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	w, payload := doJSON(t, r, http.MethodPost, "/api/carts", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create cart: status %d", w.Code)
	}
	cartID, _ := payload["cart_id"].(string)
	if cartID == "" {
		t.Fatalf("missing cart_id in %v", payload)
	}

	for _, classID := range []string{"c1", "c2"} {
		w, _ = doJSON(t, r, http.MethodPost, "/api/carts/"+cartID+"/items", `{"class_id":"`+classID+`"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("add %s: status %d", classID, w.Code)
		}
	}

	w, payload = doJSON(t, r, http.MethodGet, "/api/carts/"+cartID, "")
	if w.Code != http.StatusOK || payload["count"].(float64) != 2 || payload["total"].(float64) != 35.0 {
		t.Fatalf("unexpected cart view: %v", payload)
	}

	w, payload = doJSON(t, r, http.MethodPost, "/api/carts/"+cartID+"/book", `{"email":"a.b@x.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("book: status %d body %s", w.Code, w.Body.String())
	}
	results := payload["results"].([]any)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %v", payload)
	}
	summary := payload["summary"].(map[string]any)
	if summary["booked"].(float64) != 2 {
		t.Fatalf("expected 2 booked, got %v", summary)
	}
	cartAfter := payload["cart"].(map[string]any)
	if cartAfter["count"].(float64) != 0 {
		t.Fatalf("cart should be empty after full booking, got %v", cartAfter)
	}

	w, payload = doJSON(t, r, http.MethodGet, "/api/bookings", "")
	if w.Code != http.StatusOK || payload["total"].(float64) != 2 {
		t.Fatalf("expected 2 ledger entries, got %v", payload)
	}

	w, payload = doJSON(t, r, http.MethodGet, "/api/customers/a.b@x.com/classes", "")
	if w.Code != http.StatusOK || payload["total"].(float64) != 2 {
		t.Fatalf("expected 2 profile entries, got %v", payload)
	}

	w, payload = doJSON(t, r, http.MethodPost, "/api/bookings/cancel", `{"class_id":"c1","email":"a.b@x.com"}`)
	if w.Code != http.StatusOK || payload["status"] != "cancelled" {
		t.Fatalf("cancel failed: %d %v", w.Code, payload)
	}

	w, payload = doJSON(t, r, http.MethodGet, "/api/bookings", "")
	if payload["total"].(float64) != 1 {
		t.Fatalf("expected 1 remaining booking, got %v", payload)
	}
}

func TestBookCartInvalidEmailOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	_, payload := doJSON(t, r, http.MethodPost, "/api/carts", "")
	cartID := payload["cart_id"].(string)
	doJSON(t, r, http.MethodPost, "/api/carts/"+cartID+"/items", `{"class_id":"c1"}`)

	w, _ := doJSON(t, r, http.MethodPost, "/api/carts/"+cartID+"/book", `{"email":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank email, got %d", w.Code)
	}

	w, payload = doJSON(t, r, http.MethodGet, "/api/carts/"+cartID, "")
	if payload["count"].(float64) != 1 {
		t.Fatalf("cart must stay untouched, got %v", payload)
	}
}

func TestClassFilteringOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	w, payload := doJSON(t, r, http.MethodGet, "/api/classes?teacher=ali", "")
	if w.Code != http.StatusOK || payload["total"].(float64) != 1 {
		t.Fatalf("expected 1 class for teacher filter, got %v", payload)
	}

	w, payload = doJSON(t, r, http.MethodGet, "/api/classes/teachers", "")
	teachers := payload["teachers"].([]any)
	if len(teachers) != 2 {
		t.Fatalf("expected 2 distinct teachers, got %v", teachers)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/classes/ghost", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown class, got %d", w.Code)
	}
}

func TestCancelUnknownBookingOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/bookings/cancel", `{"class_id":"c1","email":"nobody@x.com"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown booking, got %d", w.Code)
	}
}
