package orders

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/myezz/restaurant-api/api/middleware"
	internalorders "github.com/myezz/restaurant-api/internal/orders"
	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/enums"
	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
	"github.com/myezz/restaurant-api/pkg/logger"
	"github.com/myezz/restaurant-api/pkg/types"
)

var (
	restaurantID = uuid.MustParse("7d6c1f0e-4a55-4c2e-9b1e-3f1b2a9c8d01")
	fixedNow     = time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)
)

func seed(code string, status enums.OrderStatus) models.Order {
	price := 179.99
	return models.Order{
		ID:               uuid.New(),
		RestaurantID:     restaurantID,
		OrderCode:        code,
		CustomerName:     "Yug Patel",
		Items:            types.OrderItems{{Name: "Margherita Pizza", Quantity: 1, Price: &price}},
		Total:            decimal.RequireFromString("179.99"),
		Status:           status,
		VerificationCode: "A1B2",
		CreatedAt:        fixedNow,
		UpdatedAt:        fixedNow,
	}
}

func newRouter(t *testing.T, seeds ...models.Order) http.Handler {
	t.Helper()
	svc, err := internalorders.NewService(internalorders.NewMemoryRepository(seeds), func() time.Time { return fixedNow })
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	logg := logger.Nop()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := middleware.WithRestaurantID(req.Context(), restaurantID, middleware.TenantFromHeader)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Get("/api/orders", List(svc, logg))
	r.Post("/api/orders", Create(svc, logg))
	r.Get("/api/orders/{orderId}", Detail(svc, logg))
	r.Delete("/api/orders/{orderId}", Delete(svc, logg))
	r.Post("/api/orders/{orderId}/accept", Accept(svc, logg))
	r.Post("/api/orders/{orderId}/reject", Reject(svc, logg))
	r.Post("/api/orders/{orderId}/ready", MarkReady(svc, logg))
	r.Post("/api/orders/{orderId}/handover", HandOver(svc, logg))
	r.Post("/api/orders/{orderId}/deliver", Deliver(svc, logg))
	r.Post("/api/orders/{orderId}/cancel", Cancel(svc, logg))
	return r
}

func do(h http.Handler, method, url, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeOrder(t *testing.T, rec *httptest.ResponseRecorder) internalorders.OrderDTO {
	t.Helper()
	var envelope struct {
		Success bool                    `json:"success"`
		Data    internalorders.OrderDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if !envelope.Success {
		t.Fatalf("expected success envelope")
	}
	return envelope.Data
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return body.Code
}

func TestCreateOrder(t *testing.T) {
	h := newRouter(t)
	rec := do(h, http.MethodPost, "/api/orders", `{
		"order_id": "ORD010",
		"customer_name": "Aksh Maheshwari",
		"items": [{"name": "Chicken Burger", "quantity": 2, "price": 70}],
		"total": 140
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	order := decodeOrder(t, rec)
	if order.OrderID != "ORD010" || order.Status != enums.OrderStatusNew {
		t.Fatalf("unexpected order %+v", order)
	}
	if len(order.VerificationCode) != 4 {
		t.Fatalf("expected generated verification code, got %q", order.VerificationCode)
	}

	dup := do(h, http.MethodPost, "/api/orders", `{"order_id":"ORD010","customer_name":"X","items":[{"name":"Tea"}],"total":10}`)
	if dup.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate order code, got %d", dup.Code)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	h := newRouter(t)
	cases := map[string]string{
		"missing items":  `{"customer_name":"A","total":10}`,
		"missing total":  `{"customer_name":"A","items":[{"name":"Tea"}]}`,
		"negative total": `{"customer_name":"A","items":[{"name":"Tea"}],"total":-1}`,
		"bad status":     `{"customer_name":"A","items":[{"name":"Tea"}],"total":1,"status":"eaten"}`,
		"unknown field":  `{"customer_name":"A","items":[{"name":"Tea"}],"total":1,"tip":5}`,
	}
	for name, body := range cases {
		rec := do(h, http.MethodPost, "/api/orders", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", name, rec.Code)
		}
		if code := errorCode(t, rec); code != string(pkgerrors.CodeValidation) {
			t.Fatalf("%s: unexpected code %s", name, code)
		}
	}
}

func TestOrderLifecycle(t *testing.T) {
	h := newRouter(t, seed("ORD001", enums.OrderStatusNew))

	rec := do(h, http.MethodPost, "/api/orders/ORD001/accept", `{"prep_time": 20}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("accept: expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	accepted := decodeOrder(t, rec)
	if accepted.Status != enums.OrderStatusPreparing || accepted.PrepTime == nil || *accepted.PrepTime != 20 {
		t.Fatalf("unexpected accepted order %+v", accepted)
	}

	if rec := do(h, http.MethodPost, "/api/orders/ORD001/ready", ""); rec.Code != http.StatusOK {
		t.Fatalf("ready: expected 200 got %d", rec.Code)
	}

	wrong := do(h, http.MethodPost, "/api/orders/ORD001/handover", `{"verification_code":"ZZZZ"}`)
	if wrong.Code != http.StatusBadRequest {
		t.Fatalf("handover with wrong code: expected 400 got %d", wrong.Code)
	}

	rec = do(h, http.MethodPost, "/api/orders/ord001/handover", `{"verification_code":"a1b2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("handover: expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeOrder(t, rec).Status; got != enums.OrderStatusCompleted {
		t.Fatalf("expected completed, got %s", got)
	}

	if rec := do(h, http.MethodPost, "/api/orders/ORD001/deliver", ""); rec.Code != http.StatusOK {
		t.Fatalf("deliver: expected 200 got %d", rec.Code)
	}

	rec = do(h, http.MethodPost, "/api/orders/ORD001/cancel", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("cancel after delivery: expected 422 got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != string(pkgerrors.CodeStateConflict) {
		t.Fatalf("unexpected code %s", code)
	}
}

func TestAcceptRejectsPrepTimeOutOfRange(t *testing.T) {
	h := newRouter(t, seed("ORD001", enums.OrderStatusNew))
	for _, body := range []string{`{"prep_time": 0}`, `{"prep_time": 181}`, ``} {
		rec := do(h, http.MethodPost, "/api/orders/ORD001/accept", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400 got %d", body, rec.Code)
		}
	}
}

func TestRejectStoresReason(t *testing.T) {
	h := newRouter(t, seed("ORD001", enums.OrderStatusNew))
	rec := do(h, http.MethodPost, "/api/orders/ORD001/reject", `{"reason":"Out of cheese"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	order := decodeOrder(t, rec)
	if order.Status != enums.OrderStatusRejected || order.RejectionReason == nil || *order.RejectionReason != "Out of cheese" {
		t.Fatalf("unexpected rejected order %+v", order)
	}
}

func TestListDetailAndDelete(t *testing.T) {
	first := seed("ORD001", enums.OrderStatusNew)
	second := seed("ORD002", enums.OrderStatusReady)
	second.CreatedAt = fixedNow.Add(time.Minute)
	h := newRouter(t, first, second)

	rec := do(h, http.MethodGet, "/api/orders?status=ready", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data internalorders.OrderList `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(envelope.Data.Orders) != 1 || envelope.Data.Orders[0].OrderID != "ORD002" {
		t.Fatalf("unexpected list %+v", envelope.Data.Orders)
	}

	if rec := do(h, http.MethodGet, "/api/orders?status=eaten", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad status filter: expected 400 got %d", rec.Code)
	}

	rec = do(h, http.MethodGet, "/api/orders/"+first.ID.String(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("detail by uuid: expected 200 got %d", rec.Code)
	}

	if rec := do(h, http.MethodDelete, "/api/orders/ORD001", ""); rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d", rec.Code)
	}
	if rec := do(h, http.MethodGet, "/api/orders/ORD001", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("detail after delete: expected 404 got %d", rec.Code)
	}
	if rec := do(h, http.MethodDelete, "/api/orders/ORD001", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404 got %d", rec.Code)
	}
}
