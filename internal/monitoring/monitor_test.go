package monitoring

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMonitor_Handler(t *testing.T) {
	m := NewMonitor()
	m.RecordOrderCreated("card", 119.34)
	m.SetOrderCount("pending", 3)
	m.SetStockCount("low", 1)
	m.RecordChatRequest("ok")

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("Expected status 200 from metrics handler, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`orders_created_total{payment_method="card"} 1`,
		`order_revenue_total 119.34`,
		`orders_by_status{status="pending"} 3`,
		`inventory_items_by_status{status="low"} 1`,
		`chat_requests_total{outcome="ok"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected metrics output to contain %q, but it did not", want)
		}
	}
}

func TestMonitor_IsolatedRegistries(t *testing.T) {
	a := NewMonitor()
	b := NewMonitor()
	a.RecordChatRequest("error")

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, req)

	if strings.Contains(rec.Body.String(), `chat_requests_total{outcome="error"} 1`) {
		t.Errorf("Expected monitors to have isolated registries, but counts leaked")
	}
}
