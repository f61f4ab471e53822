package reports

import (
	"testing"
	"time"

	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/enums"
)

func withPrep(o models.Order, minutes int) models.Order {
	o.PrepTime = &minutes
	accepted := o.CreatedAt.Add(time.Minute)
	o.AcceptedAt = &accepted
	return o
}

func TestSummarizeOrders(t *testing.T) {
	orders := []models.Order{
		withStatus(order(at(15, 9, 0), "10"), enums.OrderStatusNew),
		withPrep(withStatus(order(at(15, 9, 0), "10"), enums.OrderStatusPreparing), 15),
		withPrep(withStatus(order(at(15, 9, 0), "10"), enums.OrderStatusCompleted), 20),
		withPrep(withStatus(order(at(15, 9, 0), "10"), enums.OrderStatusDelivered), 30),
		withStatus(order(at(15, 9, 0), "10"), enums.OrderStatusRejected),
		withPrep(withStatus(order(at(15, 9, 0), "10"), enums.OrderStatusCancelled), 10),
	}

	got := SummarizeOrders(orders)
	if got.Received != 6 || got.Pending != 1 {
		t.Fatalf("unexpected received/pending %+v", got)
	}
	if got.Accepted != 4 {
		t.Fatalf("expected 4 accepted (incl. cancelled after accept), got %d", got.Accepted)
	}
	if got.Rejected != 1 || got.Cancelled != 1 || got.Completed != 2 {
		t.Fatalf("unexpected outcome counts %+v", got)
	}
	if got.AvgPrepTime != 18.8 {
		t.Fatalf("expected avg prep 18.8, got %v", got.AvgPrepTime)
	}
	if got.CompletionRate != 33.3 {
		t.Fatalf("expected completion rate 33.3, got %v", got.CompletionRate)
	}
	if got.ByStatus["delivered"] != 1 || got.ByStatus["new"] != 1 {
		t.Fatalf("unexpected status breakdown %v", got.ByStatus)
	}
}

func TestSummarizeOrdersEmpty(t *testing.T) {
	got := SummarizeOrders(nil)
	if got.Received != 0 || got.CompletionRate != 0 || got.AvgPrepTime != 0 {
		t.Fatalf("expected zero stats, got %+v", got)
	}
	if got.ByStatus == nil {
		t.Fatal("status breakdown should serialise as an object")
	}
}
