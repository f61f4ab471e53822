package reports

import (
	"testing"

	"github.com/myezz/restaurant-api/pkg/db/models"
)

func TestCustomersRepeatRate(t *testing.T) {
	orders := []models.Order{
		withCustomer(order(at(15, 9, 0), "10"), "Alice"),
		withCustomer(order(at(15, 10, 0), "10"), "Alice"),
		withCustomer(order(at(15, 11, 0), "10"), "Alice"),
		withCustomer(order(at(15, 12, 0), "10"), "Bob"),
	}

	got := Customers(orders)
	want := CustomerStats{
		TotalOrders:          4,
		UniqueCustomers:      2,
		NewCustomers:         1,
		ReturningCustomers:   1,
		RepeatRate:           50,
		AvgOrdersPerCustomer: 2,
	}
	if got != want {
		t.Fatalf("expected %+v got %+v", want, got)
	}
}

func TestCustomersNameMatchIsExact(t *testing.T) {
	orders := []models.Order{
		withCustomer(order(at(15, 9, 0), "10"), "alice"),
		withCustomer(order(at(15, 10, 0), "10"), "Alice"),
		withCustomer(order(at(15, 11, 0), "10"), "Carol"),
		withCustomer(order(at(15, 11, 30), "10"), "Carol "),
		withCustomer(order(at(15, 11, 45), "10"), " Carol"),
		withCustomer(order(at(15, 12, 0), "10"), ""),
	}

	got := Customers(orders)
	if got.UniqueCustomers != 5 || got.ReturningCustomers != 0 || got.RepeatRate != 0 {
		t.Fatalf("unexpected stats %+v", got)
	}
	if got.TotalOrders != 5 || got.AvgOrdersPerCustomer != 1 {
		t.Fatalf("blank customer names should be skipped, got %+v", got)
	}
}

func TestCustomersRounding(t *testing.T) {
	orders := []models.Order{
		withCustomer(order(at(15, 9, 0), "10"), "A"),
		withCustomer(order(at(15, 9, 1), "10"), "A"),
		withCustomer(order(at(15, 9, 2), "10"), "B"),
		withCustomer(order(at(15, 9, 3), "10"), "C"),
	}

	got := Customers(orders)
	if got.RepeatRate != 33 {
		t.Fatalf("expected repeat rate 33, got %d", got.RepeatRate)
	}
	if got.AvgOrdersPerCustomer != 1.3 {
		t.Fatalf("expected avg 1.3, got %v", got.AvgOrdersPerCustomer)
	}
	if got.RepeatRate < 0 || got.RepeatRate > 100 || got.AvgOrdersPerCustomer < 1 {
		t.Fatalf("stats out of bounds: %+v", got)
	}
}

func TestCustomersEmpty(t *testing.T) {
	if got := Customers(nil); got != (CustomerStats{}) {
		t.Fatalf("expected zero stats, got %+v", got)
	}
}
