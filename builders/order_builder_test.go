package builders

import (
	"testing"

	"shop/models"
)

func TestOrderBuilderBuildsFullOrder(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 2, UnitPrice: 100, FinalPrice: 90, DiscountPercentage: 10},
		{ProductID: 2, Quantity: 1, UnitPrice: 50, FinalPrice: 50},
	}

	order := NewOrderBuilder().
		WithUser(42).
		WithAddress(7).
		WithStatus(models.OrderStatusPending).
		WithItems(items).
		WithTotals(250, 20, 230).
		Build()

	if order.UserID == nil || *order.UserID != 42 {
		t.Errorf("UserID = %v, want 42", order.UserID)
	}
	if order.AddressID != 7 {
		t.Errorf("AddressID = %d, want 7", order.AddressID)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("Status = %d, want %d", order.Status, models.OrderStatusPending)
	}
	if len(order.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(order.Items))
	}
	if order.Subtotal != 250 || order.DiscountTotal != 20 || order.TotalPrice != 230 {
		t.Errorf("totals = %v/%v/%v, want 250/20/230", order.Subtotal, order.DiscountTotal, order.TotalPrice)
	}
}

func TestOrderBuilderGuestOrder(t *testing.T) {
	order := NewOrderBuilder().
		WithGuestInfo("Nguyễn Văn A", "0912345678", "guest@example.com").
		WithStatus(models.OrderStatusPending).
		Build()

	if order.UserID != nil {
		t.Errorf("UserID = %v, want nil cho đơn khách", order.UserID)
	}
	if order.GuestName != "Nguyễn Văn A" || order.GuestPhone != "0912345678" || order.GuestEmail != "guest@example.com" {
		t.Errorf("thông tin khách sai: %s / %s / %s", order.GuestName, order.GuestPhone, order.GuestEmail)
	}
}
