package models

import "testing"

func TestPendingOrderTransitions(t *testing.T) {
	order := &Order{Status: OrderStatusPending}

	if err := GetOrderState(order.Status).Complete(order); err == nil {
		t.Error("đơn pending không được hoàn thành trực tiếp")
	}

	if err := GetOrderState(order.Status).Confirm(order); err != nil {
		t.Fatalf("Confirm đơn pending lỗi: %v", err)
	}
	if order.Status != OrderStatusConfirmed {
		t.Errorf("Status = %d, want %d", order.Status, OrderStatusConfirmed)
	}
}

func TestConfirmedOrderTransitions(t *testing.T) {
	order := &Order{Status: OrderStatusConfirmed}

	if err := GetOrderState(order.Status).Confirm(order); err == nil {
		t.Error("đơn đã xác nhận không được xác nhận lại")
	}

	if err := GetOrderState(order.Status).Complete(order); err != nil {
		t.Fatalf("Complete đơn đã xác nhận lỗi: %v", err)
	}
	if order.Status != OrderStatusCompleted {
		t.Errorf("Status = %d, want %d", order.Status, OrderStatusCompleted)
	}
}

func TestCancelledOrderIsTerminal(t *testing.T) {
	order := &Order{Status: OrderStatusCancelled}
	state := GetOrderState(order.Status)

	if err := state.Confirm(order); err == nil {
		t.Error("đơn đã hủy không được xác nhận")
	}
	if err := state.Complete(order); err == nil {
		t.Error("đơn đã hủy không được hoàn thành")
	}
	if err := state.Cancel(order); err == nil {
		t.Error("đơn đã hủy không được hủy lại")
	}
}

func TestPendingOrderCancel(t *testing.T) {
	order := &Order{Status: OrderStatusPending}

	if err := GetOrderState(order.Status).Cancel(order); err != nil {
		t.Fatalf("Cancel đơn pending lỗi: %v", err)
	}
	if order.Status != OrderStatusCancelled {
		t.Errorf("Status = %d, want %d", order.Status, OrderStatusCancelled)
	}
}
