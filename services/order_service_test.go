package services

import (
	"testing"

	"shop/models"
	"shop/services/logger"
)

func TestDeleteOrderRejectsActiveStates(t *testing.T) {
	s := NewOrderService(OrderServiceOptions{Logger: logger.NewDefaultLogger(logger.InfoLevel)})

	for _, status := range []int{models.OrderStatusPending, models.OrderStatusConfirmed} {
		order := &models.Order{ID: 1, Status: status}
		if err := s.Delete(order); err == nil {
			t.Errorf("Delete(status=%d) = nil, want error", status)
		}
	}
}
