package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// OrderMessageBuilder dựng thông báo khi có đơn hàng mới
type OrderMessageBuilder struct {
	orderID uint
	total   float64
}

func NewOrderMessageBuilder(orderID uint, total float64) *OrderMessageBuilder {
	return &OrderMessageBuilder{
		orderID: orderID,
		total:   total,
	}
}

func (b *OrderMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Đơn hàng mới #%d, tổng %.2f.", b.orderID, b.total)
}
