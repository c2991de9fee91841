package builders

import (
	"shop/models"
)

// OrderBuilder giúp tạo order theo từng bước
type OrderBuilder struct {
	order *models.Order
}

// NewOrderBuilder tạo instance mới của OrderBuilder
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		order: &models.Order{},
	}
}

// WithUser thêm thông tin user
func (b *OrderBuilder) WithUser(userID uint) *OrderBuilder {
	b.order.UserID = &userID
	return b
}

// WithAddress thêm địa chỉ giao hàng
func (b *OrderBuilder) WithAddress(addressID uint) *OrderBuilder {
	b.order.AddressID = addressID
	return b
}

// WithItems thêm các dòng hàng
func (b *OrderBuilder) WithItems(items []models.OrderItem) *OrderBuilder {
	b.order.Items = items
	return b
}

// WithStatus thêm trạng thái
func (b *OrderBuilder) WithStatus(status int) *OrderBuilder {
	b.order.Status = status
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *OrderBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *OrderBuilder {
	b.order.GuestName = guestName
	b.order.GuestPhone = guestPhone
	b.order.GuestEmail = guestEmail
	return b
}

// WithTotals thêm các tổng tiền
func (b *OrderBuilder) WithTotals(subtotal, discountTotal, totalPrice float64) *OrderBuilder {
	b.order.Subtotal = subtotal
	b.order.DiscountTotal = discountTotal
	b.order.TotalPrice = totalPrice
	return b
}

// Build tạo order hoàn chỉnh
func (b *OrderBuilder) Build() *models.Order {
	return b.order
}
