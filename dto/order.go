package dto

import "time"

// ActorResponse là thông tin người đặt hàng (user hoặc khách)
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// OrderItemResponse là DTO cho một dòng hàng trong đơn
type OrderItemResponse struct {
	ProductID          uint    `json:"productId"`
	ProductName        string  `json:"productName"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unitPrice"`
	FinalPrice         float64 `json:"finalPrice"`
	DiscountPercentage int     `json:"discountPercentage"`
}

// OrderResponse là DTO cho response của đơn hàng
type OrderResponse struct {
	ID            uint                `json:"id"`
	User          ActorResponse       `json:"user"`
	Address       AddressResponse     `json:"address"`
	Items         []OrderItemResponse `json:"items"`
	Status        int                 `json:"status"`
	PaymentStatus int                 `json:"paymentStatus"`
	Subtotal      float64             `json:"subtotal"`
	DiscountTotal float64             `json:"discountTotal"`
	TotalPrice    float64             `json:"totalPrice"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// CheckoutRequest là DTO cho yêu cầu đặt hàng từ giỏ
type CheckoutRequest struct {
	AddressID uint `json:"addressId" binding:"required"`
}

// ChangeOrderStatusRequest là DTO cho yêu cầu đổi trạng thái đơn
type ChangeOrderStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}
