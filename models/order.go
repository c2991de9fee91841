package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending   = 0
	OrderStatusConfirmed = 1
	OrderStatusCompleted = 2
	OrderStatusCancelled = 3
)

// Payment status constants
const (
	PaymentStatusUnpaid   = 0
	PaymentStatusPaid     = 1
	PaymentStatusFailed   = 2
	PaymentStatusRefunded = 3
)

type Order struct {
	ID                    uint        `json:"id" gorm:"primaryKey"`
	UserID                *uint       `json:"userId"`
	User                  *User       `json:"user" gorm:"foreignKey:UserID"`
	AddressID             uint        `json:"addressId"`
	Address               Address     `json:"address" gorm:"foreignKey:AddressID"`
	Items                 []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Status                int         `json:"status"`
	PaymentStatus         int         `json:"paymentStatus"`
	StripePaymentIntentID string      `json:"stripePaymentIntentId"`
	GuestName             string      `json:"guestName,omitempty"`
	GuestEmail            string      `json:"guestEmail,omitempty"`
	GuestPhone            string      `json:"guestPhone,omitempty"`
	Subtotal              float64     `json:"subtotal"`      // Tổng giá gốc các dòng hàng
	DiscountTotal         float64     `json:"discountTotal"` // Tổng tiền được giảm
	TotalPrice            float64     `json:"totalPrice"`    // Tổng thanh toán
	CreatedAt             time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

type OrderItem struct {
	ID                 uint    `json:"id" gorm:"primaryKey"`
	OrderID            uint    `json:"orderId" gorm:"index"`
	ProductID          uint    `json:"productId"`
	Product            Product `json:"product" gorm:"foreignKey:ProductID"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unitPrice"`          // Giá gốc tại thời điểm đặt
	FinalPrice         float64 `json:"finalPrice"`         // Giá sau giảm tại thời điểm đặt
	DiscountPercentage int     `json:"discountPercentage"` // Phần trăm giảm đã áp dụng
}

type OrderRequest struct {
	UserID     uint   `json:"userId"`
	AddressID  uint   `json:"addressId"`
	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`
}
