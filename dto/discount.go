package dto

import "time"

// DiscountRuleResponse là DTO cho response của rule giảm giá
type DiscountRuleResponse struct {
	ID                 uint       `json:"id"`
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	CategoryID         *uint      `json:"categoryId,omitempty"`
	ProductID          *uint      `json:"productId,omitempty"`
	PriceMin           *float64   `json:"priceMin,omitempty"`
	DiscountPercentage float64    `json:"discountPercentage"`
	StartsAt           *time.Time `json:"startsAt,omitempty"`
	EndsAt             *time.Time `json:"endsAt,omitempty"`
	Active             bool       `json:"active"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// CreateDiscountRuleRequest là DTO cho yêu cầu tạo mới rule giảm giá
type CreateDiscountRuleRequest struct {
	Name               string     `json:"name" binding:"required"`
	Type               string     `json:"type" binding:"required"`
	CategoryID         *uint      `json:"categoryId"`
	ProductID          *uint      `json:"productId"`
	PriceMin           *float64   `json:"priceMin"`
	DiscountPercentage float64    `json:"discountPercentage" binding:"required"`
	StartsAt           *time.Time `json:"startsAt"`
	EndsAt             *time.Time `json:"endsAt"`
	Active             *bool      `json:"active"`
}

// UpdateDiscountRuleRequest là DTO cho yêu cầu cập nhật rule giảm giá
type UpdateDiscountRuleRequest struct {
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	CategoryID         *uint      `json:"categoryId"`
	ProductID          *uint      `json:"productId"`
	PriceMin           *float64   `json:"priceMin"`
	DiscountPercentage *float64   `json:"discountPercentage"`
	StartsAt           *time.Time `json:"startsAt"`
	EndsAt             *time.Time `json:"endsAt"`
	Active             *bool      `json:"active"`
}

// ChangeDiscountRuleStatusRequest là DTO cho yêu cầu bật/tắt rule
type ChangeDiscountRuleStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Active bool `json:"active"`
}
