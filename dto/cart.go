package dto

import "shop/services"

// CartItemResponse là DTO cho một dòng hàng trong giỏ
type CartItemResponse struct {
	ID        uint                    `json:"id"`
	Product   ProductResponse         `json:"product"`
	Quantity  int                     `json:"quantity"`
	Pricing   services.PriceBreakdown `json:"pricing"`
	LineTotal float64                 `json:"lineTotal"`
}

// CartResponse là DTO cho response của giỏ hàng
type CartResponse struct {
	ID            uint               `json:"id"`
	Items         []CartItemResponse `json:"items"`
	Subtotal      float64            `json:"subtotal"`
	DiscountTotal float64            `json:"discountTotal"`
	Total         float64            `json:"total"`
}

// AddCartItemRequest là DTO cho yêu cầu thêm sản phẩm vào giỏ
type AddCartItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// UpdateCartItemRequest là DTO cho yêu cầu đổi số lượng
type UpdateCartItemRequest struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}
