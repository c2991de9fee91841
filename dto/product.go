package dto

import (
	"encoding/json"
	"time"

	"shop/models"
	"shop/services"
)

// ProductResponse là DTO cho response của sản phẩm, có kèm breakdown giá
type ProductResponse struct {
	ID               uint                    `json:"id"`
	Name             string                  `json:"name"`
	ShortDescription string                  `json:"shortDescription"`
	Description      string                  `json:"description"`
	Avatar           string                  `json:"avatar"`
	Img              json.RawMessage         `json:"img"`
	Stock            int                     `json:"stock"`
	Sold             int                     `json:"sold"`
	Status           int                     `json:"status"`
	CategoryID       *uint                   `json:"categoryId"`
	CategoryName     string                  `json:"categoryName,omitempty"`
	Pricing          services.PriceBreakdown `json:"pricing"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

// CreateProductRequest là DTO cho yêu cầu tạo mới sản phẩm
type CreateProductRequest struct {
	Name             string          `json:"name" binding:"required"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Price            float64         `json:"price" binding:"required"`
	Stock            int             `json:"stock"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img"`
	CategoryID       *uint           `json:"categoryId"`
}

// UpdateProductRequest là DTO cho yêu cầu cập nhật sản phẩm
type UpdateProductRequest struct {
	ID               uint            `json:"id" binding:"required"`
	Name             string          `json:"name"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Price            float64         `json:"price"`
	Stock            *int            `json:"stock"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img"`
	CategoryID       *uint           `json:"categoryId"`
}

// ChangeProductStatusRequest là DTO cho yêu cầu thay đổi trạng thái sản phẩm
type ChangeProductStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// ScoredProduct giữ sản phẩm cùng điểm phù hợp khi tìm kiếm
type ScoredProduct struct {
	Product models.Product
	Score   int
}
