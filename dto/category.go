package dto

import "time"

// CategoryResponse là DTO cho response của danh mục
type CategoryResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Status       int       `json:"status"`
	ProductCount int       `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateCategoryRequest là DTO cho yêu cầu tạo mới danh mục
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// UpdateCategoryRequest là DTO cho yêu cầu cập nhật danh mục
type UpdateCategoryRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Status      *int   `json:"status"`
}
