package dto

import "time"

// UserResponse là DTO cho response của user
type UserResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	IsVerified  bool      `json:"verified"`
	Avatar      string    `json:"avatar"`
	Role        int       `json:"role"`
	Status      int       `json:"status"`
	Gender      int       `json:"gender"`
	DateOfBirth string    `json:"dateOfBirth"`
	WishlistIDs []int64   `json:"wishlistIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateUserRequest là DTO cho yêu cầu admin tạo user
type CreateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Role        int    `json:"role"`
}

// UpdateUserRequest là DTO cho yêu cầu cập nhật thông tin user
type UpdateUserRequest struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
	Gender      *int   `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
}

// ChangeUserStatusRequest là DTO cho yêu cầu thay đổi trạng thái user
type ChangeUserStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// WishlistRequest là DTO cho yêu cầu thêm/xóa sản phẩm yêu thích
type WishlistRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
}
