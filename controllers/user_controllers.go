package controllers

import (
	"strconv"
	"strings"

	"shop/config"
	"shop/dto"
	"shop/models"
	"shop/response"
	"shop/services"
	"shop/validator"

	"github.com/gin-gonic/gin"
)

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		IsVerified:  user.IsVerified,
		Role:        user.Role,
		Status:      user.Status,
		Avatar:      user.Avatar,
		Gender:      user.Gender,
		DateOfBirth: user.DateOfBirth,
		WishlistIDs: user.WishlistIDs,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// GetUserProfile trả về hồ sơ của người dùng đang đăng nhập
func GetUserProfile(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.Preload("Addresses").First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toUserResponse(&user))
}

func UpdateUserProfile(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.PhoneNumber != "" {
		if err := validator.ValidatePhone(req.PhoneNumber); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.DateOfBirth != "" {
		user.DateOfBirth = req.DateOfBirth
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(&user))
}

// GetUsers trả về danh sách người dùng có phân trang, chỉ dành cho admin
func GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	query := config.DB.Model(&models.User{})

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status, err := strconv.Atoi(statusStr)
		if err != nil {
			response.BadRequest(c, "Trạng thái không hợp lệ")
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var users []models.User
	if err := query.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	userResponses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		userResponses = append(userResponses, toUserResponse(&users[i]))
	}

	response.SuccessWithPagination(c, userResponses, page, limit, int(total))
}

func ChangeUserStatus(c *gin.Context) {
	var req dto.ChangeUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	user.Status = req.Status
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(&user))
}

// AddToWishlist thêm sản phẩm vào danh sách yêu thích của người dùng
func AddToWishlist(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var req dto.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	for _, id := range user.WishlistIDs {
		if id == req.ProductID {
			response.Success(c, toUserResponse(&user))
			return
		}
	}

	user.WishlistIDs = append(user.WishlistIDs, req.ProductID)
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(&user))
}

func RemoveFromWishlist(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var req dto.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	filtered := user.WishlistIDs[:0]
	for _, id := range user.WishlistIDs {
		if id != req.ProductID {
			filtered = append(filtered, id)
		}
	}
	user.WishlistIDs = filtered

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(&user))
}
