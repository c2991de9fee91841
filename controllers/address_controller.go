package controllers

import (
	"shop/config"
	"shop/dto"
	"shop/models"
	"shop/response"
	"shop/services"
	"shop/validator"

	"github.com/gin-gonic/gin"
)

func toAddressResponse(address *models.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:          address.ID,
		FullName:    address.FullName,
		PhoneNumber: address.PhoneNumber,
		Street:      address.Street,
		Ward:        address.Ward,
		District:    address.District,
		Province:    address.Province,
		IsDefault:   address.IsDefault,
	}
}

// GetAddresses trả về danh sách địa chỉ của người dùng đang đăng nhập
func GetAddresses(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var addresses []models.Address
	if err := config.DB.Where("user_id = ?", userID).Order("is_default DESC, created_at DESC").Find(&addresses).Error; err != nil {
		response.ServerError(c)
		return
	}

	addressResponses := make([]dto.AddressResponse, 0, len(addresses))
	for i := range addresses {
		addressResponses = append(addressResponses, toAddressResponse(&addresses[i]))
	}

	response.Success(c, addressResponses)
}

// CreateAddress thêm địa chỉ giao hàng mới
func CreateAddress(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	address := models.Address{
		UserID:      userID,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Street:      req.Street,
		Ward:        req.Ward,
		District:    req.District,
		Province:    req.Province,
		IsDefault:   req.IsDefault,
	}

	if err := validator.ValidateAddress(&address); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	// Địa chỉ đầu tiên luôn là mặc định
	var count int64
	if err := config.DB.Model(&models.Address{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count == 0 {
		address.IsDefault = true
	}

	tx := config.DB.Begin()
	if address.IsDefault {
		if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false).Error; err != nil {
			tx.Rollback()
			response.ServerError(c)
			return
		}
	}
	if err := tx.Create(&address).Error; err != nil {
		tx.Rollback()
		response.ServerError(c)
		return
	}
	if err := tx.Commit().Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toAddressResponse(&address))
}

// UpdateAddress cập nhật địa chỉ, chỉ chủ sở hữu được phép
func UpdateAddress(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var req dto.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", req.ID, userID).First(&address).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.FullName != "" {
		address.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		address.PhoneNumber = req.PhoneNumber
	}
	if req.Street != "" {
		address.Street = req.Street
	}
	if req.Ward != "" {
		address.Ward = req.Ward
	}
	if req.District != "" {
		address.District = req.District
	}
	if req.Province != "" {
		address.Province = req.Province
	}

	if err := validator.ValidateAddress(&address); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	tx := config.DB.Begin()
	if req.IsDefault != nil && *req.IsDefault {
		if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false).Error; err != nil {
			tx.Rollback()
			response.ServerError(c)
			return
		}
		address.IsDefault = true
	}
	if err := tx.Save(&address).Error; err != nil {
		tx.Rollback()
		response.ServerError(c)
		return
	}
	if err := tx.Commit().Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toAddressResponse(&address))
}

// DeleteAddress xóa địa chỉ, chỉ chủ sở hữu được phép
func DeleteAddress(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	userID, _, err := services.GetUserIDFromToken(authHeader)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")

	result := config.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, nil)
}
