package controllers

import (
	"errors"
	"strconv"

	"shop/config"
	"shop/dto"
	"shop/models"
	"shop/response"
	"shop/services"
	"shop/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func toDiscountRuleResponse(rule *models.DiscountRule) dto.DiscountRuleResponse {
	return dto.DiscountRuleResponse{
		ID:                 rule.ID,
		Name:               rule.Name,
		Type:               rule.Type,
		CategoryID:         rule.CategoryID,
		ProductID:          rule.ProductID,
		PriceMin:           rule.PriceMin,
		DiscountPercentage: rule.DiscountPercentage,
		StartsAt:           rule.StartsAt,
		EndsAt:             rule.EndsAt,
		Active:             rule.Active,
		CreatedAt:          rule.CreatedAt,
		UpdatedAt:          rule.UpdatedAt,
	}
}

// CreateDiscountRule tạo mới một rule giảm giá
func CreateDiscountRule(c *gin.Context) {
	var req dto.CreateDiscountRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	rule := models.DiscountRule{
		Name:               req.Name,
		Type:               req.Type,
		CategoryID:         req.CategoryID,
		ProductID:          req.ProductID,
		PriceMin:           req.PriceMin,
		DiscountPercentage: req.DiscountPercentage,
		StartsAt:           req.StartsAt,
		EndsAt:             req.EndsAt,
		Active:             active,
	}

	if err := validator.ValidateDiscountRule(&rule); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	// Rule CATEGORY/PRODUCT phải trỏ tới bản ghi còn tồn tại
	if rule.CategoryID != nil {
		var category models.Category
		if err := config.DB.First(&category, *rule.CategoryID).Error; err != nil {
			response.BadRequest(c, "Danh mục không tồn tại")
			return
		}
	}
	if rule.ProductID != nil {
		var product models.Product
		if err := config.DB.First(&product, *rule.ProductID).Error; err != nil {
			response.BadRequest(c, "Sản phẩm không tồn tại")
			return
		}
	}

	if err := config.DB.Create(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateProductCache(config.Ctx, config.RedisClient)

	response.Success(c, toDiscountRuleResponse(&rule))
}

// GetDiscountRules trả về danh sách rule giảm giá có phân trang
func GetDiscountRules(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	query := config.DB.Model(&models.DiscountRule{})

	if ruleType := c.Query("type"); ruleType != "" {
		query = query.Where("type = ?", ruleType)
	}
	if activeStr := c.Query("active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			response.BadRequest(c, "Giá trị active không hợp lệ")
			return
		}
		query = query.Where("active = ?", active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var rules []models.DiscountRule
	if err := query.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&rules).Error; err != nil {
		response.ServerError(c)
		return
	}

	ruleResponses := make([]dto.DiscountRuleResponse, 0, len(rules))
	for i := range rules {
		ruleResponses = append(ruleResponses, toDiscountRuleResponse(&rules[i]))
	}

	response.SuccessWithPagination(c, ruleResponses, page, limit, int(total))
}

func GetDiscountRuleDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var rule models.DiscountRule
	if err := config.DB.First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toDiscountRuleResponse(&rule))
}

// UpdateDiscountRule cập nhật rule giảm giá, rule sau cập nhật
// được validate lại để không rơi vào trạng thái không hợp lệ
func UpdateDiscountRule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.UpdateDiscountRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var rule models.DiscountRule
	if err := config.DB.First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if req.Name != "" {
		rule.Name = req.Name
	}
	if req.Type != "" {
		rule.Type = req.Type
	}
	if req.CategoryID != nil {
		rule.CategoryID = req.CategoryID
	}
	if req.ProductID != nil {
		rule.ProductID = req.ProductID
	}
	if req.PriceMin != nil {
		rule.PriceMin = req.PriceMin
	}
	if req.DiscountPercentage != nil {
		rule.DiscountPercentage = *req.DiscountPercentage
	}
	if req.StartsAt != nil {
		rule.StartsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		rule.EndsAt = req.EndsAt
	}
	if req.Active != nil {
		rule.Active = *req.Active
	}

	if err := validator.ValidateDiscountRule(&rule); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateProductCache(config.Ctx, config.RedisClient)

	response.Success(c, toDiscountRuleResponse(&rule))
}

func DeleteDiscountRule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var rule models.DiscountRule
	if err := config.DB.First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if err := config.DB.Delete(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateProductCache(config.Ctx, config.RedisClient)

	response.Success(c, nil)
}

// ChangeDiscountRuleStatus bật/tắt một rule giảm giá
func ChangeDiscountRuleStatus(c *gin.Context) {
	var req dto.ChangeDiscountRuleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var rule models.DiscountRule
	if err := config.DB.First(&rule, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	rule.Active = req.Active
	if err := config.DB.Save(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateProductCache(config.Ctx, config.RedisClient)

	response.Success(c, toDiscountRuleResponse(&rule))
}
