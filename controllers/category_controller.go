package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"shop/config"
	"shop/dto"
	"shop/models"
	"shop/response"
	"shop/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const categoryCacheKey = "categories:all"

func toCategoryResponse(category *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:           category.ID,
		Name:         category.Name,
		Description:  category.Description,
		Image:        category.Image,
		Status:       category.Status,
		ProductCount: len(category.Products),
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}
}

// GetCategories trả về danh sách danh mục, ưu tiên lấy từ cache Redis
func GetCategories(c *gin.Context) {
	var categories []models.Category

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, categoryCacheKey, &categories); err != nil {
		log.Printf("Lỗi khi lấy cache danh mục: %v", err)
	}

	if len(categories) == 0 {
		if err := config.DB.Preload("Products").Find(&categories).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(config.Ctx, config.RedisClient, categoryCacheKey, categories, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu cache danh mục: %v", err)
		}
	}

	categoryResponses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		categoryResponses = append(categoryResponses, toCategoryResponse(&categories[i]))
	}

	response.SuccessWithTotal(c, categoryResponses, len(categoryResponses))
}

func GetCategoryDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var category models.Category
	if err := config.DB.Preload("Products").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toCategoryResponse(&category))
}

// CreateCategory tạo mới danh mục, chỉ dành cho admin
func CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Status:      1,
	}

	if err := config.DB.Create(&category).Error; err != nil {
		response.Conflict(c)
		return
	}

	services.InvalidateProductCache(config.Ctx, config.RedisClient)

	response.Success(c, toCategoryResponse(&category))
}

func UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.Image != "" {
		category.Image = req.Image
	}
	if req.Status != nil {
		category.Status = *req.Status
		if err := category.ValidateStatus(); err != nil {
			response.BadRequest(c, "Trạng thái không hợp lệ")
			return
		}
	}

	if err := config.DB.Save(&category).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateProductCache(config.Ctx, config.RedisClient)

	response.Success(c, toCategoryResponse(&category))
}

func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	// Không xóa danh mục còn sản phẩm tham chiếu
	var productCount int64
	if err := config.DB.Model(&models.Product{}).Where("category_id = ?", id).Count(&productCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if productCount > 0 {
		response.BadRequest(c, "Danh mục vẫn còn sản phẩm, không thể xóa")
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateProductCache(config.Ctx, config.RedisClient)

	response.Success(c, nil)
}
