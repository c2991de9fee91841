package controllers

import (
	"errors"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"shop/config"
	"shop/dto"
	"shop/models"
	"shop/response"
	"shop/services"
	"shop/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

const productCacheKey = "products:all"

func toProductResponse(product *models.Product, rules []models.DiscountRule, now time.Time) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:               product.ID,
		Name:             product.Name,
		ShortDescription: product.ShortDescription,
		Description:      product.Description,
		Avatar:           product.Avatar,
		Img:              product.Img,
		Stock:            product.Stock,
		Sold:             product.Sold,
		Status:           product.Status,
		CategoryID:       product.CategoryID,
		Pricing:          services.BuildPricing(product, rules, now),
		CreatedAt:        product.CreatedAt,
		UpdatedAt:        product.UpdatedAt,
	}
	if product.Category != nil {
		resp.CategoryName = product.Category.Name
	}
	return resp
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	similarity := 1.0 - float64(distance)/maxLen
	return similarity
}

// Tạo danh sách tên danh mục duy nhất cho closestmatch
func prepareCategoryList(products []models.Product) []string {
	uniqueValues := make(map[string]bool)

	for _, product := range products {
		if product.Category != nil && product.Category.Name != "" {
			uniqueValues[normalizeInput(product.Category.Name)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho sản phẩm với query tìm kiếm
func calculateProductScore(query string, product models.Product, cmCategory *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	normalizedName := normalizeInput(product.Name)
	if strings.Contains(normalizedName, normalizedQuery) {
		score += 20
	} else if calculateSimilarity(normalizedQuery, normalizedName) > 0.7 {
		score += 15
	}

	for _, word := range strings.Fields(normalizedQuery) {
		if strings.Contains(normalizedName, word) {
			score += 5
		}
	}

	if product.Category != nil && product.Category.Name != "" {
		if cmCategory.Closest(normalizedQuery) == normalizeInput(product.Category.Name) {
			score += 10
		}
	}

	normalizedDescription := normalizeInput(product.ShortDescription)
	if normalizedDescription != "" && strings.Contains(normalizedDescription, normalizedQuery) {
		score += 4
	}

	return score
}

func filterAndScoreProducts(query string, products []models.Product, cmCategory *closestmatch.ClosestMatch) []dto.ScoredProduct {
	var filteredProducts []dto.ScoredProduct
	scoreCh := make(chan dto.ScoredProduct, len(products))
	var wg sync.WaitGroup

	for _, product := range products {
		wg.Add(1)
		go func(product models.Product) {
			defer wg.Done()
			score := calculateProductScore(query, product, cmCategory)
			if score > 0 {
				scoreCh <- dto.ScoredProduct{
					Product: product,
					Score:   score,
				}
			}
		}(product)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredProduct := range scoreCh {
		filteredProducts = append(filteredProducts, scoredProduct)
	}

	sort.SliceStable(filteredProducts, func(i, j int) bool {
		return filteredProducts[i].Score > filteredProducts[j].Score
	})
	return filteredProducts
}

// Load toàn bộ sản phẩm, ưu tiên lấy từ cache Redis.
// Cache chỉ giữ dữ liệu thô của sản phẩm, breakdown giá luôn được tính lại
// theo thời điểm request để rule giảm giá có hiệu lực đúng khung thời gian.
func loadAllProducts() ([]models.Product, error) {
	var products []models.Product

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, productCacheKey, &products); err != nil {
		log.Printf("Lỗi khi lấy cache sản phẩm: %v", err)
	}
	if len(products) > 0 {
		return products, nil
	}

	if err := config.DB.Preload("Category").Find(&products).Error; err != nil {
		return nil, err
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, productCacheKey, products, 10*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu cache sản phẩm: %v", err)
	}

	return products, nil
}

// GetProducts trả về danh sách sản phẩm có phân trang, có thể lọc và tìm kiếm gần đúng
func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	allProducts, err := loadAllProducts()
	if err != nil {
		response.ServerError(c)
		return
	}

	var filtered []models.Product

	if query := strings.TrimSpace(c.Query("search")); query != "" {
		cmCategory := createMatcher(prepareCategoryList(allProducts))
		scored := filterAndScoreProducts(query, allProducts, cmCategory)
		for _, sp := range scored {
			filtered = append(filtered, sp.Product)
		}
	} else {
		filtered = allProducts
	}

	nameFilter := normalizeInput(c.Query("name"))
	categoryFilter := c.Query("categoryId")
	statusFilter := c.Query("status")
	minPriceFilter := c.Query("minPrice")
	maxPriceFilter := c.Query("maxPrice")

	var results []models.Product
	for _, product := range filtered {
		if nameFilter != "" && !strings.Contains(normalizeInput(product.Name), nameFilter) {
			continue
		}
		if categoryFilter != "" {
			categoryID, err := strconv.Atoi(categoryFilter)
			if err != nil || product.CategoryID == nil || *product.CategoryID != uint(categoryID) {
				continue
			}
		}
		if statusFilter != "" {
			status, err := strconv.Atoi(statusFilter)
			if err != nil || product.Status != status {
				continue
			}
		}
		if minPriceFilter != "" {
			minPrice, err := strconv.ParseFloat(minPriceFilter, 64)
			if err == nil && product.Price < minPrice {
				continue
			}
		}
		if maxPriceFilter != "" {
			maxPrice, err := strconv.ParseFloat(maxPriceFilter, 64)
			if err == nil && product.Price > maxPrice {
				continue
			}
		}
		results = append(results, product)
	}

	total := len(results)
	start := page * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	paged := results[start:end]

	rules, err := services.GetActiveDiscountRules(config.DB)
	if err != nil {
		response.ServerError(c)
		return
	}

	now := time.Now()
	productResponses := make([]dto.ProductResponse, 0, len(paged))
	for i := range paged {
		productResponses = append(productResponses, toProductResponse(&paged[i], rules, now))
	}

	response.SuccessWithPagination(c, productResponses, page, limit, total)
}

// GetProductDetail trả về chi tiết một sản phẩm kèm breakdown giá
func GetProductDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var product models.Product
	if err := config.DB.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	rules, err := services.GetActiveDiscountRules(config.DB)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toProductResponse(&product, rules, time.Now()))
}

// CreateProduct tạo mới sản phẩm, chỉ dành cho admin
func CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product := models.Product{
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Price:            req.Price,
		Stock:            req.Stock,
		Avatar:           req.Avatar,
		Img:              req.Img,
		CategoryID:       req.CategoryID,
		Status:           1,
	}

	if err := validator.ValidateProduct(&product); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if product.CategoryID != nil {
		var category models.Category
		if err := config.DB.First(&category, *product.CategoryID).Error; err != nil {
			response.BadRequest(c, "Danh mục không tồn tại")
			return
		}
	}

	if err := config.DB.Create(&product).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateProductCache(config.Ctx, config.RedisClient)

	response.Success(c, product)
}

func UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.ShortDescription != "" {
		product.ShortDescription = req.ShortDescription
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Avatar != "" {
		product.Avatar = req.Avatar
	}
	if req.Img != nil {
		product.Img = req.Img
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := config.DB.First(&category, *req.CategoryID).Error; err != nil {
			response.BadRequest(c, "Danh mục không tồn tại")
			return
		}
		product.CategoryID = req.CategoryID
	}

	if err := validator.ValidateProduct(&product); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&product).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateProductCache(config.Ctx, config.RedisClient)

	response.Success(c, product)
}

func ChangeProductStatus(c *gin.Context) {
	var req dto.ChangeProductStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	product.Status = req.Status
	if err := product.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	if err := config.DB.Save(&product).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateProductCache(config.Ctx, config.RedisClient)

	response.Success(c, product)
}

func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateProductCache(config.Ctx, config.RedisClient)

	response.Success(c, nil)
}
