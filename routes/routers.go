package routes

import (
	"context"
	"fmt"
	"net/http"
	"shop/config"
	"shop/controllers"
	middlewares "shop/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.SessionMiddleware())
	router.Use(middlewares.ErrorHandler())

	v1 := router.Group("/api/v1")

	v1.GET("/verify-email", controllers.VerifyEmail)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/resendCode", controllers.ResendVerificationCode)
	v1.POST("/forgetPassword", controllers.ForgetPassword)
	v1.POST("/newPassword", controllers.ResetPassword)
	v1.POST("/verifyCode", controllers.VerifyCode)
	v1.POST("/auth/google", controllers.AuthGoogle)

	v1.GET("/profile", controllers.GetUserProfile)
	v1.PUT("/profile", controllers.UpdateUserProfile)
	v1.GET("/users", middlewares.AuthMiddleware(1, 2), controllers.GetUsers)
	v1.PUT("/userStatus", middlewares.AuthMiddleware(2), controllers.ChangeUserStatus)
	v1.POST("/wishlist", controllers.AddToWishlist)
	v1.DELETE("/wishlist", controllers.RemoveFromWishlist)

	v1.GET("/category", controllers.GetCategories)
	v1.GET("/category/:id", controllers.GetCategoryDetail)
	v1.POST("/category", middlewares.AuthMiddleware(2), controllers.CreateCategory)
	v1.PUT("/categoryUpdate", middlewares.AuthMiddleware(2), controllers.UpdateCategory)
	v1.DELETE("/category/:id", middlewares.AuthMiddleware(2), controllers.DeleteCategory)

	v1.GET("/products", controllers.GetProducts)
	v1.GET("/products/:id", controllers.GetProductDetail)
	v1.POST("/products", middlewares.AuthMiddleware(1, 2), controllers.CreateProduct)
	v1.PUT("/productUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateProduct)
	v1.PUT("/productStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeProductStatus)
	v1.DELETE("/products/:id", middlewares.AuthMiddleware(2), controllers.DeleteProduct)

	discounts := v1.Group("/discounts", middlewares.AuthMiddleware(), middlewares.RoleMiddleware(2))
	discounts.GET("", controllers.GetDiscountRules)
	discounts.GET("/:id", controllers.GetDiscountRuleDetail)
	discounts.POST("", controllers.CreateDiscountRule)
	discounts.PUT("/:id", controllers.UpdateDiscountRule)
	discounts.DELETE("/:id", controllers.DeleteDiscountRule)
	v1.PUT("/discountStatus", middlewares.AuthMiddleware(2), controllers.ChangeDiscountRuleStatus)

	v1.GET("/cart", controllers.GetCart)
	v1.POST("/cart", controllers.AddCartItem)
	v1.PUT("/cart", controllers.UpdateCartItem)
	v1.DELETE("/cart/:id", controllers.RemoveCartItem)
	v1.DELETE("/cart", controllers.ClearCart)

	v1.GET("/address", controllers.GetAddresses)
	v1.POST("/address", controllers.CreateAddress)
	v1.PUT("/address", controllers.UpdateAddress)
	v1.DELETE("/address/:id", controllers.DeleteAddress)

	v1.POST("/checkout", controllers.Checkout)
	v1.GET("/order", middlewares.AuthMiddleware(1, 2), controllers.GetAllOrders)
	v1.GET("/orderHistory", controllers.GetOrders)
	v1.GET("/order/:id", controllers.GetOrderDetail)
	v1.PUT("/orderUpdate", middlewares.AuthMiddleware(1, 2), controllers.ChangeOrderStatus)
	v1.PUT("/order/:id/cancel", controllers.CancelOrder)
	v1.DELETE("/order/:id", middlewares.AuthMiddleware(2), controllers.DeleteOrder)

	v1.POST("/order/:id/payment", controllers.CreatePaymentIntent)
	v1.POST("/stripe/webhook", controllers.StripeWebhook)

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(1, 2), func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "products"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		fmt.Println("Broadcasting message:", string(message))
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}
