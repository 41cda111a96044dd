package routes

import (
	"log"

	"catering-api/config"
	"catering-api/controllers"
	"catering-api/middleware"
	"catering-api/repositories"
	"catering-api/services"
	"catering-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, db *pgxpool.Pool, rdb *redis.Client) {
	cfg := config.AppConfig

	accountRepo := repositories.NewAccountRepository(db)
	dishRepo := repositories.NewDishRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	var mailer services.Mailer
	if emailSvc, err := services.NewEmailService(cfg); err != nil {
		log.Printf("SMTP not configured, logging email links instead: %v", err)
		mailer = &services.LogMailer{FrontendURL: cfg.FrontendURL}
	} else {
		mailer = emailSvc
	}

	signer := utils.NewTimestampSigner(cfg.JWTSecret)
	blacklist := services.NewRedisBlacklist(rdb)
	cache := services.NewRedisCache(rdb)

	authSvc := services.NewAuthService(accountRepo, mailer, signer, blacklist, services.AuthConfig{
		JWTSecret:        cfg.JWTSecret,
		JWTAccessExpiry:  cfg.JWTAccessExpiry,
		JWTRefreshExpiry: cfg.JWTRefreshExpiry,
		TokenMaxAge:      cfg.TokenMaxAge,
	})
	dishSvc := services.NewDishService(dishRepo, cache)
	cartSvc := services.NewCartService(cartRepo)

	authCtrl := controllers.NewAuthController(authSvc)
	dishCtrl := controllers.NewDishController(dishSvc, dishRepo)
	categoryCtrl := controllers.NewCategoryController(dishSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	bookingCtrl := controllers.NewBookingController(bookingRepo)
	reviewCtrl := controllers.NewReviewController(reviewRepo, dishRepo)
	contactCtrl := controllers.NewContactController(contactRepo)

	auth := router.Group("/auth")
	{
		auth.POST("/register/", authCtrl.Register)
		auth.POST("/login/", authCtrl.Login)
		auth.GET("/verify/", authCtrl.Verify)
		auth.POST("/regenerate-token/", authCtrl.RegenerateToken)
		auth.POST("/refresh/", authCtrl.Refresh)
		auth.POST("/logout/", middleware.AuthMiddleware(cfg.JWTSecret), authCtrl.Logout)
		auth.POST("/reset-password/", authCtrl.ResetPassword)
		auth.POST("/confirm-password-reset/", authCtrl.ConfirmPasswordReset)
	}

	dishes := router.Group("/dishes")
	{
		dishes.GET("/", dishCtrl.GetDishes)
		dishes.GET("/featured/", dishCtrl.GetFeaturedDishes)

		dishes.GET("/:category_slug/:slug/", dishCtrl.GetDishDetail)
	}

	admin := router.Group("/admin/dishes", middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminMiddleware())
	{
		admin.POST("/", dishCtrl.CreateDish)
		admin.PATCH("/:id/", dishCtrl.UpdateDish)
		admin.DELETE("/:id/", dishCtrl.DeleteDish)
	}

	router.GET("/categories/", categoryCtrl.GetAllCategories)

	cart := router.Group("/cart")
	{
		cart.POST("/add_item/", cartCtrl.AddItem)
		cart.GET("/get_cart_stat/", cartCtrl.GetCartStat)
		cart.GET("/get_cart_item/", cartCtrl.GetCartItem)
	}

	bookings := router.Group("/bookings")
	{
		bookings.POST("/create/", middleware.OptionalAuthMiddleware(cfg.JWTSecret), bookingCtrl.CreateBooking)
		bookings.GET("/get-booking-events/", bookingCtrl.GetBookingChoices)
	}

	reviews := router.Group("/reviews")
	{
		reviews.GET("/:slug/", reviewCtrl.GetDishReviews)
		reviews.POST("/:slug/add/", middleware.AuthMiddleware(cfg.JWTSecret), reviewCtrl.CreateDishReview)
	}

	router.POST("/contact/", contactCtrl.CreateContact)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
