package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Animeshkhedkar0523/campus-smart-eats/configs"
	"github.com/Animeshkhedkar0523/campus-smart-eats/controllers"
	"github.com/Animeshkhedkar0523/campus-smart-eats/entity"
	"github.com/Animeshkhedkar0523/campus-smart-eats/middlewares"
	"github.com/Animeshkhedkar0523/campus-smart-eats/repository"
	"github.com/Animeshkhedkar0523/campus-smart-eats/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(cartRepo)
	orderSvc := services.NewOrderService(orderRepo, userRepo, cfg.StrictStatus)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	authed := middlewares.Auth(db, cfg.JWTSecret)
	adminOnly := middlewares.Auth(db, cfg.JWTSecret, entity.RoleAdmin)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Menu: reads are public, writes are admin
	menu := r.Group("/menu")
	{
		menu.GET("", menuCtrl.List)
		menu.GET("/:id", menuCtrl.Get)
		menu.POST("", adminOnly, menuCtrl.Create)
		menu.PUT("/:id", adminOnly, menuCtrl.Update)
		menu.DELETE("/:id", adminOnly, menuCtrl.Delete)
	}

	// Cart (authenticated)
	cart := r.Group("/cart", authed)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/add", cartCtrl.Add)
		cart.PUT("/update", cartCtrl.Update)
		cart.DELETE("/clear", cartCtrl.Clear)
	}

	// Orders: fixed paths before the :id wildcard
	orders := r.Group("/orders")
	{
		orders.POST("", authed, orderCtrl.Create)
		orders.GET("/user", authed, orderCtrl.ListForMe)
		orders.GET("/admin/all", adminOnly, orderCtrl.ListAll)
		orders.GET("/admin/stats", adminOnly, orderCtrl.Stats)
		orders.GET("/:id", authed, orderCtrl.Detail)
		orders.PUT("/:id/status", adminOnly, orderCtrl.UpdateStatus)
	}
}
