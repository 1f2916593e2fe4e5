package server

import (
	"net/http"
	"time"

	"carbid/internal/auth"
	bidding "carbid/internal/biddingService"
	"carbid/internal/config"
	"carbid/internal/fanout"
	model "carbid/internal/models"
	user "carbid/internal/userService"
	vehicle "carbid/internal/vehicleService"
	auctionhandler "carbid/services/auction/handler"
	authhandler "carbid/services/auth/handler"
	"carbid/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles everything the router wires together.
type Services struct {
	Auth     *auth.Service
	Vehicles *vehicle.VehicleService
	Bidding  *bidding.BiddingService
	Users    *user.UserService
	Hub      *fanout.Hub
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(cfg config.Config, svc Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(corsMiddleware(cfg))

	authHandler := authhandler.NewAuthHandler(svc.Auth)
	vehicleHandler := auctionhandler.NewVehicleHandler(svc.Vehicles)
	bidHandler := auctionhandler.NewBidHandler(svc.Bidding)
	userHandler := auctionhandler.NewUserHandler(svc.Users)

	authenticate := auth.Authenticate(svc.Auth)

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"time": time.Now().UTC().Format(time.RFC3339)}, "ok")
	})

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", authenticate, authHandler.Me)
	}

	vehicles := api.Group("/vehicles")
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.POST("", authenticate, auth.RequireRoles(model.RoleSeller, model.RoleAdmin), vehicleHandler.CreateVehicle)
		vehicles.GET("/:vehicle_id", vehicleHandler.GetVehicle)
		vehicles.PATCH("/:vehicle_id/close", authenticate, vehicleHandler.CloseVehicle)
		vehicles.GET("/:vehicle_id/bids", bidHandler.ListBids)
		vehicles.POST("/:vehicle_id/bids", authenticate, bidHandler.PlaceBid)
	}

	me := api.Group("/users/me", authenticate)
	{
		me.GET("/history", userHandler.History)
		me.GET("/notifications", userHandler.Notifications)
		me.POST("/notifications/read-all", userHandler.MarkNotificationsRead)
		me.GET("/agenda", userHandler.Agenda)
	}

	stream := api.Group("/sse")
	{
		stream.GET("/vehicles/:vehicle_id", SSEVehicleHandler(svc.Hub))
		stream.GET("/users/me", authenticate, SSEUserHandler(svc.Hub))
	}

	router.GET("/ws", gin.WrapH(WebsocketHandler(svc.Hub, svc.Auth)))

	return router
}

func corsMiddleware(cfg config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	return cors.New(corsCfg)
}
