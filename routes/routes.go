package routes

import (
	"time"

	"weddingplanner/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers services-package and wedding-shop endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/servicesPackage", hb.Catalog.CreatePackage)
	r.GET("/servicesPackage", hb.Catalog.ListPackages)
	r.GET("/servicesPackage/:id", hb.Catalog.GetPackage)
	r.PUT("/servicesPackage/:id", hb.Catalog.UpdatePackage)
	r.PATCH("/servicesPackage/:id", hb.Catalog.DecrementStock)
	r.DELETE("/servicesPackage/:id", hb.Catalog.DeletePackage)

	r.POST("/weddingShop", hb.Catalog.CreateShopItem)
	r.GET("/weddingShop", hb.Catalog.ListShopItems)
	r.GET("/weddingShop/:id", hb.Catalog.GetShopItem)
	r.PUT("/weddingShop/:id", hb.Catalog.UpdateShopItem)
	r.DELETE("/weddingShop/:id", hb.Catalog.DeleteShopItem)
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/reviews", hb.Reviews.Create)
	r.GET("/reviews", hb.Reviews.List)
	r.GET("/reviews/pinned", hb.Reviews.ListPinned)
	r.PATCH("/reviews/pin/:id", hb.Reviews.SetPinned)
	r.DELETE("/reviews/:id", hb.Reviews.Delete)
}

// RegisterOrderAndBookingRoutes registers order and booking endpoints.
func RegisterOrderAndBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/orders", hb.Bookings.CreateOrder)

	r.POST("/bookings", hb.Bookings.CreateBooking)
	r.GET("/my-bookings/:email", hb.Bookings.MyBookings)
	r.GET("/admin/all-bookings", hb.Bookings.AllBookings)
	r.PATCH("/bookings/:id", hb.Bookings.UpdateStatus)
	r.DELETE("/bookings/:id", hb.Bookings.Delete)
}

// RegisterCartRoutes registers cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/cart", hb.Carts.Save)
	r.GET("/cart/:email", hb.Carts.Get)
}

// RegisterUserRoutes registers user and role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/users", hb.Users.Register)
	r.GET("/users", hb.Users.List)
	r.GET("/users/role/:email", hb.Users.GetRole)
	r.PATCH("/users/role/:id", hb.Users.UpdateRole)
	r.DELETE("/users/:id", hb.Users.Delete)

	r.GET("/dashboard-stats/:email", hb.Stats.Dashboard)
}

// RegisterPremiumRoutes registers biodata and unlock-premium endpoints.
func RegisterPremiumRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/biodata", hb.Premium.CreateBiodata)
	r.GET("/biodata", hb.Premium.ListBiodata)
	r.GET("/biodata/:id", hb.Premium.GetBiodata)
	r.PUT("/biodata/:id", hb.Premium.UpsertBiodata)
	r.DELETE("/biodata/:id", hb.Premium.DeleteBiodata)

	r.POST("/unlock-premium", hb.Premium.Unlock)
	r.GET("/unlocked-requests/:email", hb.Premium.MyUnlocks)
	r.GET("/all-unlocked-requests", hb.Premium.AllUnlocks)
	r.DELETE("/unlock-premium/:id", hb.Premium.DeleteUnlock)
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterOrderAndBookingRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterPremiumRoutes(r, hb)
}
