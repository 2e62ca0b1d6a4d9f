// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-admin/internal/config"
	"github.com/your-org/storefront-admin/internal/domain/cart"
	"github.com/your-org/storefront-admin/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-admin/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-admin/internal/upstream"
)

// SetupRoutes wires every dashboard endpoint. Path names follow the
// upstream commerce API so the dashboard client needs no translation
// table, misspellings included.
func SetupRoutes(rg *gin.RouterGroup, upstreamClient *upstream.Client, cartStore cart.Store, cfg *config.Config, log logrus.FieldLogger) {
	authHandler := handlers.NewAuthHandler(upstreamClient, cfg)
	productHandler := handlers.NewProductHandler(upstreamClient, cfg)
	orderHandler := handlers.NewOrderHandler(upstreamClient, cfg)
	posHandler := handlers.NewPOSHandler(upstreamClient, cartStore, cfg, log)
	taxHandler := handlers.NewTaxHandler(upstreamClient, cfg)
	testimonialHandler := handlers.NewTestimonialHandler(upstreamClient, cfg)
	invoiceHandler := handlers.NewInvoiceHandler(upstreamClient, cfg)

	// Public endpoints
	rg.POST("/admin-login", authHandler.Login)
	rg.POST("/register", authHandler.Register)

	// Everything else requires a session token
	protected := rg.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.POST("/logout", authHandler.Logout)

		// Product catalog
		protected.GET("/admin-product-fetch", productHandler.ListProducts)
		protected.GET("/user-product/:id", productHandler.GetProduct)
		protected.POST("/create-product", productHandler.CreateProduct)
		protected.PUT("/update-product/:id", productHandler.UpdateProduct)
		protected.DELETE("/delete-product/:id", productHandler.DeleteProduct)
		protected.POST("/create-varient", productHandler.CreateVariant)
		protected.POST("/update-varient/:id", productHandler.UpdateVariant)

		// Storefront orders
		protected.GET("/fetch-admin-order", orderHandler.ListOrders)
		protected.GET("/single-order-fetch/:id", orderHandler.GetOrder)
		protected.PUT("/update-status", orderHandler.UpdateOrderStatus)
		protected.GET("/dashboard-order", orderHandler.DashboardStats)
		protected.GET("/orders-count", orderHandler.OrdersCount)
		protected.GET("/transaction", orderHandler.ListTransactions)
		protected.GET("/orders/:id/invoice", invoiceHandler.GenerateInvoice)

		// Counter cart and POS
		protected.GET("/cart", posHandler.GetCart)
		protected.POST("/cart/items", posHandler.AddToCart)
		protected.PUT("/cart/items/:id/variant", posHandler.SelectVariant)
		protected.PUT("/cart/items/:id/quantity", posHandler.SetQuantity)
		protected.DELETE("/cart/items/:id", posHandler.RemoveFromCart)
		protected.DELETE("/cart", posHandler.ClearCart)
		protected.POST("/pos", posHandler.SubmitPOS)
		protected.GET("/fetch-pos", posHandler.ListPOS)

		// Tax configuration
		protected.GET("/tax", taxHandler.ListTaxes)
		protected.GET("/tax/country/:id", taxHandler.GetCountryTax)
		protected.GET("/tax/state/:id", taxHandler.GetStateTax)
		protected.POST("/tax/country", taxHandler.CreateCountryTax)
		protected.POST("/tax/state", taxHandler.CreateStateTax)
		protected.DELETE("/tax/:id", taxHandler.DeleteTax)

		// Testimonials
		protected.GET("/fetch-testimonial", testimonialHandler.ListTestimonials)
		protected.GET("/fetchsingle-testimonial/:id", testimonialHandler.GetTestimonial)
		protected.POST("/create-testimonial", testimonialHandler.CreateTestimonial)
		protected.PUT("/update-testimonial/:id", testimonialHandler.UpdateTestimonial)
		protected.DELETE("/delete-testimonial/:id", testimonialHandler.DeleteTestimonial)
	}
}
