// Package router assembles the gin engine and its route table.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "market_backend/internal/feature/auth/transport/handler"
	offerhandler "market_backend/internal/feature/offers/transport/handler"
	paymenthandler "market_backend/internal/feature/payment/transport/handler"
	platformhandler "market_backend/internal/platform/http/handler"
	"market_backend/internal/platform/logging"
)

// Handlers groups the feature handlers mounted on the engine.
type Handlers struct {
	Auth    *authhandler.AuthHandler
	Offers  *offerhandler.OfferHandler
	Payment *paymenthandler.PaymentHandler
}

// NewRouter builds the engine. authGate guards the routes that need a bearer token.
func NewRouter(h Handlers, authGate gin.HandlerFunc, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger(), corsMiddleware(allowedOrigins))

	// No authentication
	r.GET("/", platformhandler.Root)
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.OPTIONS("/healthz", platformhandler.Health)

	r.POST("/user/signup", h.Auth.Signup)
	r.POST("/user/login", h.Auth.Login)

	r.GET("/offers", h.Offers.List)
	r.GET("/offers/:id", h.Offers.Detail)

	r.POST("/payment", h.Payment.Pay)

	// Bearer token required
	auth := r.Group("/")
	auth.Use(authGate)
	{
		auth.POST("/offer/publish", h.Offers.Publish)
	}

	r.NoRoute(platformhandler.NotFound)
	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cors.New(cfg)
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cors.New(cfg)
		}
	}
	cfg.AllowOrigins = origins
	return cors.New(cfg)
}
