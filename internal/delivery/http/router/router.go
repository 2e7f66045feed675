// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mindset/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MentorHandler  *handler.MentorHandler
	PaymentHandler *handler.PaymentHandler
	UserHandler    *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	mentorHandler  *handler.MentorHandler
	paymentHandler *handler.PaymentHandler
	userHandler    *handler.UserHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		mentorHandler:  params.MentorHandler,
		paymentHandler: params.PaymentHandler,
		userHandler:    params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.POST("/mentor", r.mentorHandler.Chat)
		api.POST("/mentor/advance", r.mentorHandler.Advance)
		api.POST("/strategies", r.mentorHandler.WealthStrategies)

		api.POST("/payments/callback", r.paymentHandler.RecordPayment)

		api.POST("/users", r.userHandler.Signup)
		api.GET("/users/:id", r.userHandler.GetProfile)
		api.GET("/users/:id/referrals", r.userHandler.ReferralSummary)
		api.GET("/users/:id/referral-qr", r.userHandler.ReferralQR)
	}
}
