// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blooddonor/internal/delivery/http/middleware"
	"blooddonor/internal/delivery/http/router/handler"
	"blooddonor/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DonorHandler    *handler.DonorHandler
	HospitalHandler *handler.HospitalHandler
	DonationHandler *handler.DonationHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	donorHandler    *handler.DonorHandler
	hospitalHandler *handler.HospitalHandler
	donationHandler *handler.DonationHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		donorHandler:    params.DonorHandler,
		hospitalHandler: params.HospitalHandler,
		donationHandler: params.DonationHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Every admin route except login sits behind admin authentication; the
// legacy variants that skipped this are not reproduced.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	donorGroup := api.Group("/donor")
	{
		donorGroup.POST("/register", r.donorHandler.Register)
		donorGroup.POST("/login", r.donorHandler.Login)

		donorAuth := r.authMiddleware.Authenticate(entity.RoleDonor)
		donorGroup.GET("/profile", r.donorHandler.GetProfile, donorAuth)
		donorGroup.PUT("/profile", r.donorHandler.UpdateProfile, donorAuth)
	}

	hospitalGroup := api.Group("/hospital")
	{
		hospitalGroup.POST("/register", r.hospitalHandler.Register)
		hospitalGroup.POST("/login", r.hospitalHandler.Login)

		hospitalAuth := r.authMiddleware.Authenticate(entity.RoleHospital)
		hospitalGroup.GET("/profile", r.hospitalHandler.GetProfile, hospitalAuth)
		hospitalGroup.PUT("/profile", r.hospitalHandler.UpdateProfile, hospitalAuth)
	}

	hospitalAuth := r.authMiddleware.Authenticate(entity.RoleHospital)
	donorAuth := r.authMiddleware.Authenticate(entity.RoleDonor)

	api.GET("/blood-inventory", r.donationHandler.ListInventory, hospitalAuth)
	api.POST("/donations", r.donationHandler.RecordDonation, hospitalAuth)
	api.GET("/hospital/donations", r.donationHandler.ListHospitalDonations, hospitalAuth)
	api.GET("/donations", r.donorHandler.ListDonations, donorAuth)

	adminGroup := api.Group("/admin")
	{
		adminGroup.POST("/login", r.adminHandler.Login)

		adminAuth := r.authMiddleware.Authenticate(entity.RoleAdmin)
		adminGroup.GET("/donors", r.adminHandler.ListDonors, adminAuth)
		adminGroup.GET("/donors/:id", r.adminHandler.GetDonor, adminAuth)
		adminGroup.PUT("/donors/:id", r.adminHandler.UpdateDonor, adminAuth)
		adminGroup.DELETE("/donors/:id", r.adminHandler.DeleteDonor, adminAuth)
	}
}
