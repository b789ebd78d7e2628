package routes

import (
	"zoracom_vms/internal/adapter/http/handlers"
	"zoracom_vms/internal/adapter/http/middleware"
	"zoracom_vms/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathCategories   = "/categories"
	PathVendors      = "/vendors"
	PathListings     = "/listings"
	PathApplications = "/applications"
	PathUploads      = "/uploads"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	jwtSecret string,
	categoryHandler *handlers.CategoryHandler,
	vendorHandler *handlers.VendorHandler,
	listingHandler *handlers.ListingHandler,
	applicationHandler *handlers.ApplicationHandler,
	attachmentHandler *handlers.AttachmentHandler,
) {
	authenticated := middleware.Authenticate(jwtSecret)
	adminOnly := middleware.RequireRole(entities.UserRoleAdmin)

	// Registration is the only public write: the invite token is the
	// credential.
	rg.POST(PathVendors+"/register", vendorHandler.RegisterVendor)

	vendors := rg.Group(PathVendors, authenticated, adminOnly)
	{
		vendors.POST("/invite", vendorHandler.SendInvite)
		vendors.GET("", vendorHandler.ListVendors)
		vendors.GET("/:id", vendorHandler.GetVendor)
		vendors.PATCH("/:id/status", vendorHandler.ReviewVendorStatus)
	}

	categories := rg.Group(PathCategories, authenticated)
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id", categoryHandler.GetCategory)
		categories.POST("", adminOnly, categoryHandler.CreateCategory)
		categories.PUT("/:id", adminOnly, categoryHandler.UpdateCategory)
		categories.DELETE("/:id", adminOnly, categoryHandler.DeleteCategory)
	}

	listings := rg.Group(PathListings, authenticated)
	{
		listings.GET("", listingHandler.ListListings)
		listings.GET("/:id", listingHandler.GetListing)
		listings.POST("", adminOnly, listingHandler.CreateListing)
		listings.PUT("/:id", adminOnly, listingHandler.UpdateListing)
		listings.DELETE("/:id", adminOnly, listingHandler.DeleteListing)
		listings.PATCH("/:id/status", adminOnly, listingHandler.AdvanceListing)
		listings.PATCH("/:id/deactivate", adminOnly, listingHandler.DeactivateListing)

		listings.POST("/:id/applications", applicationHandler.Apply)
		listings.GET("/:id/applications", adminOnly, applicationHandler.ListApplications)
		listings.POST("/:id/reports", applicationHandler.Report)
	}

	applications := rg.Group(PathApplications, authenticated, adminOnly)
	{
		applications.POST("/review", applicationHandler.Review)
		applications.PATCH("/:id/deactivate", applicationHandler.DeactivateApplication)
	}

	uploads := rg.Group(PathUploads, authenticated)
	{
		uploads.GET("/:id", attachmentHandler.Download)
	}
}
