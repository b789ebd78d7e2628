package routes

import (
	"context"
	"log"
	"strconv"

	_ "zoracom_vms/docs" // This will be auto-generated
	"zoracom_vms/internal/adapter/http/handlers"
	repository2 "zoracom_vms/internal/adapter/persistence/repository"
	"zoracom_vms/internal/infrastructure/config"
	"zoracom_vms/internal/infrastructure/database"
	"zoracom_vms/internal/infrastructure/mail"
	"zoracom_vms/internal/infrastructure/security"
	"zoracom_vms/internal/usecase"
	"zoracom_vms/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err.Error())
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()

	categoryRepo := repository2.NewCategoryDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	vendorRepo := repository2.NewVendorDynamoRepository(ddb)
	inviteRepo := repository2.NewInviteDynamoRepository(ddb)
	listingRepo := repository2.NewListingDynamoRepository(ddb)
	applicationRepo := repository2.NewApplicationDynamoRepository(ddb)
	reportRepo := repository2.NewListingReportDynamoRepository(ddb)
	attachmentRepo := repository2.NewAttachmentDynamoRepository(ddb)

	var mailer interfaces.IMailer
	mailer, err := mail.NewSESMailer(context.Background(), cfg.MailFrom, cfg.MailMock)
	if err != nil {
		log.Fatalf("Failed to configure the mail gateway: %v", err.Error())
	}

	inviteUseCase := usecase.NewInviteUseCase(inviteRepo, vendorRepo, mailer, cfg.ClientBaseURL)
	vendorUseCase := usecase.NewVendorUseCase(vendorRepo, userRepo, inviteUseCase, security.NewBcryptHasher())
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, listingRepo)
	listingUseCase := usecase.NewListingUseCase(listingRepo, categoryRepo, attachmentRepo)
	applicationUseCase := usecase.NewApplicationUseCase(applicationRepo, listingRepo, vendorRepo, reportRepo, attachmentRepo, mailer)
	attachmentUseCase := usecase.NewAttachmentUseCase(attachmentRepo)

	categoryHandler := handlers.NewCategoryHandler(categoryUseCase)
	vendorHandler := handlers.NewVendorHandler(vendorUseCase, inviteUseCase, attachmentUseCase)
	listingHandler := handlers.NewListingHandler(listingUseCase, attachmentUseCase)
	applicationHandler := handlers.NewApplicationHandler(applicationUseCase, attachmentUseCase)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, cfg.JWTSecret, categoryHandler, vendorHandler, listingHandler, applicationHandler, attachmentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
