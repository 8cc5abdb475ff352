package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/Rehan72/sol-sub000/docs" // swag generated
	"github.com/Rehan72/sol-sub000/internal/adapter/http/handlers"
	"github.com/Rehan72/sol-sub000/internal/adapter/http/middleware"
	"github.com/Rehan72/sol-sub000/internal/adapter/persistence/repository"
	"github.com/Rehan72/sol-sub000/internal/config"
	"github.com/Rehan72/sol-sub000/internal/infrastructure/audit"
	"github.com/Rehan72/sol-sub000/internal/infrastructure/database"
	"github.com/Rehan72/sol-sub000/internal/infrastructure/locks"
	"github.com/Rehan72/sol-sub000/internal/infrastructure/payments"
	"github.com/Rehan72/sol-sub000/internal/infrastructure/teams"
	"github.com/Rehan72/sol-sub000/internal/usecase"
	"github.com/Rehan72/sol-sub000/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err = router.Run(":" + strconv.Itoa(cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	quotationRepo := repository.NewQuotationDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	stepRepo := repository.NewWorkflowStepDynamoRepository(ddb)

	auditLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize audit logger: %v", err)
	}
	auditSink := audit.NewDynamoAuditSink(ddb, auditLogger)

	locker := locks.NewLockerFromEnv()
	teamService := teams.NewTeamServiceFromEnv()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	workflowUseCase := usecase.NewWorkflowUseCase(stepRepo, customerRepo, locker, auditSink)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, customerRepo, auditSink)
	milestoneUseCase := usecase.NewMilestoneUseCase(paymentRepo, quotationRepo, customerRepo, paymentGateway, locker, auditSink, cfg.Milestones)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, quotationRepo, paymentRepo, teamService, workflowUseCase, auditSink, cfg.Milestones)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	milestoneHandler := handlers.NewMilestoneHandler(milestoneUseCase)
	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Everything below requires a resolved actor.
	v1.Use(middleware.ActorAuth(cfg.Auth))
	addLifecycleRoutes(v1, customerHandler, quotationHandler, milestoneHandler, workflowHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
