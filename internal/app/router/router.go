package router

import (
	"github.com/Cysparks-Inc/lendy-sub000/configs"
	"github.com/Cysparks-Inc/lendy-sub000/internal/app/handlers"
	"github.com/Cysparks-Inc/lendy-sub000/internal/app/middleware"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/notification"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/pubsub"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/store/repository"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/kafka/producer"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/services"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/store"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/utils/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

func SetupRouter(workerPool *worker.WorkerPool, redisClient *redis.Client, pubsubPublisher *pubsub.PubSubPublisher) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	redisAdapter := repository.NewRedisStoreAdapter(redisClient)

	// Stores
	memberRepo := store.NewMemberRepository()
	loanRepo := store.NewLoanRepository()
	installmentRepo := store.NewInstallmentRepository()
	paymentRepo := store.NewPaymentRepository()
	incrementLevelRepo := store.NewIncrementLevelRepository()
	transactionInProgressRepo := store.NewTransactionInProgressRepository()

	// Collaborators
	ledgerPublisher := producer.NewKafkaService()
	notificationService := notification.NewNotificationService(pubsubPublisher)
	reconciliationService := notification.NewReconciliationService(pubsubPublisher)

	// Engine services
	scheduleService := services.NewScheduleService()
	incrementPolicyService := services.NewIncrementPolicyService(memberRepo, loanRepo, incrementLevelRepo)
	lifecycleService := services.NewLoanLifecycleService(workerPool, memberRepo, loanRepo, incrementPolicyService, scheduleService, transactionInProgressRepo, ledgerPublisher, notificationService)
	paymentService := services.NewPaymentDistributionService(workerPool, memberRepo, loanRepo, installmentRepo, paymentRepo, redisAdapter, ledgerPublisher, notificationService, reconciliationService)
	overdueService := services.NewOverdueReportService(loanRepo, installmentRepo, consts.RiskThresholdsFromConfig())

	ledgerRetryService := producer.NewLedgerRetryService(paymentRepo)

	// Handlers
	loanHandler := handlers.NewLoanHandler(lifecycleService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	overdueReportHandler := handlers.NewOverdueReportHandler(overdueService)
	incrementHandler := handlers.NewIncrementHandler(incrementPolicyService)
	ledgerRetryHandler := handlers.NewLedgerRetryHandler(ledgerRetryService)

	r.POST("/IntegrationServices/Lendy/Loans", loanHandler.CreateLoan)
	r.POST("/IntegrationServices/Lendy/Loans/:LoanId/Approve", loanHandler.ApproveLoan)
	r.POST("/IntegrationServices/Lendy/Loans/:LoanId/Reject", loanHandler.RejectLoan)
	r.POST("/IntegrationServices/Lendy/Loans/:LoanId/WriteOff", loanHandler.WriteOffLoan)
	r.POST("/IntegrationServices/Lendy/Payments", paymentHandler.RecordPayment)
	r.GET("/IntegrationServices/Lendy/OverdueReport", overdueReportHandler.OverdueReport)
	r.GET("/IntegrationServices/Lendy/Members/:MemberId/NextIncrement", incrementHandler.NextIncrement)
	r.GET("/IntegrationServices/Lendy/LedgerRetry", ledgerRetryHandler.RetryLedgerEvents)

	r.GET("/IntegrationServices/Lendy/Test", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": "Health Check"})
	})

	return r
}
