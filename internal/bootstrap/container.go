package bootstrap

import (
	"context"
	"log"

	"stylehub-be/internal/config"
	"stylehub-be/internal/controller"
	"stylehub-be/internal/handler"
	"stylehub-be/internal/pkg/logger"
	"stylehub-be/internal/pkg/mailer"
	"stylehub-be/internal/repository/implementation"
	"stylehub-be/internal/repository/unitofwork"
	"stylehub-be/internal/service"
	"stylehub-be/internal/websocket"
	"stylehub-be/pkg/admin/cancellation"
	"stylehub-be/pkg/admin/dashboard"
	adminEvents "stylehub-be/pkg/admin/events"
	"stylehub-be/pkg/admin/policy"
	"stylehub-be/pkg/admin/user"
	"stylehub-be/pkg/search"

	pktNats "stylehub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	UserController         controller.IUserController
	CatalogController      controller.ICatalogController
	CartController         controller.ICartController
	PaymentController      controller.IPaymentController
	OrderController        controller.IOrderController
	CancellationController controller.ICancellationController
	AdminController        controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Domain Components
	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)
	policyManager := policy.NewManager(uowFactory, sysLogger)
	userManager := user.NewManager(sysLogger)
	cancellationProcessor := cancellation.NewProcessor(
		sysLogger,
		adminEventPublisher,
		emailService,
		policyManager,
		cfg.Refund.FlatOverridePercent,
	)
	dashboardAggregator := dashboard.NewAggregator(sysLogger)
	suggester := search.NewSuggester(uowFactory)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.OrderEventsTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.OrderEventsTopic,
		uowFactory,
		emailService,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, adminEventPublisher)
	userService := service.NewUserService(uowFactory)
	catalogService := service.NewCatalogService(uowFactory, suggester)
	cartService := service.NewCartService(uowFactory)
	paymentService := service.NewPaymentService(uowFactory, cfg, sysLogger, publisherService, adminEventPublisher)
	orderService := service.NewOrderService(uowFactory)
	cancellationService := service.NewCancellationService(uowFactory, policyManager, adminEventPublisher)

	adminService := service.NewAdminService(
		uowFactory,
		sysLogger,
		userManager,
		cancellationProcessor,
		policyManager,
		dashboardAggregator,
	)

	// 5. Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)

	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 6. Controllers
	return &Container{
		NotificationHandler:    notifHandler,
		WebSocketHub:           wsHub,
		AuthController:         controller.NewAuthController(authService),
		UserController:         controller.NewUserController(userService),
		CatalogController:      controller.NewCatalogController(catalogService),
		CartController:         controller.NewCartController(cartService),
		PaymentController:      controller.NewPaymentController(paymentService),
		OrderController:        controller.NewOrderController(orderService, cancellationService),
		CancellationController: controller.NewCancellationController(cancellationService),
		AdminController:        controller.NewAdminController(adminService, authService),

		ConsumerService: consumerService,
	}
}
