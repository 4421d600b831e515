package bootstrap

import (
	"context"
	"log"

	"abcresearch-be/internal/config"
	"abcresearch-be/internal/controller"
	"abcresearch-be/internal/handler"
	"abcresearch-be/internal/pkg/logger"
	"abcresearch-be/internal/pkg/mailer"
	"abcresearch-be/internal/repository/unitofwork"
	"abcresearch-be/internal/service"
	"abcresearch-be/internal/websocket"
	"abcresearch-be/pkg/discovery"
	"abcresearch-be/pkg/edgar"
	"abcresearch-be/pkg/events"
	"abcresearch-be/pkg/llm/factory"
	"abcresearch-be/pkg/marker"
	pktNats "abcresearch-be/pkg/nats"
	"abcresearch-be/pkg/newswire"
	"abcresearch-be/pkg/pubmed"
	"abcresearch-be/pkg/rss"
	"abcresearch-be/pkg/strategy"
	"abcresearch-be/pkg/trials"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	OAuthController      controller.IOAuthController
	SearchController     controller.ISearchController
	ProjectController    controller.IProjectController
	WatchlistController  controller.IWatchlistController
	ExtractionController controller.IExtractionController
	AlertController      controller.IAlertController

	// Background services (exposed for main.go to run)
	ExtractionService service.IExtractionService
	WatcherService    service.IWatcherService

	// WebSockets
	AlertHandler *handler.AlertHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

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

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/alerts.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Discovery pipeline
	var apiKey string
	switch cfg.Ai.StrategyProvider {
	case "gemini":
		apiKey = cfg.Keys.GoogleGemini
	default:
		apiKey = cfg.Keys.Anthropic
	}
	llmProvider, err := factory.NewLLMProvider(cfg.Ai.StrategyProvider, apiKey, cfg.Ai.StrategyModel, "")
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using strategy LLM: %s (%s)", cfg.Ai.StrategyProvider, cfg.Ai.StrategyModel)

	strategyGen := strategy.NewGenerator(llmProvider, sysLogger)

	trialsClient := trials.NewClient("")
	pubmedClient := pubmed.NewClient("", cfg.Keys.NCBI, pubmed.NewLimiter(cfg.Keys.NCBI != ""))
	newswireClient := newswire.NewClient(cfg.Search.NewswireFeedURL)
	edgarClient := edgar.NewClient("", cfg.Keys.SECUserAgent)

	orchestrator := discovery.NewOrchestrator(
		strategyGen,
		trialsClient,
		pubmedClient,
		newswireClient,
		edgarClient,
		discovery.Limits{
			TrialPageSize:   cfg.Search.TrialPageSize,
			PaperMaxResults: cfg.Search.PaperMaxResults,
			NewsMaxResults:  cfg.Search.NewsMaxResults,
			FilingsMax:      cfg.Search.FilingsMax,
		},
		sysLogger,
	)

	// 4. Services
	authService := service.NewAuthService(uowFactory, emailService, sysLogger)
	oauthService := service.NewOAuthService(uowFactory, sysLogger)
	searchService := service.NewSearchService(orchestrator, uowFactory, rdb, cfg.Search.CacheTTL, sysLogger)
	projectService := service.NewProjectService(uowFactory)
	watchlistService := service.NewWatchlistService(uowFactory)

	markerClient := marker.NewClient("", cfg.Keys.Datalab)
	extractionService := service.NewExtractionService(uowFactory, pubSub, markerClient, "uploads/extractions", sysLogger)

	alertService := service.NewAlertService(uowFactory, wsHub, emailService, sysLogger)
	if natsSub != nil {
		if err := natsSub.Subscribe("events."+events.TypeWatchItemNew, "alert-service", alertService.HandleWatchItemEvent); err != nil {
			log.Printf("[WARN] Failed to subscribe alert service: %v", err)
		}
	}

	watcherService := service.NewWatcherService(uowFactory, rss.NewFetcher(), natsPub, cfg.Watcher.Interval, sysLogger)
	if cfg.Watcher.Enabled {
		watcherService.Start(context.Background())
	}

	alertHandler := handler.NewAlertHandler(wsHub, wsLogger)

	// 5. Controllers
	return &Container{
		AlertHandler: alertHandler,
		WebSocketHub: wsHub,

		AuthController:       controller.NewAuthController(authService),
		OAuthController:      controller.NewOAuthController(oauthService),
		SearchController:     controller.NewSearchController(searchService),
		ProjectController:    controller.NewProjectController(projectService),
		WatchlistController:  controller.NewWatchlistController(watchlistService),
		ExtractionController: controller.NewExtractionController(extractionService),
		AlertController:      controller.NewAlertController(alertService),

		ExtractionService: extractionService,
		WatcherService:    watcherService,
	}
}
