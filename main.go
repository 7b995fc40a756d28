package main

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/beka-birhanu/mazeprint-api/api"
	api_i "github.com/beka-birhanu/mazeprint-api/api/i"
	"github.com/beka-birhanu/mazeprint-api/api/identity"
	"github.com/beka-birhanu/mazeprint-api/api/printing"
	"github.com/beka-birhanu/mazeprint-api/config"
	"github.com/beka-birhanu/mazeprint-api/infrastruture/canvas"
	"github.com/beka-birhanu/mazeprint-api/infrastruture/export"
	"github.com/beka-birhanu/mazeprint-api/infrastruture/repo"
	"github.com/beka-birhanu/mazeprint-api/infrastruture/sortedstorage"
	"github.com/beka-birhanu/mazeprint-api/infrastruture/token"
	"github.com/beka-birhanu/mazeprint-api/logger"
	"github.com/beka-birhanu/mazeprint-api/service"
	"github.com/beka-birhanu/mazeprint-api/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	userRepo        i.UserRepo
	printJobRepo    i.PrintJobRepo
	jobQueue        i.SortedQueue
	pageExporter    i.PageExporter
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	printService    *service.Printing
	authController  api_i.Controller
	printController api_i.Controller
	router          *api.Router
	appLogger       i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	printJobRepo = repo.NewPrintJobRepo(client, config.Envs.DBName, "print_jobs")
	appLogger.Info("Repositories initialized")
}

func initJobQueue() {
	var err error
	jobQueue, err = sortedstorage.NewRedisSortedQueue(redisClient, config.Envs.QueueTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating job queue: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Job queue initialized")
}

func initPageExporter() {
	var err error
	pageExporter, err = export.NewJPEGExporter(config.Envs.OutputDir, config.Envs.JPEGQuality)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating page exporter: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Page exporter initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initPrintService() {
	printLogger, err := logger.New("PRINT-WORKER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating print worker logger: %v", err))
		os.Exit(1)
	}

	printService, err = service.NewPrinting(&service.PrintingConfig{
		Jobs:      printJobRepo,
		Queue:     jobQueue,
		Exporter:  pageExporter,
		NewCanvas: canvas.NewFactory(color.White),
		Logger:    printLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating print service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Print service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)
	printController = printing.NewPrintServer(printService, printing.Defaults{
		WallWidthMM:  config.Envs.WallWidthMM,
		PathWidthMM:  config.Envs.PathWidthMM,
		DPI:          config.Envs.PrintDPI,
		PageWidthCM:  config.Envs.PageWidthCM,
		PageHeightCM: config.Envs.PageHeightCM,
	})
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, printController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initRepos(mongoClient)
	initJobQueue()
	initPageExporter()
	initJWTTokenizer()
	initAuthService()
	initPrintService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run the rendering worker alongside the HTTP server.
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go printService.Start(workerCtx)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}

	// Allow time for cleanup operations (TODO: use WaitGroups instead)
	time.Sleep(2 * time.Second)
}
