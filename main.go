package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/maze-editor/api"
	blueprintapi "github.com/beka-birhanu/maze-editor/api/blueprint"
	api_i "github.com/beka-birhanu/maze-editor/api/i"
	"github.com/beka-birhanu/maze-editor/api/identity"
	"github.com/beka-birhanu/maze-editor/config"
	"github.com/beka-birhanu/maze-editor/infrastruture/cache"
	"github.com/beka-birhanu/maze-editor/infrastruture/lock"
	"github.com/beka-birhanu/maze-editor/infrastruture/repo"
	"github.com/beka-birhanu/maze-editor/infrastruture/token"
	"github.com/beka-birhanu/maze-editor/logger"
	"github.com/beka-birhanu/maze-editor/service"
	"github.com/beka-birhanu/maze-editor/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	cachePrefix = "maze-editor"
)

// Global variables for dependencies
var (
	mongoClient         *mongo.Client
	redisClient         *redis.Client
	authorRepo          i.AuthorRepo
	blueprintRepo       i.BlueprintRepo
	blueprintCache      i.BlueprintCache
	editLocker          i.Locker
	editor              i.Editor
	blueprintController api_i.Controller
	jwtTokenizer        i.Tokenizer
	authService         i.Authenticator
	authController      api_i.Controller
	router              *api.Router
	appLogger           i.Logger
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
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	authorRepo = repo.NewAuthorRepo(client, config.Envs.DBName, "authors")
	blueprintRepo = repo.NewBlueprintRepo(client, config.Envs.DBName, "blueprints")
	appLogger.Info("Repositories initialized")
}

func initCacheAndLocker(client *redis.Client) {
	blueprintCache = cache.NewRedisBlueprintCache(client, cachePrefix, config.Envs.CacheTTLSeconds)
	editLocker = lock.NewRedisLocker(client, config.Envs.LockTries)
	appLogger.Info("Blueprint cache and edit locker initialized")
}

func initEditor() {
	editorLogger, err := logger.New("EDITOR", logger.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating editor logger: %v", err))
		os.Exit(1)
	}

	editor, err = service.NewEditor(&service.EditorConfig{
		Repo:   blueprintRepo,
		Cache:  blueprintCache,
		Locker: editLocker,
		Logger: editorLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating editor service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Editor service initialized")
}

func initBlueprintController() {
	blueprintController = blueprintapi.NewBlueprintController(editor)
	appLogger.Info("Blueprint controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(authorRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		GinMode:                 config.Envs.GinMode,
		Controllers:             []api_i.Controller{authController, blueprintController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var err error
	appLogger, err = logger.New("APP", logger.ColorGreen, os.Stdout)
	if err != nil {
		log.Fatalf("Creating app logger: %v", err)
	}

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initRepos(mongoClient)
	initCacheAndLocker(redisClient)
	initEditor()
	initBlueprintController()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
