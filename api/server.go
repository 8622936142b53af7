package api

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/NickyGee44/TheGambler-sub000/api/controllers"
	"github.com/NickyGee44/TheGambler-sub000/api/transport"
	"github.com/NickyGee44/TheGambler-sub000/cache"
	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/NickyGee44/TheGambler-sub000/scoring"
	"github.com/NickyGee44/TheGambler-sub000/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Create storage
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	dynamoClient := dynamodb.NewFromConfig(cfg)

	playerStorage := &storage.DynamoPlayerStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNamePlayers,
	}
	teamStorage := &storage.DynamoTeamStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameTeams,
	}
	scoreStorage := &storage.DynamoHoleScoreStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameHoleScores,
	}
	matchStorage := &storage.DynamoMatchStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameMatches,
	}

	aggCache := s.buildCache()
	engine := scoring.NewEngine(playerStorage, teamStorage, scoreStorage, matchStorage, aggCache)

	//Register controllers
	scoreController := controllers.NewScoreController(engine)
	scoreController.RegisterRoutes(r)
	leaderboardController := controllers.NewLeaderboardController(engine)
	leaderboardController.RegisterRoutes(r)
	matchPlayController := controllers.NewMatchPlayController(engine)
	matchPlayController.RegisterRoutes(r)
	metaTeamController := controllers.NewTeamMetaController(teamStorage, playerStorage)
	metaTeamController.RegisterRoutes(r)
	metaPlayerController := controllers.NewPlayerMetaController(playerStorage)
	metaPlayerController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(engine, playerStorage, teamStorage)
	adminController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// buildCache wires redis when an address is configured, otherwise an
// in-process cache with the same TTL semantics.
func (s *Server) buildCache() cache.AggregateCache {
	ttl := time.Duration(s.config.TTLSeconds) * time.Second
	if s.config.RedisAddress == "" {
		logging.Log.Info("CACHE: no redis address configured, using in-memory cache")
		return cache.NewMemoryCache(ttl)
	}

	redisCache, err := cache.NewRedisCache(s.config.RedisAddress, ttl)
	if err != nil {
		logging.Log.Errorf("CACHE: redis unavailable at %s, falling back to memory: %v", s.config.RedisAddress, err)
		return cache.NewMemoryCache(ttl)
	}
	return redisCache
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on port 8080
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
