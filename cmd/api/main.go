package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/sparkmeet/sparkmeet-backend/internal/cache"
	"github.com/sparkmeet/sparkmeet-backend/internal/config"
	"github.com/sparkmeet/sparkmeet-backend/internal/handler"
	"github.com/sparkmeet/sparkmeet-backend/internal/middleware"
	"github.com/sparkmeet/sparkmeet-backend/internal/migration"
	"github.com/sparkmeet/sparkmeet-backend/internal/repository"
	"github.com/sparkmeet/sparkmeet-backend/internal/routes"
	"github.com/sparkmeet/sparkmeet-backend/internal/service"
	"github.com/sparkmeet/sparkmeet-backend/pkg/jwt"
	pkglogger "github.com/sparkmeet/sparkmeet-backend/pkg/logger"
	pkgredis "github.com/sparkmeet/sparkmeet-backend/pkg/redis"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.GetLogger().Info().
		Str("env", env).
		Strs("env_files", dotenvFiles).
		Msg("starting")

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	pkglogger.GetLogger().Info().Msg("connected to MySQL")

	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("Redis unavailable, continuing without cache")
		redisClient = nil
	} else {
		pkglogger.GetLogger().Info().Msg("connected to Redis")
	}
	unreadCache := cache.NewUnreadCounter(redisClient)

	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiresIn,
		cfg.JWT.RefreshIn,
	)

	memberRepo := repository.NewMemberRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	authService := service.NewAuthService(memberRepo, jwtManager)
	likeService := service.NewLikeService(likeRepo, memberRepo)
	messageService := service.NewMessageService(messageRepo, memberRepo, unreadCache)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())

	corsConfig := cors.Config{
		AllowOrigins:     []string{cfg.CORS.AllowOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Pagination-CurrentPage", "Pagination-PageSize", "Pagination-TotalCount", "Pagination-TotalPages"},
		AllowCredentials: true,
	}
	router.Use(cors.New(corsConfig))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAccount(router, handler.NewAccountHandler(authService))
	routes.SetupLikes(router, handler.NewLikeHandler(likeService), jwtManager)
	routes.SetupMessages(router, handler.NewMessageHandler(messageService), jwtManager)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.GetLogger().Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
