package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-social-content/internal/handlers"
	"github.com/sbilibin2017/gw-social-content/internal/jwt"
	"github.com/sbilibin2017/gw-social-content/internal/logger"
	"github.com/sbilibin2017/gw-social-content/internal/middlewares"
	"github.com/sbilibin2017/gw-social-content/internal/repositories"
	"github.com/sbilibin2017/gw-social-content/internal/services"
	"github.com/sbilibin2017/gw-social-content/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	RateLimitRequests     int
	RateLimitWindowSecond int

	KafkaBrokers    []string
	KafkaAuditTopic string

	JWTSecretKey string
	JWTExpSecond int
}

// @title gw-social-content API
// @version 1.0.0
// @description Posts, comments and likes with ownership rules and soft delete
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\n", buildVersion)
	fmt.Printf("Commit: %s\n", buildCommit)
	fmt.Printf("Build: %s\n", buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, rate limit, logging, and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Rate limit config
	if cfg.RateLimitRequests, err = getInt("RATE_LIMIT_REQUESTS", "30"); err != nil {
		return
	}
	if cfg.RateLimitWindowSecond, err = getInt("RATE_LIMIT_WINDOW_SECOND", "60"); err != nil {
		return
	}

	// Kafka config. No brokers disables the audit trail.
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaAuditTopic = getEnv("KAFKA_AUDIT_TOPIC", "content-audit")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		// The rate limiter fails open, so a missing Redis only disables limiting.
		logger.Log.Errorw("Redis ping failed", "error", err)
	}
	defer rdb.Close()

	// Audit trail
	var auditor *services.Auditor
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaAuditTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
		defer kw.Close()
		auditor = services.NewAuditor(kw)
		logger.Log.Infof("Publishing audit events to %s on %v", cfg.KafkaAuditTopic, cfg.KafkaBrokers)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	txManager := storage.NewTxManager(db)
	userRepo := repositories.NewUserRepository(db, storage.GetTxFromContext)
	postRepo := repositories.NewPostRepository(db, storage.GetTxFromContext)
	commentRepo := repositories.NewCommentRepository(db, storage.GetTxFromContext)
	likeRepo := repositories.NewLikeRepository(db, storage.GetTxFromContext)
	rateLimitRepo := repositories.NewRateLimitRepository(rdb)

	// Initialize services
	userService := services.NewUserService(txManager, userRepo, auditor)
	app := application{
		auth:     services.NewAuthService(userService, tokens),
		users:    userService,
		posts:    services.NewPostService(txManager, postRepo, auditor),
		comments: services.NewCommentService(txManager, commentRepo, postRepo, auditor),
		likes:    services.NewLikeService(txManager, likeRepo, postRepo, auditor),
		render:   services.NewAggregator(userRepo, likeRepo, commentRepo),
		tokens:   tokens,
		limiter:  rateLimitRepo,

		rateLimitRequests: cfg.RateLimitRequests,
		rateLimitWindow:   time.Duration(cfg.RateLimitWindowSecond) * time.Second,
		swaggerURL:        fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(app),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// application bundles what the router needs.
type application struct {
	auth     *services.AuthService
	users    *services.UserService
	posts    *services.PostService
	comments *services.CommentService
	likes    *services.LikeService
	render   *services.Aggregator
	tokens   middlewares.Tokener
	limiter  middlewares.Limiter

	rateLimitRequests int
	rateLimitWindow   time.Duration
	swaggerURL        string
}

// newRouter mounts every route. Reads are public; writes require a bearer
// token and pass through the rate limiter.
func newRouter(app application) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	authMiddleware := middlewares.AuthMiddleware(app.tokens, app.users)
	rateLimit := middlewares.RateLimitMiddleware(app.limiter, app.rateLimitRequests, app.rateLimitWindow)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(app.auth))
		r.Post("/auth/login", handlers.NewLoginHandler(app.auth))
		r.Get("/users/{userID}/posts", handlers.NewListUserPostsHandler(app.posts, app.render))
		r.Get("/users/{userID}/comments", handlers.NewListUserCommentsHandler(app.comments, app.render))
		r.Get("/posts", handlers.NewFeedHandler(app.posts, app.render))
		r.Get("/posts/{postID}", handlers.NewGetPostHandler(app.posts, app.render))
		r.Get("/posts/{postID}/comments", handlers.NewListPostCommentsHandler(app.comments, app.render))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/users/me", handlers.NewGetMeHandler(app.users))

			r.Group(func(r chi.Router) {
				r.Use(rateLimit)
				r.Patch("/users/me", handlers.NewUpdateMeHandler(app.users))
				r.Delete("/users/me", handlers.NewDeleteMeHandler(app.users))
				r.Delete("/users/me/purge", handlers.NewPurgeMeHandler(app.users))

				r.Post("/posts", handlers.NewCreatePostHandler(app.posts, app.render))
				r.Put("/posts/{postID}", handlers.NewUpdatePostHandler(app.posts, app.render))
				r.Delete("/posts/{postID}", handlers.NewDeletePostHandler(app.posts))

				r.Post("/posts/{postID}/comments", handlers.NewCreateCommentHandler(app.comments, app.render))
				r.Put("/comments/{commentID}", handlers.NewUpdateCommentHandler(app.comments, app.render))
				r.Delete("/comments/{commentID}", handlers.NewDeleteCommentHandler(app.comments))

				r.Post("/posts/{postID}/like", handlers.NewLikeHandler(app.likes))
				r.Delete("/posts/{postID}/like", handlers.NewUnlikeHandler(app.likes))
				r.Post("/posts/{postID}/like/toggle", handlers.NewToggleLikeHandler(app.likes))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(app.swaggerURL),
	))

	return r
}
