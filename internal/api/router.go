package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/ashuestate/realty-api/docs"
	"github.com/ashuestate/realty-api/internal/api/handler"
	"github.com/ashuestate/realty-api/internal/api/middleware"
	"github.com/ashuestate/realty-api/internal/core/ports"
	"github.com/ashuestate/realty-api/internal/core/service"
	mongodb "github.com/ashuestate/realty-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ashuestate/realty-api/internal/infrastructure/db/redis"
	"github.com/ashuestate/realty-api/internal/token"
)

// Options carries the deployment-dependent routing settings.
type Options struct {
	// Production selects the production cookie policy (Secure, SameSite=None).
	Production bool
	// CORSOrigins is the allow-list of browser origins; credentials are
	// always allowed so the session cookie can travel.
	CORSOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	tokens *token.Manager,
	payments ports.PaymentProvider,
	activity ports.ActivityRecorder,
	opts Options,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     opts.CORSOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("realty"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	savedRepo := mongodb.NewSavedPostRepository(db)
	denylist := redisdb.NewDenylist(rdb)

	authService := service.NewAuthService(userRepo, tokens, denylist, activity, log)
	postService := service.NewPostService(postRepo, userRepo, activity, log)
	userService := service.NewUserService(userRepo, postRepo, savedRepo, activity, log)

	cookies := handler.CookiePolicy{
		Production: opts.Production,
		MaxAge:     int(tokens.TTL().Seconds()),
	}

	authHandler := handler.NewAuthHandler(authService, cookies)
	postHandler := handler.NewPostHandler(postService)
	userHandler := handler.NewUserHandler(userService)
	verifyHandler := handler.NewVerifyHandler()
	paymentHandler := handler.NewPaymentHandler(payments, log)

	authRequired := middleware.Auth(tokens, denylist, log)
	adminRequired := middleware.RequireAdmin()

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/verify", authHandler.Verify, authRequired)

	// --- Listing routes ---
	posts := e.Group("/api/posts")
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create, authRequired)
	posts.PUT("/:id", postHandler.Update, authRequired)
	posts.DELETE("/:id", postHandler.Delete, authRequired)

	// --- User routes ---
	users := e.Group("/api/users", authRequired)
	users.GET("", userHandler.List, adminRequired)
	users.GET("/profile-posts", userHandler.ProfilePosts)
	users.POST("/save", userHandler.SavePost)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Verify probes ---
	verify := e.Group("/api/verify", authRequired)
	verify.GET("/user", verifyHandler.LoggedIn)
	verify.GET("/admin", verifyHandler.Admin, adminRequired)

	// --- Payments ---
	e.POST("/api/payment/create-payment-intent", paymentHandler.CreateIntent)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
