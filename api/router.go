// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"remaster/api/db"
	"remaster/api/middleware"
	"remaster/api/pkg/security"
	"remaster/api/service"
	"remaster/api/spotify"
	"remaster/api/store"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

type API struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Argon    *security.ArgonHash
	Sessions store.SessionStore
	Tokens   store.TokenStore
	Mailer   service.Sender
	Spotify  *spotify.Client
}

func NewRouter() (*API, error) {
	a := &API{
		Argon:   security.New(),
		Spotify: spotify.New(),
	}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = database

	redis, err := store.NewRedis()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis, %w", err)
	}

	a.Sessions = store.NewRedisSessions(redis, time.Duration(viper.GetInt("session.max_age"))*time.Second)
	a.Tokens = store.NewRedisTokens(redis)
	a.Mailer = service.NewMailer()

	makeLogger()
	a.setupRoutes()

	return a, nil
}

// setupRoutes builds the gin engine and attaches every endpoint. Split
// from NewRouter so the tests can wire an API with in-memory stores.
func (a *API) setupRoutes() {
	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors_origins"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v, ok := c.Get("userID"); ok {
					fields = append(fields, zap.Any("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	gate := middleware.NewSessionMiddleware(a.Sessions)
	authLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: viper.GetInt("ratelimit.rps"),
		Burst:             viper.GetInt("ratelimit.burst"),
	})
	bodyLimit := middleware.BodySizeLimiter(1 << 20)

	main := router.Group("/api", bodyLimit)
	{
		// GET /api/me			-> Returns the logged in user or null
		main.GET("/me", a.UserMe)

		// GET /api/users		-> Returns all users
		main.GET("/users", a.UserFetch)

		// DELETE /api/users/:id	-> Deletes a user by their ID
		main.DELETE("/users/:id", a.UserDelete)

		// GET /api/chords		-> Returns the chord shape catalog
		main.GET("/chords", cacheFor(60), a.Chords)
	}

	auth := main.Group("")
	{
		// POST /api/register		-> Registers a new user and starts a session
		auth.POST("/register", authLimit, a.UserRegister)

		// POST /api/login		-> Logs in a user and starts a session
		auth.POST("/login", authLimit, a.UserLogin)

		// POST /api/logout		-> Destroys the current session
		auth.POST("/logout", a.UserLogout)

		// POST /api/change-username	-> Changes the logged in user's username
		auth.POST("/change-username", gate, a.UserChangeUsername)

		// POST /api/change-email	-> Changes the logged in user's email
		auth.POST("/change-email", gate, a.UserChangeEmail)

		// POST /api/change-password	-> Changes the logged in user's password
		auth.POST("/change-password", gate, a.UserChangePassword)

		// POST /api/forgot-password	-> Sends a password reset mail
		auth.POST("/forgot-password", authLimit, a.UserForgotPassword)

		// POST /api/change-forgot-password -> Redeems a reset token
		auth.POST("/change-forgot-password", a.UserChangeForgotPassword)

		// POST /api/send-verify-email	-> Sends a fresh verification mail
		auth.POST("/send-verify-email", gate, a.UserSendVerifyEmail)

		// POST /api/verify-email	-> Redeems a verification token
		auth.POST("/verify-email", a.UserVerifyEmail)
	}

	remasters := main.Group("/remasters")
	{
		// GET /api/remasters		-> Returns all remasters
		remasters.GET("", a.RemasterFetchBulk)

		// GET /api/remasters/:id	-> Returns a single remaster or null
		remasters.GET("/:id", a.RemasterFetch)

		// POST /api/remasters		-> Creates a remaster for the logged in user
		remasters.POST("", gate, a.RemasterCreate)

		// PUT /api/remasters/:id	-> Renames a remaster (creator only)
		remasters.PUT("/:id", gate, a.RemasterUpdate)

		// DELETE /api/remasters/:id	-> Deletes a remaster (creator only)
		remasters.DELETE("/:id", gate, a.RemasterDelete)
	}

	sp := main.Group("/spotify")
	{
		// GET /api/spotify/search	-> Searches tracks, albums and artists
		sp.GET("/search", cacheFor(30), a.SpotifySearch)

		// GET /api/spotify/track/:id	-> Returns a track with its audio features
		sp.GET("/track/:id", cacheFor(30), a.SpotifyTrackAnalysis)
	}
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
