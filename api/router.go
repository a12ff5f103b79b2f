// Package api wires every endpoint to its use case
package api

import (
	"time"

	"homekeep/organizer-api/app/inventory"
	"homekeep/organizer-api/app/note"
	"homekeep/organizer-api/app/reminder"
	"homekeep/organizer-api/app/root"
	"homekeep/organizer-api/app/tag"
	"homekeep/organizer-api/app/user"
	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/pkg/middleware"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	Deps   *internal.Deps
	Router *gin.Engine
}

type handler func(c *gin.Context, d *internal.Deps)

// New builds the router over an already wired dependency bundle, so
// tests can swap in their own stores and mailer.
func New(d *internal.Deps) *API {
	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionHeader},
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

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	auth := middleware.NewSessionMiddleware(d.Sessions)
	limited := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: 10,
		Burst:             50,
	})

	wrap := func(h handler) gin.HandlerFunc {
		return func(c *gin.Context) {
			h(c, d)
		}
	}

	main := router.Group("/api", middleware.BodySizeLimiter(1<<20))
	{
		// HEAD /api/heartbeat		-> Used to check if the server is alive
		main.HEAD("/heartbeat", wrap(root.Heartbeat))

		// GET /api/validate		-> Validates a session token
		main.GET("/validate", auth, wrap(root.Validate))
	}

	users := main.Group("/users")
	{
		// POST /api/users/register	-> Registers a new user and mails a verification link
		users.POST("/register", limited, wrap(user.Register))

		// GET /api/users/verify	-> Consumes a verification token and logs the user in
		users.GET("/verify", wrap(user.Verify))

		// POST /api/users/login	-> Logs in a user and returns a session token
		users.POST("/login", limited, wrap(user.Login))

		// POST /api/users/logout	-> Revokes the current session
		users.POST("/logout", auth, wrap(user.Logout))

		// GET /api/users		-> Returns the authenticated user's account
		users.GET("", auth, wrap(user.Fetch))

		// PATCH /api/users		-> Changes the password
		users.PATCH("", auth, wrap(user.ChangePassword))

		// PUT /api/users		-> Changes personal information
		users.PUT("", auth, wrap(user.ChangeInfo))

		// DELETE /api/users		-> Soft-deletes the account
		users.DELETE("", auth, wrap(user.Delete))
	}

	items := main.Group("/inventory", auth)
	{
		items.POST("", wrap(inventory.Create))
		items.GET("", wrap(inventory.FetchBulk))
		items.GET("/:id", wrap(inventory.Fetch))
		items.PUT("/:id", wrap(inventory.Edit))
		items.DELETE("/:id", wrap(inventory.Delete))
	}

	notes := main.Group("/notes", auth)
	{
		notes.POST("", wrap(note.Create))
		notes.GET("", wrap(note.FetchBulk))
		notes.GET("/filter_by_tag", wrap(note.FilterByTag))
		notes.GET("/:id", wrap(note.Fetch))
		notes.PUT("/:id", wrap(note.Edit))
		notes.DELETE("/:id", wrap(note.Delete))
		notes.POST("/:id/tags", wrap(note.AddTags))
		notes.DELETE("/:id/tags/:tagID", wrap(note.RemoveTag))
	}

	tags := main.Group("/tags", auth)
	{
		tags.POST("", wrap(tag.Create))
		tags.GET("", wrap(tag.FetchBulk))
		tags.GET("/:id", wrap(tag.Fetch))
		tags.PUT("/:id", wrap(tag.Edit))
		tags.DELETE("/:id", wrap(tag.Delete))
	}

	reminders := main.Group("/reminder", auth)
	{
		reminders.POST("", wrap(reminder.Create))
		reminders.GET("", wrap(reminder.FetchBulk))
		reminders.GET("/:id", wrap(reminder.Fetch))
		reminders.PUT("/:id", wrap(reminder.Edit))
		reminders.DELETE("/:id", wrap(reminder.Delete))
	}

	return &API{
		Deps:   d,
		Router: router,
	}
}

// MakeLogger replaces the global zap logger with a console config
// honoring app.log_level
func MakeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	if level, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
