package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"github.com/Modular-CV/backend/internal/auth"
	"github.com/Modular-CV/backend/internal/config"
	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/handler"
	"github.com/Modular-CV/backend/internal/metrics"
	"github.com/Modular-CV/backend/internal/validation"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Root    *handler.RootHandler
	Account *handler.AccountHandler
	Session *handler.SessionHandler
	Section *handler.SectionHandler
	Entry   *handler.EntryHandler
	Resume  *handler.ResumeHandler
	Profile *handler.ProfileHandler
	Link    *handler.LinkHandler
}

// Deps carries the collaborators the middleware stack needs.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Tokens   *auth.JWTService
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, deps Deps, h Handlers) {
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(deps.Logger)
	e.Validator = &CustomValidator{validator: validation.New()}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit("1M"))
	e.Use(deps.Metrics.Middleware())

	e.GET("/", h.Root.Index)
	e.GET("/healthz", h.Root.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if deps.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	requireAccess := auth.RequireAccessToken(deps.Tokens)

	// Accounts
	e.POST("/accounts", h.Account.Register)
	e.POST("/accounts/verify/:token", h.Account.Verify)
	e.GET("/accounts/my", h.Account.GetMyAccount, requireAccess)

	// Sessions
	e.POST("/sessions", h.Session.Login, loginLimiter(cfg.LoginRateLimit)...)
	e.POST(handler.RefreshPath, h.Session.Refresh)
	e.GET("/sessions/my", h.Session.GetMySession, requireAccess)
	e.DELETE("/sessions/my", h.Session.Logout, requireAccess)

	my := e.Group("/my", requireAccess)

	my.GET("/sections", h.Section.ListSections)
	my.POST("/sections", h.Section.CreateSection)
	my.GET("/sections/:sectionId/entries", h.Entry.ListEntries)
	my.POST("/sections/:sectionId/entries", h.Entry.CreateEntry)

	my.GET("/resumes", h.Resume.ListResumes)
	my.POST("/resumes", h.Resume.CreateResume)
	my.GET("/resumes/:resumeId", h.Resume.GetResume)

	my.GET("/profiles", h.Profile.ListProfiles)
	my.POST("/profiles", h.Profile.CreateProfile)

	my.GET("/links", h.Link.ListLinks)
	my.POST("/links", h.Link.CreateLink)
}

// loginLimiter limits session creation per client IP. A non-positive limit
// disables it.
func loginLimiter(perSecond float64) []echo.MiddlewareFunc {
	if perSecond <= 0 {
		return nil
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     int(perSecond) + 1,
		ExpiresIn: 3 * time.Minute,
	})
	return []echo.MiddlewareFunc{middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many session requests, try again later")
		},
	})}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"request_id", v.RequestID,
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "request", slog.Group("http", attrs...), slog.String("error", v.Error.Error()))
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", slog.Group("http", attrs...))
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface. Failures are reported with
// one issue per offending field.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return apperrors.NewValidationError(validation.Issues(err))
	}
	return nil
}
