// Package app assembles the repositories, services and handlers into an
// echo instance.
package app

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/auth"
	"github.com/Modular-CV/backend/internal/cache"
	"github.com/Modular-CV/backend/internal/config"
	"github.com/Modular-CV/backend/internal/entryschema"
	"github.com/Modular-CV/backend/internal/handler"
	"github.com/Modular-CV/backend/internal/mail"
	"github.com/Modular-CV/backend/internal/metrics"
	"github.com/Modular-CV/backend/internal/repository"
	"github.com/Modular-CV/backend/internal/router"
	"github.com/Modular-CV/backend/internal/service"
	"github.com/Modular-CV/backend/internal/validation"
)

// Deps are the process-level resources the HTTP application is built on.
type Deps struct {
	DB       *gorm.DB
	Cache    *cache.Client
	Mailer   mail.Mailer
	Logger   *slog.Logger
	Registry *prometheus.Registry
	// Hasher overrides the hasher derived from Config when set.
	Hasher *auth.Hasher
}

// New wires every layer and returns a ready echo instance.
func New(cfg *config.Config, deps Deps) (*echo.Echo, error) {
	hasher := deps.Hasher
	if hasher == nil {
		h, err := auth.NewHasher(auth.DefaultHasherConfig(cfg.PepperSecret))
		if err != nil {
			return nil, fmt.Errorf("hasher: %w", err)
		}
		hasher = h
	}

	jwtService, err := auth.NewJWTService(auth.TokenConfig{
		AccessSecret:  cfg.AccessTokenSecret,
		AccessTTL:     cfg.AccessTokenMaxAge,
		RefreshSecret: cfg.RefreshTokenSecret,
		RefreshTTL:    cfg.RefreshTokenMaxAge,
	})
	if err != nil {
		return nil, fmt.Errorf("jwt service: %w", err)
	}

	var m *metrics.Metrics
	var gatherer prometheus.Gatherer
	if deps.Registry != nil {
		m = metrics.New()
		m.MustRegister(deps.Registry)
		gatherer = deps.Registry
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(deps.DB)
	sectionRepo := repository.NewSectionRepository(deps.DB)
	entryRepo := repository.NewEntryRepository(deps.DB)
	linkRepo := repository.NewLinkRepository(deps.DB)
	profileRepo := repository.NewProfileRepository(deps.DB)
	resumeRepo := repository.NewResumeRepository(deps.DB)
	tokenStore := auth.NewTokenStore(deps.DB)

	// Initialize services
	accountService := service.NewAccountService(accountRepo, hasher, deps.Mailer, deps.Cache, m, deps.Logger, service.AccountOptions{
		ProjectName:     cfg.ProjectName,
		Domain:          cfg.Domain,
		VerificationTTL: cfg.VerificationTokenMaxAge,
	})
	sessionService, err := service.NewSessionService(accountRepo, jwtService, tokenStore, hasher, m, deps.Logger)
	if err != nil {
		return nil, err
	}
	sectionService := service.NewSectionService(sectionRepo, deps.Cache)
	entryService := service.NewEntryService(
		sectionService,
		linkRepo,
		entryRepo,
		entryschema.NewRegistry(validation.New()),
		m,
		deps.Logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(e, cfg, router.Deps{
		Logger:   deps.Logger,
		Metrics:  m,
		Gatherer: gatherer,
		Tokens:   jwtService,
	}, router.Handlers{
		Root:    handler.NewRootHandler(cfg.ProjectName),
		Account: handler.NewAccountHandler(accountService),
		Session: handler.NewSessionHandler(sessionService, jwtService, handler.CookieOptions{
			Secure:   cfg.CookieSecure,
			SameSite: cfg.CookieSameSite,
		}),
		Section: handler.NewSectionHandler(sectionService),
		Entry:   handler.NewEntryHandler(entryService),
		Resume:  handler.NewResumeHandler(service.NewResumeService(resumeRepo)),
		Profile: handler.NewProfileHandler(service.NewProfileService(profileRepo)),
		Link:    handler.NewLinkHandler(service.NewLinkService(linkRepo)),
	})

	return e, nil
}
