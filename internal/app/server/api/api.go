// POST   /clipboard              # Вставить текст
// GET    /clipboard              # Список записей (page, limit)
// GET    /clipboard/{id}         # Получить запись
// DELETE /clipboard              # Удалить запись (?id) или все (?deleteAll=true)
// POST   /log-copy               # Зафиксировать копирование
// POST   /verify-passcode        # Проверить общий пароль
// GET    /admin/logs             # Журнал аудита (Bearer ADMIN_TOKEN)
// GET    /health
// GET    /metrics

package api

import (
	"fmt"
	"net/http"

	adminAPI "clipshare/internal/app/server/api/http/admin"
	_ "clipshare/internal/app/server/api/http/apierr"
	clipboardAPI "clipshare/internal/app/server/api/http/clipboard"
	copylogAPI "clipshare/internal/app/server/api/http/copylog"
	healthAPI "clipshare/internal/app/server/api/http/health"
	"clipshare/internal/app/server/api/http/middleware"
	"clipshare/internal/app/server/api/http/middleware/auth"
	identityMW "clipshare/internal/app/server/api/http/middleware/identity"
	"clipshare/internal/app/server/api/http/middleware/logger"
	passcodeAPI "clipshare/internal/app/server/api/http/passcode"
	"clipshare/internal/app/server/config"
	"clipshare/internal/domain/audit"
	"clipshare/internal/domain/clipboard"
	"clipshare/internal/domain/passcode"
	"clipshare/internal/infrastructure/storage"
	"clipshare/internal/metrics"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health    *healthAPI.Handler
	Clipboard *clipboardAPI.Handler
	CopyLog   *copylogAPI.Handler
	Passcode  *passcodeAPI.Handler
	Admin     *adminAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register. reg receives
// the service metrics and backs /metrics when it is enabled; nil disables both.
func New(cfg *config.Config, store storage.Store, reg *prometheus.Registry, log *slog.Logger) (*chi.Mux, error) {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.Recoverer)

	if len(cfg.Server.CORSOrigins) > 0 {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}

	var registerer prometheus.Registerer
	if reg != nil && cfg.Server.MetricsEnabled {
		registerer = reg
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	m, err := metrics.NewMetrics(registerer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	humaCfg := huma.DefaultConfig("Clipshare API", "1.0.0")
	// без $schema в телах ответов
	humaCfg.CreateHooks = nil
	humaCfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaCfg)

	h, err := handlers(cfg, store, m, log)
	if err != nil {
		return nil, err
	}
	h.Health.SetupRoutes(API)
	h.Clipboard.SetupRoutes(API)
	h.CopyLog.SetupRoutes(API)
	h.Passcode.SetupRoutes(API)
	h.Admin.SetupRoutes(API)

	return mux, nil
}

func handlers(cfg *config.Config, store storage.Store, m *metrics.Metrics, log *slog.Logger) (*Handlers, error) {
	auditLogger := audit.NewLogger(store, log, m, cfg.Audit.Timeout)
	reporter := audit.NewReporter(store, log)

	// identity goes first so the request log line can carry the session id
	public := middleware.NewContainer(identityMW.Middleware(), logger.New(log).Middleware())
	admin := public.With(auth.New(cfg.Auth.AdminToken, log).Middleware())

	clipboardService := clipboard.NewService(store, auditLogger, m, log)

	verifier, err := passcode.NewVerifier(cfg.Auth.Passcode, cfg.Auth.PasscodeHash, auditLogger, log)
	if err != nil {
		return nil, fmt.Errorf("passcode verifier: %w", err)
	}

	return &Handlers{
		Health:    healthAPI.NewHandler(store, log, public.All()),
		Clipboard: clipboardAPI.NewHandler(clipboardService, log, public.All()),
		CopyLog:   copylogAPI.NewHandler(clipboardService, log, public.All()),
		Passcode:  passcodeAPI.NewHandler(verifier, log, public.All()),
		Admin:     adminAPI.NewHandler(reporter, log, admin.All()),
	}, nil
}
