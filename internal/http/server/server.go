package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"offertracker/internal/config"
	"offertracker/internal/http/handlers/admin/upsert_offer"
	"offertracker/internal/http/handlers/click/redirect"
	"offertracker/internal/http/handlers/middlewares/auth"
	"offertracker/internal/http/handlers/middlewares/compress"
	"offertracker/internal/http/handlers/middlewares/logger"
	"offertracker/internal/http/handlers/middlewares/ratelimit"
	"offertracker/internal/http/handlers/offer/list_active"
	"offertracker/internal/http/handlers/shortlink/create_link"
	"offertracker/internal/http/handlers/shortlink/resolve_link"
	"offertracker/internal/http/handlers/stats/get_range"
	"offertracker/internal/http/handlers/system/getping"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const limiterCleanupInterval = time.Minute

// Tracker - всё, что HTTP-слой использует из трекера
type Tracker interface {
	redirect.Service
	create_link.Service
	resolve_link.Service
	list_active.Service
	upsert_offer.Service
	getping.Service
}

type Server struct {
	httpServer *http.Server
	router     *mux.Router
	log        *zerolog.Logger
	tracker    Tracker
	stats      get_range.Service
	adminJWT   auth.TokenValidator // nil - только статический X-Admin-Token
	limiter    *ratelimit.RateLimiter
	cfg        config.Config
}

func NewServer(log *zerolog.Logger, cfg config.Config, trk Tracker, stats get_range.Service, adminJWT auth.TokenValidator) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if trk == nil {
		return nil, errors.New("tracker cannot be nil")
	}
	if stats == nil {
		return nil, errors.New("stats service cannot be nil")
	}

	s := &Server{
		router:   mux.NewRouter(),
		cfg:      cfg,
		log:      log,
		tracker:  trk,
		stats:    stats,
		adminJWT: adminJWT,
		limiter:  ratelimit.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(logger.MiddlewareLogging(s.log))
	s.router.Use(compress.MiddlewareCompressing())

	// system
	ping := getping.HandlerPing(s.tracker, s.log)
	s.router.HandleFunc("/ping", ping).Methods(http.MethodGet)
	s.router.HandleFunc("/health", ping).Methods(http.MethodGet)

	// публичные ссылки, по ним ходят пользователи, поэтому под лимитом
	public := s.router.NewRoute().Subrouter()
	public.Use(s.limiter.Limit)
	public.HandleFunc("/r/{slug}", redirect.HandlerRedirect(s.tracker, s.log)).Methods(http.MethodGet)                        // 307
	public.HandleFunc("/s/new", create_link.HandlerCreateShortLink(s.tracker, s.cfg.BaseURL, s.log)).Methods(http.MethodPost) // 201
	public.HandleFunc("/s/{id}", resolve_link.HandlerResolveShortLink(s.tracker, s.log)).Methods(http.MethodGet)              // 307

	s.router.HandleFunc("/offers", list_active.HandlerListActiveOffers(s.tracker, s.log)).Methods(http.MethodGet)
	s.router.HandleFunc("/stats/range", get_range.HandlerStatsRange(s.stats, s.log)).Methods(http.MethodGet)

	admin := s.router.PathPrefix("/admin").Subrouter()
	admin.Use(auth.MiddlewareAdminToken(s.cfg.AdminToken, s.adminJWT, s.log))
	admin.HandleFunc("/offers/{slug}", upsert_offer.HandlerUpsertOffer(s.tracker, s.log)).Methods(http.MethodPut)
}

// Handler отдаёт роутер целиком, пригодится для httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	go s.cleanupLimiter(ctx)

	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) cleanupLimiter(ctx context.Context) {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.limiter.Cleanup()
		}
	}
}
