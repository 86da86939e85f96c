package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tripmate/internal/adapters/bookingcom"
	"tripmate/internal/adapters/gemini"
	"tripmate/internal/adapters/httpserver"
	"tripmate/internal/adapters/mail"
	"tripmate/internal/adapters/observability"
	redisad "tripmate/internal/adapters/redis"
	"tripmate/internal/app"
	"tripmate/internal/shared"
	mongostore "tripmate/internal/storage/mongo"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	client, err := mongostore.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	log.Info().Msg("database connection ok")

	store := mongostore.New(client.Database(cfg.MongoDB))
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	assistant, err := gemini.New(cfg.GeminiBase, cfg.GeminiKey, cfg.GeminiModel, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("gemini client init failed")
	}
	booking, err := bookingcom.New(cfg.BookingBase, cfg.BookingHost, cfg.BookingKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("booking client init failed")
	}
	mailer := mail.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	// services
	handlers := &httpserver.Handlers{
		Auth:      app.NewAuthService(store, cfg.JWTSecret),
		Chat:      app.NewChatService(store, assistant),
		Favorites: app.NewFavoritesService(store),
		Booking:   app.NewBookingService(store, mailer, mail.RenderReceipt),
		Search:    app.NewSearchService(booking, cache, cfg.CacheTTL),
		Admin:     app.NewAdminService(store, store, store, store),
	}

	// http
	srv := httpserver.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(handlers)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("server stopped")
}
