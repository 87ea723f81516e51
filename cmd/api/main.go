package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/cliniqueduparc/clinique-api/internal/config"
	"github.com/cliniqueduparc/clinique-api/internal/domain/content"
	"github.com/cliniqueduparc/clinique-api/internal/domain/reservation"
	"github.com/cliniqueduparc/clinique-api/internal/middleware"
	"github.com/cliniqueduparc/clinique-api/internal/pkg/database"
	"github.com/cliniqueduparc/clinique-api/internal/pkg/email"
	"github.com/cliniqueduparc/clinique-api/internal/pkg/logger"
	pkgresponse "github.com/cliniqueduparc/clinique-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Clinique API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	// ---------- Email ----------
	var mailer reservation.Mailer
	if cfg.SendGridAPIKey != "" {
		emailSvc := email.NewService(email.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.EmailFrom,
			FromName:  cfg.EmailFromName,
		})
		defer emailSvc.Close()
		mailer = &reservationMailerAdapter{svc: emailSvc}
	} else {
		log.Warn().Msg("SENDGRID_API_KEY not set, confirmation emails disabled")
	}

	// ---------- Reservation domain ----------
	reservationRepo := reservation.NewRepository(db)
	payloadStore := reservation.NewPayloadStore(redis, cfg.PayloadTTL)
	reservationSvc := reservation.NewService(reservationRepo, payloadStore, reservation.NewLogNotifier(), mailer)
	reservationHandler := reservation.NewHandler(reservationSvc, cfg.FrontendURL)

	// ---------- Content domain ----------
	contentHandler := content.NewHandler(db)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/reservations", reservationHandler.PublicRoutes())
		r.Mount("/content", contentHandler.Routes())
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// reservationMailerAdapter bridges the reservation domain to the email service
type reservationMailerAdapter struct {
	svc *email.Service
}

func (a *reservationMailerAdapter) QueueReservationReceived(res *reservation.Reservation, confirmationNumber string) {
	a.svc.SendReservationReceived(
		res.Email,
		res.Name,
		confirmationNumber,
		reservation.FormatDateFR(res.Date),
		reservation.DisplayTime(res.Time),
		res.Occasion,
	)
}
