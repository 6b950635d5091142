package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/planmoni-site/adapters/event"
	httpAdapter "github.com/khoahotran/planmoni-site/adapters/http"
	"github.com/khoahotran/planmoni-site/adapters/media_storage"
	"github.com/khoahotran/planmoni-site/adapters/persistence"
	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	"github.com/khoahotran/planmoni-site/internal/application/service"
	aboutUC "github.com/khoahotran/planmoni-site/internal/application/usecase/about"
	activityUC "github.com/khoahotran/planmoni-site/internal/application/usecase/activity"
	authUC "github.com/khoahotran/planmoni-site/internal/application/usecase/auth"
	backupUC "github.com/khoahotran/planmoni-site/internal/application/usecase/backup"
	blogUC "github.com/khoahotran/planmoni-site/internal/application/usecase/blog"
	careerUC "github.com/khoahotran/planmoni-site/internal/application/usecase/career"
	contactUC "github.com/khoahotran/planmoni-site/internal/application/usecase/contact"
	faqUC "github.com/khoahotran/planmoni-site/internal/application/usecase/faq"
	appUC "github.com/khoahotran/planmoni-site/internal/application/usecase/jobapplication"
	legalUC "github.com/khoahotran/planmoni-site/internal/application/usecase/legal"
	pressUC "github.com/khoahotran/planmoni-site/internal/application/usecase/press"
	searchUC "github.com/khoahotran/planmoni-site/internal/application/usecase/search"
	"github.com/khoahotran/planmoni-site/internal/config"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/internal/domain/legal"
	"github.com/khoahotran/planmoni-site/pkg/auth"
	"github.com/khoahotran/planmoni-site/pkg/logger"
	"github.com/khoahotran/planmoni-site/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	log := logger.NewZapLogger(cfg.App.Env)
	log.Info("Start Planmoni site API server...", zap.String("env", cfg.App.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewTracerProvider(cfg.Jaeger.OTLPEndpoint, cfg.App.Name, log)
	if err != nil {
		log.Fatal("Cannot init tracer", err)
	}
	defer tracing.Shutdown(context.Background(), tp, log)

	// Storage
	store, closeStore, err := persistence.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Cannot open content store", err)
	}
	defer closeStore()

	managers, err := datamanager.Open(ctx, store, log, nil)
	if err != nil {
		log.Fatal("Cannot load content", err)
	}

	activityUseCase := activityUC.NewActivityUseCase(managers.Activity, activityUC.Sources{
		Posts:        managers.Blog,
		Positions:    managers.Careers,
		Applications: managers.Applications,
		FAQs:         managers.FAQs,
		Press:        managers.Press,
		Messages:     managers.Messages,
	}, log)

	if len(cfg.Kafka.Brokers) > 0 {
		activityUseCase.SharedLog()
	}
	publisher := newPublisher(cfg, activityUseCase, log)
	defer publisher.Close()

	uploader := newUploader(cfg, log)

	// Auth
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		secret = uuid.NewString()
		log.Warn("JWT_SECRET is not set, sessions will not survive a restart")
	}
	jwtSvc := auth.NewJWTService(secret, cfg.Auth.TokenLifespan)
	creds, err := authUC.ResolveCredentials(authUC.Credentials{
		Username:     cfg.Auth.AdminUsername,
		PasswordHash: cfg.Auth.AdminPasswordHash,
		LoginDelay:   cfg.Auth.LoginDelay,
	}, log)
	if err != nil {
		log.Fatal("Cannot resolve admin credentials", err)
	}
	authUseCase := authUC.NewAuthUseCase(creds, jwtSvc, managers.Sessions, log)

	// Use Cases
	blogUseCase := blogUC.NewBlogUseCase(managers.Blog, publisher, log)
	rssUseCase := blogUC.NewRSSUseCase(managers.Blog, blogUC.FeedInfo{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		BaseURL:     cfg.Site.BaseURL,
		Author:      cfg.Site.Author,
	}, log)
	careersUseCase := careerUC.NewCareersUseCase(managers.Careers, publisher, log)
	applicationsUseCase := appUC.NewApplicationsUseCase(managers.Applications, managers.Careers, publisher, log)
	legalUseCase := legalUC.NewLegalUseCase(map[legal.Kind]legal.Repository{
		legal.KindPrivacy: managers.Privacy,
		legal.KindTerms:   managers.Terms,
	}, publisher, log)
	backupUseCase := backupUC.NewBackupUseCase(store, uploader, backupUC.Options{
		Dir:    cfg.Backup.Dir,
		Upload: cfg.Backup.Upload,
	}, log)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Auth:         httpAdapter.NewAuthHandler(authUseCase),
		Blog:         httpAdapter.NewBlogHandler(blogUseCase),
		RSS:          httpAdapter.NewRSSHandler(rssUseCase, log),
		Careers:      httpAdapter.NewCareerHandler(careersUseCase),
		Applications: httpAdapter.NewApplicationHandler(applicationsUseCase),
		About:        httpAdapter.NewAboutHandler(aboutUC.NewAboutUseCase(managers.About, publisher, log)),
		FAQ:          httpAdapter.NewFAQHandler(faqUC.NewFAQUseCase(managers.FAQs, publisher, log)),
		Legal:        httpAdapter.NewLegalHandler(legalUseCase),
		Press:        httpAdapter.NewPressHandler(pressUC.NewPressUseCase(managers.Press, uploader, publisher, log)),
		Contact:      httpAdapter.NewContactHandler(contactUC.NewContactUseCase(managers.ContactInfo, managers.Messages, publisher, log)),
		Dashboard:    httpAdapter.NewDashboardHandler(activityUseCase, backupUseCase),
		Search:       httpAdapter.NewSearchHandler(searchUC.NewSearchUseCase(managers.Blog, managers.Careers, managers.FAQs, log)),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(handlers, httpAdapter.AuthMiddleware(authUseCase, log), log)

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           corsHandler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", err)
		}
	}()

	log.Info("Server running", zap.String("port", cfg.App.Port), zap.String("storage", cfg.Storage.Driver))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Cannot run server", err)
	}
}

// newPublisher sends content events to Kafka when brokers are configured and
// records them in-process otherwise.
func newPublisher(cfg config.Config, recorder event.Recorder, log logger.Logger) activity.Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Info("Kafka brokers not set, recording activity in-process")
		return event.NewLocalPublisher(recorder)
	}
	pub, err := event.NewKafkaPublisher(cfg, log)
	if err != nil {
		log.Fatal("Cannot init Kafka producer", err)
	}
	return pub
}

// newUploader returns nil when Cloudinary is not configured; press uploads
// then answer 503 and backups stay local.
func newUploader(cfg config.Config, log logger.Logger) service.Uploader {
	if cfg.Cloudinary.CloudName == "" {
		log.Warn("Cloudinary is not configured, media uploads are disabled")
		return nil
	}
	u, err := media_storage.NewCloudinaryAdapter(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize uploader", err)
	}
	return u
}
