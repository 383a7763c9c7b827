package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"manomangal/config"
	"manomangal/internal/auth"
	"manomangal/internal/bootstrap"
	"manomangal/internal/cache"
	"manomangal/internal/kafka"
	"manomangal/internal/notify"
	"manomangal/internal/repository"
	"manomangal/internal/service/booking"
	"manomangal/internal/service/dashboard"
	"manomangal/internal/service/inquiry"
	"manomangal/internal/service/menu"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Auth.Secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Menu.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	bookingRepo := repository.NewBookingRepository(pool)
	inquiryRepo := repository.NewInquiryRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	tokens := auth.NewTokenManager(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	router := bootstrap.NewRouter(bootstrap.Services{
		Auth:   auth.NewService(userRepo, tokens),
		Tokens: tokens,
		Booking: booking.NewBookingService(
			bookingRepo,
			producer,
			cfg.Kafka.BookingTopic,
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		),
		Inquiry:   inquiry.NewInquiryService(inquiryRepo),
		Menu:      menu.NewMenuService(menuRepo, redisCache),
		Dashboard: dashboard.NewDashboardService(bookingRepo, inquiryRepo),
		Formatter: notify.NewFormatter(cfg.Venue.OwnerWhatsApp),
	})

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
