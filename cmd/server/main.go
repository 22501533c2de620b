package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/config"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/handler"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/repository"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	redisClient := initRedis(cfg)
	defer redisClient.Close()

	loanRepo := repository.NewLoanRepository(db)
	copyRepo := repository.NewCopyRepository(db)
	readerRepo := repository.NewReaderRepository(db)
	bookRepo := repository.NewBookRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	lookupRepo := repository.NewLookupRepository(db)

	loanService := service.NewLoanService(
		loanRepo, copyRepo, readerRepo, paymentRepo, reservationRepo, lookupRepo,
		cfg.FinePolicy(),
	)
	catalogService := service.NewCatalogService(bookRepo, copyRepo)
	readerService := service.NewReaderService(readerRepo)
	statsService := service.NewStatsService(statsRepo, redisClient, cfg.SummaryCacheTTL())
	referenceService := service.NewReferenceService(lookupRepo)

	router := handler.NewRouter(
		handler.NewLoanHandler(loanService),
		handler.NewCatalogHandler(catalogService),
		handler.NewReaderHandler(readerService),
		handler.NewStatsHandler(statsService),
		handler.NewReferenceHandler(referenceService),
		handler.NewHealthHandler(db, redisClient, cfg.HealthTimeout()),
	)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
