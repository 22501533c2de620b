package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/config"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/repository"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/service"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/utils"
)

func main() {
	log.Println("Starting statistics scheduler...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Fatalf("Invalid scheduler timezone %q: %v", cfg.Scheduler.Timezone, err)
	}

	// Scheduler batch jobs query the database directly; no Redis needed here.
	statsService := service.NewStatsService(repository.NewStatsRepository(db), nil, 0)

	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	// Nightly aggregation of the day that just ended.
	_, err = c.AddFunc(cfg.Scheduler.DailyStatsSpec, func() {
		yesterday := utils.AddDays(time.Now().In(location), -1)
		log.Printf("Running daily statistics job for %s", yesterday.Format("2006-01-02"))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		stat, err := statsService.RecalculateDay(ctx, yesterday)
		if err != nil {
			log.Printf("Daily statistics job failed: %v", err)
			return
		}
		log.Printf("Daily statistics stored: date=%s visits=%d loans=%d overdue=%d",
			stat.StatisticDate.Format("2006-01-02"), stat.TotalVisits, stat.TotalLoans, stat.OverdueLoans)
	})
	if err != nil {
		log.Fatalf("Error scheduling daily statistics job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	c.Stop()
	log.Println("Scheduler stopped")
}
