package main

import (
	"context"
	"log"
	"time"

	"qrmenu/config"
	httpapi "qrmenu/internal/api/http"
	"qrmenu/internal/service"
	"qrmenu/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	topic := config.EventsTopic()
	writer := config.NewKafkaWriter(topic)
	defer writer.Close()

	reader := config.NewKafkaReader(topic, "qrmenu-aggregator")
	defer reader.Close()

	carts := storage.NewRedisCartStore(rdb, 24*time.Hour)
	counters := storage.NewRedisCounters(rdb)
	publisher := storage.NewKafkaPublisher(writer)

	handler := httpapi.NewHandler(
		service.NewMenuService(repo, repo, repo, repo),
		service.NewCartService(carts, repo, repo),
		service.NewCheckoutService(repo, repo, carts),
		service.NewPromotionService(repo),
		service.NewProvisionService(repo, repo),
		service.NewQRService(repo, service.DefaultQRGenerator{}),
		service.NewAnalyticsService(repo, publisher),
		config.JWTSecret(),
	)

	consumer := service.NewEventConsumer(reader, counters)
	go consumer.Start(context.Background())

	httpapi.StartServer(config.HTTPAddr(), httpapi.NewRouter(handler))
}
