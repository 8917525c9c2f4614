package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/copilot-skills-example/octocat-supply-api/internal/catalog"
	"github.com/copilot-skills-example/octocat-supply-api/internal/config"
	"github.com/copilot-skills-example/octocat-supply-api/internal/httpx"
	kafkax "github.com/copilot-skills-example/octocat-supply-api/internal/kafka"
	"github.com/copilot-skills-example/octocat-supply-api/internal/logging"
	"github.com/copilot-skills-example/octocat-supply-api/internal/orders"
	"github.com/copilot-skills-example/octocat-supply-api/internal/postgres"
	"github.com/copilot-skills-example/octocat-supply-api/internal/search"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat).WithField("service", cfg.ServiceName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.WithError(err).Fatal("db connect")
	}
	defer db.Close()

	if cfg.RunMigrations {
		if err := postgres.Migrate(cfg.PostgresDSN); err != nil {
			log.WithError(err).Fatal("migrate")
		}
	}

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderCreated, 1024,
		log.WithField("component", "kafka-producer"))
	prod.Start(ctx)

	// Repos & services
	products := catalog.Products(db)
	ordersRepo := &orders.Repo{DB: db}
	ordersSvc := orders.NewService(products, ordersRepo, prod, cfg.ServiceName,
		log.WithField("component", "orders"))
	searchSvc := search.NewService(&search.Repo{DB: db})

	// Router
	router := httpx.NewRouter(log.WithField("component", "http"))
	(&httpx.SearchHandler{Service: searchSvc, Log: log.WithField("component", "search")}).Register(router)
	(&httpx.OrdersHandler{Service: ordersSvc, Log: log.WithField("component", "orders")}).Register(router)
	httpx.MountCRUD(router, "/api/suppliers", catalog.Suppliers(db), log.WithField("component", "suppliers"))
	httpx.MountCRUD(router, "/api/products", products, log.WithField("component", "products"))
	httpx.MountCRUD(router, "/api/branches", catalog.Branches(db), log.WithField("component", "branches"))
	httpx.MountCRUD(router, "/api/headquarters", catalog.HeadquartersTable(db), log.WithField("component", "headquarters"))
	httpx.MountCRUD(router, "/api/deliveries", catalog.Deliveries(db), log.WithField("component", "deliveries"))

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("HTTP listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close() // stop intake, flush, close writer
	prod.WaitClosed()
}
