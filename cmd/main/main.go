package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gomarketplace/internal/app"
	"gomarketplace/internal/cart"
	"gomarketplace/internal/cartevents"
	handlersCart "gomarketplace/internal/handlers/cart"
	"gomarketplace/internal/kafka"
	"gomarketplace/internal/middleware"
	"gomarketplace/internal/storage"
)

const (
	cfgPath         = "config/config.yaml"
	shutdownTimeout = 10 * time.Second
)

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	// парсим конфиг
	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// init storage
	kv, closeStorage, err := storage.New(c.CfgStorage, logger)
	if err != nil {
		logger.Fatalf("error to init storage: %v", err)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			logger.Warnf("error to close storage: %v", err)
		}
	}()

	deviceID := c.DeviceID
	if deviceID == "" {
		deviceID = uuid.New().String()
	}

	// init cart store, сброс сохраненной корзины (если включен) происходит до загрузки
	store := cart.Open(ctx, kv, c.CfgStorage, logger, cart.WithSubscriberBuffer(c.SubscriberBuffer))

	// события корзины в kafka, если брокеры заданы
	publisherDone := make(chan struct{})
	if len(c.CfgKafka.Brokers) > 0 {
		producer := kafka.NewProducer(c.CfgKafka.Brokers, c.CfgKafka.Topic, logger)
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Warnf("error to close kafka producer: %v", err)
			}
		}()

		// подписка без потерь закрывается в store.Close после того, как все изменения прочитаны
		changes, _ := store.SubscribeAll()

		publisher := cartevents.NewPublisher(producer, logger, deviceID)
		go func() {
			defer close(publisherDone)
			publisher.Run(changes)
		}()
	} else {
		close(publisherDone)
		logger.Infow("kafka brokers are not configured, cart events are disabled")
	}

	// init handlers
	cartHandlers, err := handlersCart.NewCartHandler(logger, store)
	if err != nil {
		logger.Fatalf("error to init cart handlers: %v", err)
	}

	// init router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.MetricsMiddleware)

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/cart", cartHandlers.GetCart).Methods("GET")
	api.HandleFunc("/cart/ready", cartHandlers.Ready).Methods("GET")
	api.HandleFunc("/cart/items", cartHandlers.AddToCart).Methods("POST")
	api.HandleFunc("/cart/items/{id}/increment", cartHandlers.Increment).Methods("POST")
	api.HandleFunc("/cart/items/{id}/decrement", cartHandlers.Decrement).Methods("POST")

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
		"device_id", deviceID,
		"storage", c.CfgStorage.Driver,
	)

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("can't start server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Infow("shutting down server", "type", "STOP")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("error to shutdown server: %v", err)
	}

	// дописываем корзину до закрытия хранилища
	if err := store.Close(shutdownCtx); err != nil {
		logger.Warnf("error to close cart store: %v", err)
	}

	// дожидаемся отправки событий, накопленных до остановки
	select {
	case <-publisherDone:
	case <-shutdownCtx.Done():
		logger.Warnw("cart events are not fully sent before shutdown", "err", shutdownCtx.Err())
	}
}
