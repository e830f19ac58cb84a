package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/NangRotha/Cloths-Frontend-User/internal/api"
	"github.com/NangRotha/Cloths-Frontend-User/internal/cart"
	"github.com/NangRotha/Cloths-Frontend-User/internal/catalog"
	"github.com/NangRotha/Cloths-Frontend-User/internal/checkout"
	"github.com/NangRotha/Cloths-Frontend-User/internal/config"
	"github.com/NangRotha/Cloths-Frontend-User/internal/kvstore"
	"github.com/NangRotha/Cloths-Frontend-User/internal/session"
	"github.com/NangRotha/Cloths-Frontend-User/internal/web"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	// Local storage: falls back to in-process when Redis is unreachable,
	// at the cost of the token not surviving a restart.
	var store kvstore.Store = kvstore.NewRedisStore(redisClient)
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, token will not survive restarts")
		store = kvstore.NewMemoryStore()
	}

	tokens := session.NewTokenStore(store)
	client := api.NewClient(cfg.ShopAPIURL, tokens, cfg.RequestTimeout)

	sessions := session.NewManager(client, tokens, log)
	client.SetUnauthorizedHook(sessions.ForceLogout)

	// Validate any token left over from the previous run.
	resumeCtx, cancelResume := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	sessions.Resume(resumeCtx)
	cancelResume()

	shoppingCart := cart.New()
	checkoutMgr := checkout.NewManager(client, shoppingCart, log)
	catalogSvc := catalog.NewService(client, catalog.NewRedisCache(redisClient, cfg.CatalogCacheTTL), log)

	router := web.NewRouter(web.RouterDeps{
		Products: web.NewProductHandler(catalogSvc, client.BaseURL()),
		Cart:     web.NewCartHandler(shoppingCart, catalogSvc),
		Checkout: web.NewCheckoutHandler(checkoutMgr, shoppingCart),
		Auth:     web.NewAuthHandler(sessions, client.GoogleAuthURL()),
		Orders:   web.NewOrdersHandler(client),
		Sessions: sessions,
		Timeout:  cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("storefront starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
