package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/feedworks/social_layer/internal/app"
	"github.com/feedworks/social_layer/internal/app/metrics"
	"github.com/feedworks/social_layer/internal/config"
	"github.com/feedworks/social_layer/internal/middleware"
	"github.com/feedworks/social_layer/internal/web"
	"github.com/feedworks/social_layer/pkg/logger"
)

// newHandler builds the gateway routing table and middleware chain.
func newHandler(application *app.Application, cfg *config.Gateway, log *logger.Logger) http.Handler {
	router := mux.NewRouter()

	// Static pages
	router.HandleFunc("/", web.PageHandler("index.html")).Methods(http.MethodGet)
	router.HandleFunc("/register", web.PageHandler("register.html")).Methods(http.MethodGet)
	router.HandleFunc("/login", web.PageHandler("login.html")).Methods(http.MethodGet)

	// Operational endpoints
	router.HandleFunc("/health", healthHandler()).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Identity
	router.HandleFunc("/register", registerHandler(application.Identity)).Methods(http.MethodPost)
	router.HandleFunc("/login", loginHandler(application.Identity)).Methods(http.MethodPost)
	router.HandleFunc("/logout", logoutHandler(application.Identity)).Methods(http.MethodPost)

	// Posts, behind the session gate
	auth := middleware.NewAuthMiddleware(application.Identity, log)
	postsRouter := router.PathPrefix("/posts").Subrouter()
	postsRouter.Use(auth.Handler)
	postsRouter.HandleFunc("", listPostsHandler(application.Posts)).Methods(http.MethodGet)
	postsRouter.HandleFunc("", createPostHandler(application.Posts)).Methods(http.MethodPost)
	postsRouter.HandleFunc("/{id}", getPostHandler(application.Posts)).Methods(http.MethodGet)
	postsRouter.HandleFunc("/{id}", deletePostHandler(application.Posts)).Methods(http.MethodDelete)
	postsRouter.HandleFunc("/{id}/like", likePostHandler(application.Posts)).Methods(http.MethodGet)

	cors := middleware.NewCORSMiddleware(cfg.CORSAllowedOrigins)
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSec, cfg.RateLimitBurst, log)

	var handler http.Handler = router
	handler = limiter.Handler(handler)
	handler = cors.Handler(handler)
	handler = metrics.InstrumentHandler(handler)
	handler = middleware.LoggingMiddleware(log)(handler)
	return handler
}
