package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"gymspot/docs" //this is required to generate swagger docs
	"gymspot/internal/auth"
	"gymspot/internal/domain/promotions"
	"gymspot/internal/domain/storage"
	"gymspot/internal/domain/users"
	"gymspot/internal/mailer"
	"gymspot/internal/notifications"
	"gymspot/internal/payments"
	"gymspot/internal/ratelimiter"
	"gymspot/internal/search"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         *storage.Container
	pool          pinger
	logger        *zap.SugaredLogger
	cld           *cloudinary.Cloudinary
	mailer        mailer.Client
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
	search        *search.Aggregator
	payments      *payments.PaymentManager
	push          notifications.PushSender
	codes         *promotions.Codec
	now           func() time.Time
	wg            sync.WaitGroup
}

type pinger interface {
	Ping(ctx context.Context) error
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	r.Use(app.RateLimiterMiddleware)

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	// server-rendered search page
	r.Get("/search", app.searchPageHandler)

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Route("/search", func(r chi.Router) {
			r.Get("/", app.searchHandler)
			r.Get("/suggestions", app.searchSuggestionsHandler)
		})

		r.Route("/authentication", func(r chi.Router) {
			r.Post("/user", app.registerUserHandler)
			r.Post("/token", app.createTokenHandler)
			r.Post("/refresh", app.refreshTokenHandler)
			r.Post("/reset-password", app.requestResetPasswordHandler)
			r.Patch("/reset-password", app.resetPasswordHandler)
		})

		r.Route("/venues", func(r chi.Router) {
			r.With(app.AuthTokenMiddleware, app.RequireRole(users.RoleGymOwner)).Post("/", app.createVenueHandler)
			r.With(app.AuthTokenMiddleware).Get("/favorites", app.listFavoritesHandler)
			r.With(app.OptionalAuthMiddleware).Get("/city/{citySlug}/{venueSlug}", app.getVenueBySlugHandler)

			r.Route("/{venueID}", func(r chi.Router) {
				r.With(app.OptionalAuthMiddleware).Get("/", app.getVenueHandler)
				r.With(app.OptionalAuthMiddleware).Get("/reviews", app.getVenueReviewsHandler)
				r.With(app.OptionalAuthMiddleware).Get("/promotions", app.listVenuePromotionsHandler)

				r.Group(func(r chi.Router) {
					r.Use(app.AuthTokenMiddleware)

					r.Patch("/", app.updateVenueHandler)
					r.Delete("/", app.deleteVenueHandler)
					r.Post("/photos", app.uploadVenuePhotoHandler)
					r.Delete("/photos", app.deleteVenuePhotoHandler) // DELETE /venues/{venueID}/photos?photo_url={url}
					r.Post("/rating/recompute", app.recomputeVenueRatingHandler)
					r.Post("/favorite", app.toggleFavoriteHandler)
					r.Post("/promotions", app.createPromotionHandler)

					r.Post("/reviews", app.createVenueReviewHandler)
					r.Patch("/reviews/{reviewID}", app.updateVenueReviewHandler)
					r.Delete("/reviews/{reviewID}", app.deleteVenueReviewHandler)
					r.Post("/reviews/{reviewID}/helpful", app.markReviewHelpfulHandler)
				})
			})
		})

		r.Route("/promotions", func(r chi.Router) {
			r.Get("/", app.listCurrentPromotionsHandler)
			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Post("/redeem/{code}", app.redeemPromotionHandler)
				r.Patch("/{promotionID}", app.updatePromotionHandler)
				r.Delete("/{promotionID}", app.deletePromotionHandler)
			})
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/plans", app.listPlansHandler)
			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Post("/", app.createSubscriptionHandler)
				r.Get("/me", app.mySubscriptionsHandler)
				r.Post("/{subscriptionID}/cancel", app.cancelSubscriptionHandler)
			})
		})

		r.Post("/webhooks/stripe", app.stripeWebhookHandler)

		r.Route("/users", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Get("/me", app.getCurrentUserHandler)
			r.Post("/logout", app.logoutHandler)
			r.Post("/push-tokens", app.savePushTokenHandler)
			r.Delete("/push-tokens", app.removePushTokenHandler)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.RequireRole(users.RoleGymOwner))
			r.Get("/venues", app.ownerVenuesHandler)
			r.Get("/venues/{venueID}/reviews", app.ownerVenueReviewsHandler)
			r.Get("/venues/{venueID}/stats", app.ownerVenueStatsHandler)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.RequireRole(users.RoleAdmin))
			r.Get("/stats", app.adminStatsHandler)
			r.Get("/venues", app.adminListVenuesHandler)
			r.Patch("/venues/{venueID}/status", app.adminUpdateVenueStatusHandler)
			r.Post("/venues/recompute-ratings", app.adminRecomputeRatingsHandler)
			r.Patch("/reviews/{reviewID}/status", app.adminUpdateReviewStatusHandler)
			r.Patch("/users/{userID}/role", app.adminUpdateUserRoleHandler)
			r.Post("/push-tokens/prune", app.pruneStaleTokensHandler)
			r.Post("/subscriptions/expire", app.expireSubscriptionsHandler)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdown <- err
		}

		app.logger.Infow("completing background tasks")
		app.wg.Wait()
		shutdown <- nil
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}

func (app *application) clock() time.Time {
	if app.now != nil {
		return app.now()
	}
	return time.Now()
}
