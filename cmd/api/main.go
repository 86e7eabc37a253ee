package main

import (
	"context"
	"expvar"
	"fmt"
	"os"
	"runtime"
	"time"

	"gymspot/internal/auth"
	"gymspot/internal/db"
	"gymspot/internal/domain/promotions"
	"gymspot/internal/domain/storage"
	"gymspot/internal/mailer"
	"gymspot/internal/notifications"
	"gymspot/internal/payments"
	"gymspot/internal/ratelimiter"
	"gymspot/internal/search"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new zap logger with color.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	// Configure the encoder to be a console encoder with color
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder // This adds color to log levels (INFO, WARN, ERROR)

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), lvl)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

// newRateLimiter picks the in-memory or Redis backend.
func newRateLimiter(cfg config, logger *zap.SugaredLogger) ratelimiter.Limiter {
	if cfg.rateLimiter.Backend == "redis" {
		client := ratelimiter.NewRedisClient(cfg.redis.addr, cfg.redis.password, cfg.redis.db)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warnw("redis unreachable, falling back to in-memory rate limiter", "addr", cfg.redis.addr, "error", err)
		} else {
			logger.Infow("redis rate limiter enabled", "addr", cfg.redis.addr)
			return ratelimiter.NewRedisLimiter(client, cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame)
		}
	}

	return ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)
}

func newMailer(cfg config, logger *zap.SugaredLogger) mailer.Client {
	smtp, err := mailer.NewSMTPMailer(
		cfg.mail.smtp.host,
		cfg.mail.smtp.port,
		cfg.mail.smtp.username,
		cfg.mail.smtp.password,
		cfg.mail.fromEmail,
	)
	if err != nil {
		logger.Warnw("smtp not configured, emails will only be logged", "error", err)
		return mailer.NewLogMailer(logger)
	}
	return smtp
}

func newPushSender(cfg config, logger *zap.SugaredLogger) notifications.PushSender {
	if cfg.expoToken == "" {
		logger.Warn("EXPO_ACCESS_TOKEN not set, push notifications disabled")
		return notifications.NoopSender{}
	}
	return notifications.NewExpoAdapter(cfg.expoToken)
}

var version = "1.0.0"

//	@title			GymSpot API
//	@description	API for GymSpot, a directory of gyms and sports clubs.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

func main() {
	cfg := loadConfig()

	// Logger
	logger, err := NewLogger(cfg.logLevel)
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Database
	pool, err := db.New(
		cfg.db.addr,
		cfg.db.maxConns,
		cfg.db.maxIdleTime,
	)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	if err := db.Migrate(context.Background(), pool); err != nil {
		logger.Fatal(err)
	}

	//storage
	store := storage.NewContainer(pool)

	//cloudinary
	var cld *cloudinary.Cloudinary
	if cfg.cloudinary != "" {
		cld, err = cloudinary.NewFromURL(cfg.cloudinary)
		if err != nil {
			logger.Fatal(err)
		}
	} else {
		logger.Warn("CLOUDINARY_URL not set, photo uploads disabled")
	}

	// Rate limiter
	rateLimiter := newRateLimiter(cfg, logger)

	// Authenticator
	jwtAuthenticator := auth.NewJWTAuthenticator(
		cfg.auth.token.secret,
		cfg.auth.token.refreshSecret,
		cfg.auth.token.iss,
		cfg.auth.token.iss,
		cfg.auth.token.accessTokenExp,
		cfg.auth.token.refreshTokenExp,
	)

	// Payments
	paymentManager := payments.NewPaymentManager()
	if cfg.stripe.secretKey != "" {
		paymentManager.RegisterGateway(payments.StripeProvider, payments.NewStripeAdapter(cfg.stripe.secretKey, cfg.stripe.webhookSecret))
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, paid subscriptions disabled")
	}

	codes, err := promotions.NewCodec(cfg.hashidsSalt)
	if err != nil {
		logger.Fatal(err)
	}

	app := &application{
		config:        cfg,
		logger:        logger,
		store:         store,
		pool:          pool,
		cld:           cld,
		mailer:        newMailer(cfg, logger),
		authenticator: jwtAuthenticator,
		rateLimiter:   rateLimiter,
		search:        search.NewAggregator(store.Venues, logger),
		payments:      paymentManager,
		push:          newPushSender(cfg, logger),
		codes:         codes,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		s := pool.Stat()
		return map[string]any{
			"total_conns":    s.TotalConns(),
			"idle_conns":     s.IdleConns(),
			"acquired_conns": s.AcquiredConns(),
			"max_conns":      s.MaxConns(),
		}
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
