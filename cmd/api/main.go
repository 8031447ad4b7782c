package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/helo/app"
	"github.com/dmitrymomot/helo/migrations"
	"github.com/dmitrymomot/helo/modules/account"
	"github.com/dmitrymomot/helo/modules/notification"
	"github.com/dmitrymomot/helo/pkg/config"
	"github.com/dmitrymomot/helo/pkg/httpserver"
	"github.com/dmitrymomot/helo/pkg/jwt"
	"github.com/dmitrymomot/helo/pkg/logger"
	"github.com/dmitrymomot/helo/pkg/password"
	"github.com/dmitrymomot/helo/pkg/pg"
	"github.com/dmitrymomot/helo/pkg/ratelimiter"
	"github.com/dmitrymomot/helo/pkg/redis"
	"github.com/dmitrymomot/helo/pkg/requestid"
)

func main() {
	var appCfg app.Config
	config.MustLoad(&appCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), appCfg, log); err != nil {
		log.Error("api stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, appCfg app.Config, log *slog.Logger) error {
	var (
		pgCfg     pg.Config
		redisCfg  redis.Config
		jwtCfg    jwt.Config
		hashCfg   password.Config
		serverCfg httpserver.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&pgCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&jwtCfg) },
		func() error { return config.Load(&hashCfg) },
		func() error { return config.Load(&serverCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if pgCfg.AutoMigrate {
		if err := pg.Migrate(ctx, pool, migrations.FS, pgCfg, log); err != nil {
			return err
		}
	}

	tokens, err := jwt.NewFromConfig(jwtCfg)
	if err != nil {
		return err
	}
	hasher, err := password.NewFromConfig(hashCfg)
	if err != nil {
		return err
	}

	checks := []httpserver.Check{{Name: "postgres", Func: pg.Healthcheck(pool)}}

	var store ratelimiter.Store
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()

		store = ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(appCfg.Name+":ratelimit:"))
		checks = append(checks, httpserver.Check{Name: "redis", Func: redis.Healthcheck(client)})
	} else {
		memory := ratelimiter.NewMemoryStore()
		defer memory.Close()
		store = memory
	}

	loginLimiter, err := app.NewLoginLimiter(appCfg, store)
	if err != nil {
		return err
	}

	router := app.NewRouter(appCfg, app.Deps{
		Logger: log,
		Accounts: account.NewService(account.NewPGStorage(pool), tokens, hasher,
			account.WithLogger(log),
		),
		Notifications: notification.NewService(notification.NewPGStorage(pool),
			notification.WithLogger(log),
			notification.WithAllowHide(appCfg.NotificationAllowHide),
		),
		Tokens:       tokens,
		LoginLimiter: loginLimiter,
		Checks:       checks,
	})

	server := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	return server.Run(ctx, router)
}
