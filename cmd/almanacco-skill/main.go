package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"almanacco/internal/platform/config"
	"almanacco/internal/platform/logger"
	phttp "almanacco/internal/platform/net/http"
	"almanacco/internal/platform/net/middleware"
	"almanacco/internal/platform/store"

	"almanacco/internal/modkit"
	eventsmod "almanacco/internal/services/events/module"
	skilldom "almanacco/internal/services/skill/domain"
	skillmod "almanacco/internal/services/skill/module"
)

func main() {
	// service-scoped config for HTTP etc (CORE_SKILL_*)
	root := config.New()
	skillCfg := root.Prefix("CORE_SKILL_")

	ddbCfg := root.Prefix("SERVICE_DYNAMO_") // ddbCfg lives under SERVICE_DYNAMO_*

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// open the platform store (dynamodb table)
	st, err := store.Open(
		ctx,
		store.Config{
			Table:                ddbCfg.MayString("TABLE", "almanacco-events"),
			Region:               ddbCfg.MayString("REGION", "eu-west-1"),
			Endpoint:             ddbCfg.MayString("ENDPOINT", ""),
			SkipSchemaValidation: ddbCfg.MayBool("SKIP_SCHEMA_CHECK", false),
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	deps := modkit.Deps{Log: *l, Cfg: root, DB: st}

	// modules: events owns persistence, skill owns the webhook
	ev := eventsmod.New(deps)
	sk := skillmod.New(deps,
		modkit.WithPorts(skilldom.Ports{
			Store: ev.Ports().(eventsmod.Ports).Store,
		}),
		modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
	)

	// http server (reads CORE_SKILL_HTTP_ADDR)
	srv := phttp.NewServer(skillCfg)
	r := srv.Router()
	r.Use(middleware.Defaults()...)
	r.Use(middleware.AccessLog(middleware.AccessLogOptions{
		Slow: skillCfg.MayDuration("SLOW_TURN", 2*time.Second),
	}))
	r.Use(middleware.Heartbeat("/healthz"))
	sk.MountRoutes(r)

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			l.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
