package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mbeoliero/kit/log"

	"github.com/alzin/comy-chatsync/internal/channel"
	"github.com/alzin/comy-chatsync/internal/config"
	"github.com/alzin/comy-chatsync/internal/convsync"
	"github.com/alzin/comy-chatsync/internal/provider"
	"github.com/alzin/comy-chatsync/pkg/constant"
	"github.com/alzin/comy-chatsync/pkg/jwt"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.CtxError(ctx, "failed to load config: %v", err)
		panic(err)
	}

	// The viewer identity comes out of the session token
	viewerId, err := jwt.ViewerId(cfg.Session.Token, cfg.Session.JWTSecret)
	if err != nil {
		log.CtxError(ctx, "failed to resolve viewer from session token: %v", err)
		panic(err)
	}
	log.CtxInfo(ctx, "session bound: viewer_id=%s, platform=%s",
		viewerId, constant.PlatformIdToName(cfg.Session.PlatformId))

	// Snapshot provider
	prov, err := provider.NewHTTPProvider(&cfg.API, provider.WithToken(cfg.Session.Token))
	if err != nil {
		log.CtxError(ctx, "failed to create snapshot provider: %v", err)
		panic(err)
	}

	// Event channel
	ch, err := channel.Dial(ctx, &cfg.WebSocket, cfg.Session.Token)
	if err != nil {
		log.CtxError(ctx, "failed to dial event channel: %v", err)
		panic(err)
	}
	log.CtxInfo(ctx, "event channel connected: conn_id=%s", ch.ConnId())

	syncer := convsync.New(cfg, prov, ch)

	// Drive the event stream for the lifetime of the view
	go func() {
		if err := ch.Run(ctx); err != nil && err != context.Canceled {
			log.CtxWarn(ctx, "event channel ended: %v", err)
		}
	}()

	// Initial snapshot. A failed load keeps the (empty) prior list and
	// is not fatal; the caller may re-trigger Load.
	if err := syncer.Load(ctx, viewerId); err != nil {
		log.CtxWarn(ctx, "initial snapshot load failed: %v", err)
	} else {
		log.CtxInfo(ctx, "conversation list ready: conversations=%d", syncer.Len())
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.CtxInfo(ctx, "shutting down...")

	syncer.Reset()
	if err := ch.Close(); err != nil {
		log.CtxWarn(ctx, "channel close error: %v", err)
	}
	cancel()

	log.CtxInfo(ctx, "chatsync stopped")
}
