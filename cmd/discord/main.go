// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"server-warden/internal/config"
	"server-warden/internal/dashboard"
	"server-warden/internal/discord"
)

func main() {
	log.Println("[INFO] Starting server-warden bot...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DashboardPassword == "" {
		log.Fatal("DASHBOARD_PASSWORD is not set")
	}

	bot, err := discord.NewBot(cfg)
	if err != nil {
		log.Fatal(err)
	}

	go dashboard.New(cfg, bot.Actions(), bot.Audit()).Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
