package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sokastore/soka/internal/api"
	"github.com/sokastore/soka/internal/auth"
	"github.com/sokastore/soka/internal/cart"
	"github.com/sokastore/soka/internal/config"
	"github.com/sokastore/soka/internal/notify"
)

// app bundles everything a command needs: config, the session store,
// the API client and the cart mirror. Commands build one per run, the
// way each storefront page wired its own fetch calls.
type app struct {
	cfg     *config.Config
	session *auth.Store
	api     *api.Client
	cart    *cart.Mirror
}

func loadApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	session, err := auth.NewStore(cfg.Session.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, session)
	mirror := cart.New(client, notify.NewTerminalNotifier())

	return &app{
		cfg:     cfg,
		session: session,
		api:     client,
		cart:    mirror,
	}, nil
}

// cmdContext bounds every command's network work with one timeout,
// slightly above the per-request one so a slow call fails there first.
func cmdContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// truncate shortens a cell to maxLen for table output.
func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// containsFold is the storefront's search: case-insensitive substring.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// money formats a price for table output.
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
