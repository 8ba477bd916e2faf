package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"eventdesk/internal/application"
	"eventdesk/internal/domain"
	"eventdesk/internal/infrastructure/api"
	"eventdesk/internal/infrastructure/metrics"
	"eventdesk/internal/ports/input"
)

type watchOptions struct {
	roomID     int
	token      string
	tenantID   string
	tenantSlug string
	user       string
}

func watchCmd() *cobra.Command {
	var opts watchOptions
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow a chat room in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.roomID <= 0 {
				return fmt.Errorf("--room is required")
			}
			if opts.token == "" {
				opts.token = os.Getenv("EVENTDESK_TOKEN")
			}
			return watch(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&opts.roomID, "room", 0, "chat room id")
	cmd.Flags().StringVar(&opts.token, "token", "", "bearer token (default $EVENTDESK_TOKEN)")
	cmd.Flags().StringVar(&opts.tenantID, "tenant-id", "", "tenant id sent as X-Tenant-ID")
	cmd.Flags().StringVar(&opts.tenantSlug, "tenant-slug", "", "tenant slug")
	cmd.Flags().StringVar(&opts.user, "user", "", "your email, used to highlight your messages")
	return cmd
}

func watch(parent context.Context, opts watchOptions, out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = domain.ContextWithScope(ctx, domain.Scope{
		Token:      opts.token,
		TenantID:   opts.tenantID,
		TenantSlug: opts.tenantSlug,
		Locale:     cfg.DefaultLocale,
		Actor:      opts.user,
	})

	recorder := metrics.Recorder{}
	chat := application.NewChatService(api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, recorder), recorder)

	lastID := 0
	poller := application.NewPoller(chat, recorder, opts.roomID, cfg.ChatPollInterval, func(s input.RoomSnapshot) {
		for _, m := range s.Messages {
			if m.Pending || m.ID <= lastID {
				continue
			}
			lastID = m.ID
			marker := " "
			if opts.user != "" && m.SenderEmail == opts.user {
				marker = "*"
			}
			fmt.Fprintf(out, "%s [%s] %s: %s\n", marker, m.CreatedAt, senderName(m.SenderName, m.SenderEmail), m.Message)
		}
		if !s.Status.CanSendMessages && s.Status.Message != "" {
			fmt.Fprintf(out, "  (read-only: %s)\n", s.Status.Message)
		}
	})

	slog.Info("watching chat room", "room_id", opts.roomID, "interval", cfg.ChatPollInterval)
	poller.Run(ctx)
	return nil
}

func senderName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
