// list-sessions prints the card sessions stored in Redis
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/0niSec/cephalon-seraph/internal/repositories/cardsessions"
)

func main() {
	var redisURL string
	var liveOnly bool

	cmd := &cobra.Command{
		Use:   "list-sessions",
		Short: "List card sessions persisted by the bot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := redis.ParseURL(redisURL)
			if err != nil {
				return fmt.Errorf("invalid redis URL: %w", err)
			}
			client := redis.NewClient(opts)
			defer client.Close()

			snapshots, err := cardsessions.NewRedis(client).List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list card sessions: %w", err)
			}

			now := time.Now()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SESSION\tINSTANCE\tITEM\tVIEW\tPAGE\tSTATE\tMESSAGE")
			for _, s := range snapshots {
				state := "live"
				if !now.Before(s.ExpiresAt) {
					if liveOnly {
						continue
					}
					state = "expired"
				}
				name := "?"
				if s.Record != nil {
					name = s.Record.Name
				}
				instance := s.Instance
				if instance == "" {
					instance = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s/%s\n", s.ID, instance, name, s.View.Label(), s.Page, state, s.ChannelID, s.MessageID)
			}
			return w.Flush()
		},
	}

	defaultURL := os.Getenv("REDIS_URL")
	if defaultURL == "" {
		defaultURL = "redis://localhost:6379/0"
	}
	cmd.Flags().StringVar(&redisURL, "redis-url", defaultURL, "Redis URL")
	cmd.Flags().BoolVar(&liveOnly, "live", false, "Hide sessions past their idle deadline")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
