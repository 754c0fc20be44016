package main

import (
	"net/http"
	"time"

	"github.com/0niSec/cephalon-seraph/internal/clients/market"
	"github.com/0niSec/cephalon-seraph/internal/clients/warframestat"
	"github.com/0niSec/cephalon-seraph/internal/emoji"
	"github.com/0niSec/cephalon-seraph/internal/services"
	"github.com/spf13/cobra"
)

var (
	itemsURL  string
	marketURL string
	emojiFile string
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "card-preview",
	Short:         "Render Warframe item cards in the terminal",
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&itemsURL, "items-url", warframestat.DefaultBaseURL, "WarframeStat API base URL")
	rootCmd.PersistentFlags().StringVar(&marketURL, "market-url", market.DefaultBaseURL, "warframe.market API base URL")
	rootCmd.PersistentFlags().StringVar(&emojiFile, "emoji", "", "emoji table YAML file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "request timeout")

	rootCmd.AddCommand(showCmd, dropsCmd)
}

// newProvider builds the same item service the bot uses
func newProvider() (*services.Provider, error) {
	httpClient := &http.Client{Timeout: timeout}

	itemsClient, err := warframestat.New(&warframestat.Config{BaseURL: itemsURL, HTTPClient: httpClient})
	if err != nil {
		return nil, err
	}
	marketClient, err := market.New(&market.Config{BaseURL: marketURL, HTTPClient: httpClient})
	if err != nil {
		return nil, err
	}

	return services.NewProvider(&services.ProviderConfig{
		ItemsClient:  itemsClient,
		MarketClient: marketClient,
	}), nil
}

func newEmojiStore() (*emoji.Store, error) {
	return emoji.NewStore(emojiFile)
}
