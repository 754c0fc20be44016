package routers

import (
	"fmt"
	"log"

	"github.com/0niSec/cephalon-seraph/internal/discord/builders"
	"github.com/0niSec/cephalon-seraph/internal/discord/handlers"
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	"github.com/bwmarrin/discordgo"
)

const (
	HelpCommand   = "help"
	ReloadCommand = "reload"
)

var ownerOnly int64 = discordgo.PermissionAdministrator

// Commands returns the application commands the bot answers
func Commands() []*discordgo.ApplicationCommand {
	families := []item.Family{item.FamilyWeapon, item.FamilyMod, item.FamilyArcane, item.FamilyResource}

	subcommands := make([]*discordgo.ApplicationCommandOption, len(families))
	for i, f := range families {
		subcommands[i] = &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        f.Command(),
			Description: fmt.Sprintf("Look up a %s", f.String()),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         handlers.NameOption,
					Description:  fmt.Sprintf("%s name", f.Label()),
					Required:     true,
					Autocomplete: true,
				},
			},
		}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        builders.SearchDomain,
			Description: "Look up Warframe items",
			Options:     subcommands,
		},
		{
			Name:        HelpCommand,
			Description: "Show how to use the bot",
		},
		{
			Name:                     ReloadCommand,
			Description:              "Reload the emoji table (bot owner only)",
			DefaultMemberPermissions: &ownerOnly,
		},
	}
}

// RegisterCommands replaces the registered commands with Commands(). An empty
// guildID registers them globally.
func RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	created, err := s.ApplicationCommandBulkOverwrite(appID, guildID, Commands())
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	for _, cmd := range created {
		log.Printf("Registered command: %s", cmd.Name)
	}
	return nil
}
