package builders

import (
	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/bwmarrin/discordgo"
)

// ColorInfo is used for help and notice embeds
const ColorInfo = 0x0099ff

// InfoEmbed is a plain blue embed with block fields
func InfoEmbed(title, description, footer string, fields ...card.Field) *discordgo.MessageEmbed {
	return CardEmbed(&card.Payload{
		Title:       title,
		Description: description,
		Color:       ColorInfo,
		Footer:      footer,
		Fields:      fields,
	})
}

// CardEmbed converts a rendered card. Empty thumbnail and footer are left off
// so Discord does not draw empty boxes.
func CardEmbed(p *card.Payload) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		Title:       p.Title,
		Description: p.Description,
		URL:         p.URL,
		Color:       p.Color,
		Fields:      make([]*discordgo.MessageEmbedField, 0, len(p.Fields)),
	}
	if p.Thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: p.Thumbnail}
	}
	if p.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: p.Footer}
	}
	for _, f := range p.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	return embed
}
