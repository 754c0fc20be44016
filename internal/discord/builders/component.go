package builders

import (
	"strconv"

	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/0niSec/cephalon-seraph/internal/discord/core"
	"github.com/0niSec/cephalon-seraph/internal/navigation"
	"github.com/bwmarrin/discordgo"
)

const (
	// Discord allows five buttons per action row
	maxPerRow = 5

	// SearchDomain is the command whose cards carry the controls
	SearchDomain = "search"

	// Card control actions, encoded as search:<action>:<session>[:arg]
	ActionView      = "view"
	ActionPage      = "page"
	ActionComponent = "component"
)

var searchIDs = core.NewCustomIDBuilder(SearchDomain)

// rowLayout packs components into action rows
type rowLayout struct {
	rows    []discordgo.MessageComponent
	pending []discordgo.MessageComponent
}

func (l *rowLayout) add(c discordgo.MessageComponent) {
	if len(l.pending) == maxPerRow {
		l.flush()
	}
	l.pending = append(l.pending, c)
}

// alone puts c on a row of its own, as select menus require
func (l *rowLayout) alone(c discordgo.MessageComponent) {
	l.flush()
	l.pending = append(l.pending, c)
	l.flush()
}

func (l *rowLayout) flush() {
	if len(l.pending) == 0 {
		return
	}
	l.rows = append(l.rows, discordgo.ActionsRow{Components: l.pending})
	l.pending = nil
}

// CardControls lays out the view menu, component buttons and page buttons of
// a card. Page buttons appear only in directions that have a page. A disabled
// card keeps its layout with every control greyed out.
func CardControls(c navigation.Controls) []discordgo.MessageComponent {
	var l rowLayout

	if len(c.Menu) > 0 {
		options := make([]discordgo.SelectMenuOption, len(c.Menu))
		for i, opt := range c.Menu {
			options[i] = discordgo.SelectMenuOption{
				Label:   opt.View.Label(),
				Value:   opt.View.String(),
				Default: opt.Selected,
			}
		}
		l.alone(discordgo.SelectMenu{
			CustomID:    searchIDs.ID(ActionView, c.SessionID),
			Placeholder: "Choose a view",
			Options:     options,
			Disabled:    c.Disabled,
		})
	}

	for _, comp := range c.Components {
		l.add(discordgo.Button{
			Label:    comp.Label,
			Style:    discordgo.SecondaryButton,
			CustomID: searchIDs.ID(ActionComponent, c.SessionID, strconv.Itoa(comp.Index)),
			Disabled: c.Disabled,
		})
	}
	l.flush()

	if c.Previous {
		l.add(pageButton("Previous", c, navigation.Previous))
	}
	if c.Next {
		l.add(pageButton("Next", c, navigation.Next))
	}
	l.flush()

	return l.rows
}

func pageButton(label string, c navigation.Controls, dir navigation.Direction) discordgo.Button {
	return discordgo.Button{
		Label:    label,
		Style:    discordgo.PrimaryButton,
		CustomID: searchIDs.ID(ActionPage, c.SessionID, dir.String()),
		Disabled: c.Disabled,
	}
}

// CardResponse packs a rendered card and its controls into one message
func CardResponse(p *card.Payload, c navigation.Controls) *core.Response {
	return core.NewEmbedResponse(CardEmbed(p)).WithComponents(CardControls(c)...)
}
