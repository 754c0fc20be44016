package navigation

import (
	"github.com/0niSec/cephalon-seraph/internal/card"
)

// maxComponentButtons fits the buttons into the four rows left under the menu
const maxComponentButtons = 20

// Controls describes the interactive controls shown under a card
type Controls struct {
	SessionID  string
	Menu       []MenuOption
	Components []ComponentButton
	Previous   bool
	Next       bool
	Disabled   bool
}

// MenuOption is one entry of the view select menu
type MenuOption struct {
	View     card.ViewKind
	Selected bool
}

// ComponentButton opens the drop locations of the component at Index
type ComponentButton struct {
	Index int
	Label string
}

// Controls returns the controls valid for the session. Only valid
// transitions are offered; an expired session gets every control disabled.
func (s Session) Controls() Controls {
	c := Controls{
		SessionID: s.ID,
		Disabled:  s.State == Expired,
	}

	for _, v := range card.OfferedViews(s.Record) {
		c.Menu = append(c.Menu, MenuOption{View: v, Selected: v == s.View})
	}

	if s.View == card.Components {
		for i, comp := range s.Record.Components {
			if !comp.Droppable() {
				continue
			}
			if len(c.Components) == maxComponentButtons {
				break
			}
			c.Components = append(c.Components, ComponentButton{Index: i, Label: comp.Name})
		}
	}

	c.Previous = s.hasPreviousPage()
	c.Next = s.hasNextPage()
	return c
}
