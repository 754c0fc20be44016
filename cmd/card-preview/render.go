package main

import (
	"fmt"
	"strings"

	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	"github.com/charmbracelet/lipgloss"
)

var (
	fieldNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	descriptionStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(lipgloss.Color("250"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	viewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	selectedViewStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))
)

func hexColor(c int) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06x", c))
}

// renderPayload draws a card as a bordered box in the card's color
func renderPayload(p *card.Payload) string {
	color := hexColor(p.Color)

	var blocks []string
	blocks = append(blocks, lipgloss.NewStyle().Bold(true).Foreground(color).Render(p.Title))
	if p.URL != "" {
		blocks = append(blocks, footerStyle.Render(p.URL))
	}
	if p.Description != "" {
		blocks = append(blocks, descriptionStyle.Render(p.Description))
	}

	// Inline fields sit side by side, like they do in an embed
	var row []string
	flush := func() {
		if len(row) > 0 {
			blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	for _, f := range p.Fields {
		block := lipgloss.NewStyle().MarginRight(3).Render(fieldNameStyle.Render(f.Name) + "\n" + f.Value)
		if !f.Inline {
			flush()
			blocks = append(blocks, block)
			continue
		}
		row = append(row, block)
		if len(row) == 3 {
			flush()
		}
	}
	flush()

	if p.Footer != "" {
		blocks = append(blocks, footerStyle.Render(p.Footer))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color).
		PaddingLeft(1).
		Render(strings.Join(blocks, "\n\n"))
}

// renderViews lists the menu entries the card would offer
func renderViews(rec *item.Record, current card.ViewKind) string {
	var parts []string
	for _, v := range card.OfferedViews(rec) {
		if v == current {
			parts = append(parts, selectedViewStyle.Render("["+v.Label()+"]"))
			continue
		}
		parts = append(parts, viewStyle.Render(v.Label()))
	}
	return viewStyle.Render("views: ") + strings.Join(parts, viewStyle.Render(" | "))
}

func renderDrops(title string, drops []item.Drop) string {
	lines := []string{fieldNameStyle.Render(title + " drops")}
	for _, d := range drops {
		line := fmt.Sprintf("%-40s %6.2f%%", d.Location, d.Chance*100)
		if d.Rarity != "" {
			line += "  " + footerStyle.Render(d.Rarity)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
