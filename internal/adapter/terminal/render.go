// Package terminal draws the widget as a text card for consoles.
package terminal

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/couchcryptid/urban-pulse-widget/internal/domain"
	"github.com/couchcryptid/urban-pulse-widget/internal/widget"
)

// Render lays out a view in the same three bands as the window: headline,
// current conditions beside the urban metrics, then the forecast strip.
func Render(v widget.View) string {
	current := lipgloss.JoinVertical(lipgloss.Left,
		temperatureStyle.Render(v.Temperature),
		conditionStyle.Render(v.Condition),
	)
	metrics := lipgloss.JoinVertical(lipgloss.Left,
		uvStyle.Render(v.UVIndex),
		commuteStyle.Render(v.Commute),
		conditionStyle.Render(v.Wind),
	)
	center := lipgloss.JoinHorizontal(lipgloss.Top, current, "    ", metrics)

	cards := make([]string, 0, len(v.Cards))
	for _, c := range v.Cards {
		cards = append(cards, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			sectionStyle.Render(c.Day),
			c.Range,
			c.Icon+" "+c.Condition,
			suggestionStyle.Render(c.Suggestion),
		)))
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		headlineStyle.Render(v.Headline),
		"",
		center,
		"",
		sectionStyle.Render(widget.ForecastHead),
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
	))
}

// RenderError formats a rejected city the way the warning dialog words it.
func RenderError(err error) string {
	msg := err.Error()
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		msg = verr.Message()
	}
	return errorStyle.Render("City Name Error: " + msg)
}
