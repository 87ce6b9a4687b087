package widget

import (
	"fmt"

	"github.com/couchcryptid/urban-pulse-widget/internal/domain"
)

// Fixed display strings.
const (
	Title        = "Urban Pulse Labs - Weather Widget"
	Brand        = "URBAN PULSE LABS"
	ForecastHead = "3-DAY URBAN FORECAST"
	// WindLine is a fixed placeholder; wind is not derived.
	WindLine = "WIND: 12 mph NW"
)

// View is every string the widget displays for one bundle.
type View struct {
	Headline    string     `json:"headline"`
	Temperature string     `json:"temperature"`
	Condition   string     `json:"condition"`
	UVIndex     string     `json:"uv_index"`
	Commute     string     `json:"commute"`
	Wind        string     `json:"wind"`
	Cards       []CardView `json:"cards"`
}

// CardView is one rendered forecast card.
type CardView struct {
	Day        string `json:"day"`
	Range      string `json:"range"`
	Icon       string `json:"icon"`
	Condition  string `json:"condition"`
	Suggestion string `json:"suggestion"`
}

// Render maps a bundle to display text. It replaces every field; there is
// no partial rendering.
func Render(b domain.Bundle) View {
	v := View{
		Headline:    b.City,
		Temperature: fmt.Sprintf("%d°F", b.TemperatureF),
		Condition:   b.Condition.String(),
		UVIndex:     fmt.Sprintf("UV INDEX: %d (%s)", b.UVIndex, b.UVLevel),
		Commute:     "COMMUTE: " + b.Commute.String(),
		Wind:        WindLine,
		Cards:       make([]CardView, 0, len(b.Forecast)),
	}
	for _, d := range b.Forecast {
		v.Cards = append(v.Cards, CardView{
			Day:        d.Label,
			Range:      fmt.Sprintf("%d° / %d°", d.HighF, d.LowF),
			Icon:       Icon(d.Condition),
			Condition:  d.Condition.String(),
			Suggestion: "→ " + string(d.Transport),
		})
	}
	return v
}

// Icon returns the emoji shown on a forecast card.
func Icon(c domain.Condition) string {
	switch c {
	case domain.Sunny:
		return "☀️"
	case domain.PartlyCloudy:
		return "⛅"
	case domain.Cloudy:
		return "☁️"
	case domain.Rainy:
		return "🌧️"
	case domain.Cold:
		return "❄️"
	case domain.Hot:
		return "🔥"
	default:
		return "⛅"
	}
}
