package widget

import (
	"testing"

	"github.com/couchcryptid/urban-pulse-widget/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_NewYork(t *testing.T) {
	v := Render(domain.Generate(domain.MustCity("new york")))

	assert.Equal(t, "NEW YORK", v.Headline)
	assert.Equal(t, "57°F", v.Temperature)
	assert.Equal(t, "THUNDERSTORMS", v.Condition)
	assert.Equal(t, "UV INDEX: 3 (MODERATE)", v.UVIndex)
	assert.Equal(t, "COMMUTE: HEAVY DELAYS", v.Commute)
	assert.Equal(t, WindLine, v.Wind)

	require.Len(t, v.Cards, 3)
	assert.Equal(t, CardView{Day: "TODAY", Range: "70° / 60°", Icon: "☀️", Condition: "SUNNY", Suggestion: "→ walk/bike"}, v.Cards[0])
	assert.Equal(t, CardView{Day: "TOMORROW", Range: "64° / 53°", Icon: "🌧️", Condition: "RAINY", Suggestion: "→ use transit"}, v.Cards[1])
	assert.Equal(t, "FRI", v.Cards[2].Day)
}

func TestRender_VeryHighUV(t *testing.T) {
	v := Render(domain.Generate(domain.MustCity("London")))
	assert.Equal(t, "UV INDEX: 9 (VERY HIGH)", v.UVIndex)
	assert.Equal(t, "COMMUTE: MODERATE", v.Commute)
}

func TestIcon(t *testing.T) {
	tests := map[domain.Condition]string{
		domain.Sunny:         "☀️",
		domain.PartlyCloudy:  "⛅",
		domain.Cloudy:        "☁️",
		domain.Rainy:         "🌧️",
		domain.Cold:          "❄️",
		domain.Hot:           "🔥",
		domain.Thunderstorms: "⛅",
	}
	for cond, want := range tests {
		assert.Equal(t, want, Icon(cond), cond.String())
	}
}
