package domain

import "fmt"

// Condition is a categorical weather state.
type Condition int

const (
	Sunny Condition = iota
	PartlyCloudy
	Cloudy
	Rainy
	Clear
	Thunderstorms
	// Cold and Hot only appear on forecast cards.
	Cold
	Hot
)

// CurrentConditions is indexed by |hash mod 6|. The order is part of the
// derivation and must not change.
var CurrentConditions = [...]Condition{Sunny, PartlyCloudy, Cloudy, Rainy, Clear, Thunderstorms}

var forecastConditions = [...]Condition{Sunny, PartlyCloudy, Cloudy, Rainy}

var conditionLabels = map[Condition]string{
	Sunny:         "SUNNY",
	PartlyCloudy:  "PARTLY CLOUDY",
	Cloudy:        "CLOUDY",
	Rainy:         "RAINY",
	Clear:         "CLEAR",
	Thunderstorms: "THUNDERSTORMS",
	Cold:          "COLD",
	Hot:           "HOT",
}

func (c Condition) String() string {
	if s, ok := conditionLabels[c]; ok {
		return s
	}
	return fmt.Sprintf("Condition(%d)", int(c))
}

func (c Condition) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Condition) UnmarshalText(text []byte) error {
	for cond, label := range conditionLabels {
		if label == string(text) {
			*c = cond
			return nil
		}
	}
	return fmt.Errorf("unknown condition %q", text)
}

// UVLevel bands the numeric UV index.
type UVLevel int

const (
	UVLow UVLevel = iota
	UVModerate
	UVHigh
	UVVeryHigh
)

func (l UVLevel) String() string {
	switch l {
	case UVLow:
		return "LOW"
	case UVModerate:
		return "MODERATE"
	case UVHigh:
		return "HIGH"
	case UVVeryHigh:
		return "VERY HIGH"
	default:
		return fmt.Sprintf("UVLevel(%d)", int(l))
	}
}

func (l UVLevel) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *UVLevel) UnmarshalText(text []byte) error {
	for _, v := range []UVLevel{UVLow, UVModerate, UVHigh, UVVeryHigh} {
		if v.String() == string(text) {
			*l = v
			return nil
		}
	}
	return fmt.Errorf("unknown uv level %q", text)
}

// LevelForUV bands a UV index: <=2 low, <=5 moderate, <=7 high, else very high.
func LevelForUV(index int) UVLevel {
	switch {
	case index <= 2:
		return UVLow
	case index <= 5:
		return UVModerate
	case index <= 7:
		return UVHigh
	default:
		return UVVeryHigh
	}
}

// Commute estimates commute difficulty.
type Commute int

const (
	CommuteGood Commute = iota
	CommuteModerate
	CommuteHeavyDelays
)

func (c Commute) String() string {
	switch c {
	case CommuteGood:
		return "GOOD"
	case CommuteModerate:
		return "MODERATE"
	case CommuteHeavyDelays:
		return "HEAVY DELAYS"
	default:
		return fmt.Sprintf("Commute(%d)", int(c))
	}
}

func (c Commute) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Commute) UnmarshalText(text []byte) error {
	for _, v := range []Commute{CommuteGood, CommuteModerate, CommuteHeavyDelays} {
		if v.String() == string(text) {
			*c = v
			return nil
		}
	}
	return fmt.Errorf("unknown commute %q", text)
}

// CommuteFor derives commute status from the current condition.
func CommuteFor(c Condition) Commute {
	switch c {
	case Rainy, Thunderstorms:
		return CommuteHeavyDelays
	case Cloudy:
		return CommuteModerate
	default:
		return CommuteGood
	}
}

// Transport is the suggestion printed on a forecast card.
type Transport string

const (
	TransportTransit Transport = "use transit"
	TransportBike    Transport = "bike recommended"
	TransportCar     Transport = "car recommended"
	TransportBus     Transport = "bus optimal"
	TransportWalk    Transport = "walk/bike"
)

// SuggestTransport picks a transport suggestion. The first matching rule wins.
func SuggestTransport(c Condition, highF, lowF int) Transport {
	switch {
	case c == Rainy || c == Thunderstorms:
		return TransportTransit
	case c == Sunny && highF > 75:
		return TransportBike
	case lowF < 40:
		return TransportCar
	case c == Cloudy:
		return TransportBus
	default:
		return TransportWalk
	}
}

// ForecastLength is the number of forecast cards.
const ForecastLength = 3

// ForecastDays are the card labels, in draw order.
var ForecastDays = [ForecastLength]string{"TODAY", "TOMORROW", "FRI"}

// ForecastDay is one card of the three-day strip.
type ForecastDay struct {
	Label     string    `json:"label"`
	HighF     int       `json:"high_f"`
	LowF      int       `json:"low_f"`
	Condition Condition `json:"condition"`
	Transport Transport `json:"transport_suggestion"`
}

// Bundle is the full set of synthetic values shown for one city.
type Bundle struct {
	City         string                      `json:"city"`
	TemperatureF int                         `json:"temperature_f"`
	Condition    Condition                   `json:"condition"`
	UVIndex      int                         `json:"uv_index"`
	UVLevel      UVLevel                     `json:"uv_level"`
	Commute      Commute                     `json:"commute"`
	Forecast     [ForecastLength]ForecastDay `json:"forecast"`
}

const (
	coldBelowF = 45
	hotAboveF  = 85
)

// Generate derives the weather bundle for city. It is pure: the same name,
// in any letter case, always yields an identical Bundle.
func Generate(city CityName) Bundle {
	upper := city.Upper()
	hash := StringHash(upper)

	condition := CurrentConditions[absMod(hash, int32(len(CurrentConditions)))]
	uv := absMod(hash, 11)

	return Bundle{
		City:         upper,
		TemperatureF: 50 + absMod(hash, 40),
		Condition:    condition,
		UVIndex:      uv,
		UVLevel:      LevelForUV(uv),
		Commute:      CommuteFor(condition),
		Forecast:     forecast(hash),
	}
}

func forecast(hash int32) [ForecastLength]ForecastDay {
	var days [ForecastLength]ForecastDay
	rnd := newJavaRandom(int64(hash))

	for i, label := range ForecastDays {
		base := 60 + int(rnd.nextInt(20))
		high := base + int(rnd.nextInt(5))
		low := base - 5 - int(rnd.nextInt(5))

		var cond Condition
		switch {
		case base < coldBelowF:
			cond = Cold
		case base > hotAboveF:
			cond = Hot
		default:
			cond = forecastConditions[rnd.nextInt(int32(len(forecastConditions)))]
		}

		days[i] = ForecastDay{
			Label:     label,
			HighF:     high,
			LowF:      low,
			Condition: cond,
			Transport: SuggestTransport(cond, high, low),
		}
	}
	return days
}

// absMod is |a mod m| with truncated modulo, as Math.abs(a % m) in Java.
func absMod(a, m int32) int {
	r := a % m
	if r < 0 {
		r = -r
	}
	return int(r)
}
