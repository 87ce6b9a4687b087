// Package domain derives synthetic weather for a city name.
//
// # City Names
//
// A city name is accepted when it is at least two characters long, starts
// with an ASCII letter, and otherwise contains only letters, spaces, hyphens
// and apostrophes:
//
//	^[A-Za-z][A-Za-z '-]*$
//
// The same character predicate ([IsCityRune]) backs both the whole-string
// check in [Validate] and the per-keystroke filter used by the UI shells, so
// the two can never disagree about which characters are allowed.
//
// # Derivation
//
// Every value in a [Bundle] is a pure function of the uppercased city name.
// The name is hashed with the Java String.hashCode polynomial (base 31 over
// UTF-16 code units, 32-bit wraparound); see [StringHash]. From that hash:
//
//	temperature  50 + |hash mod 40|          (50..89 °F)
//	condition    CONDITIONS[|hash mod 6|]
//	uv index     |hash mod 11|               (0..10)
//	uv level     <=2 LOW | <=5 MODERATE | <=7 HIGH | VERY HIGH
//	commute      RAINY/THUNDERSTORMS heavy delays | CLOUDY moderate | good
//
// Modulo is truncated (the sign follows the dividend), as in Java.
//
// # Forecast Stream
//
// The three forecast days draw from a port of java.util.Random seeded with
// the same hash, so a city produces the same cards as the Java widget it
// replaces. Per day, in order: base = 60 + next(20), high = base + next(5),
// low = base - 5 - next(5), then a condition draw next(4) unless the base
// temperature is cold (<45) or hot (>85). With base in 60..79 the cold and
// hot branches never trigger, and then no condition draw is consumed.
package domain
