package corrector

import "strings"

// Unit suffix tables used by the correction-call skip heuristics: a
// numeral immediately followed by one of these is not a spelling
// candidate.
var unitSuffixes = []string{
	"Wh", "kWh", "MWh", "GWh", "TWh",
	"Ah", "mAh",
	"W", "kW", "MW", "GW",
	"VA", "kVA", "MVA",
	"Hz", "kHz", "MHz", "GHz", "THz",
	"bps", "kbps", "Kbps", "Mbps", "Gbps",
	"bit", "kbit", "Mbit", "Gbit",
	"B", "kB", "KB", "MB", "GB", "TB", "PB",
	"iB", "KiB", "MiB", "GiB", "TiB",
	"dB", "dBm", "dBi",
	"Pa", "kPa", "MPa", "hPa",
	"ppm", "ppb",
	"ms", "ns",
}

var lowercaseUnits = []string{
	"km", "m", "cm", "mm", "mi", "ft", "in", "yd", "nm",
	"kg", "g", "mg", "lb", "oz", "t",
	"l", "ml", "cl", "dl", "gal",
	"h", "min", "s",
	"kb", "mb", "gb", "tb", "pb",
	"rpm",
}

var uppercaseUnits = []string{
	"KB", "MB", "GB", "TB", "PB", "EB",
	"CPU", "GPU", "RAM", "ROM", "SSD", "HDD",
	"HZ", "KHZ", "MHZ", "GHZ",
	"DB", "DBM",
	"KW", "MW", "GW", "WH", "KWH", "MWH",
	"VA", "KVA", "MVA",
	"RPM", "BPS", "FPS",
	"PA", "KPA", "MPA",
	"PPM", "PPB",
}

// IsUnitLike reports whether word is a recognized unit/abbreviation
// token, case-sensitive for the mixed-case and all-caps tables (so "Wh"
// is a unit but "wh" is not) and case-insensitive for the lowercase
// table.
func IsUnitLike(word string) bool {
	for _, u := range unitSuffixes {
		if word == u {
			return true
		}
	}
	for _, u := range uppercaseUnits {
		if word == u {
			return true
		}
	}
	lower := strings.ToLower(word)
	for _, u := range lowercaseUnits {
		if lower == u {
			return true
		}
	}
	return false
}
