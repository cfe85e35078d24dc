package bdeck

// ambiguousCategories are source type codes that name a storm class
// rather than an intensity step. TY, HU, and ST are regional labels
// for the same thing (typhoon, hurricane, severe tropical cyclone)
// and MH marks a major hurricane; all four are rederived from wind so
// every basin lands on one ladder.
var ambiguousCategories = map[string]bool{
	"TY": true,
	"HU": true,
	"ST": true,
	"MH": true,
}

// ClassifyCategory maps a fix's sustained wind and source type code
// to its intensity category. Specific codes (TD, TS, EX, SS, SD, LO,
// DB, ...) pass through untouched; ambiguous or missing codes are
// classified from the one-minute sustained wind in knots using
// Saffir-Simpson thresholds:
//
//	>137 kt C5 | >114 C4 | >96 C3 | >83 C2 | >64 C1 | >34 TS | else TD
func ClassifyCategory(wind int, raw string) string {
	if raw != "" && !ambiguousCategories[raw] {
		return raw
	}

	switch {
	case wind > 137:
		return "C5"
	case wind > 114:
		return "C4"
	case wind > 96:
		return "C3"
	case wind > 83:
		return "C2"
	case wind > 64:
		return "C1"
	case wind > 34:
		return "TS"
	default:
		return "TD"
	}
}
