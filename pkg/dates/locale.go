package dates

import (
	"strings"

	"golang.org/x/text/language"
)

// defaultYearAndMonthFormat is the CLDR pattern used for every language not
// listed in yearAndMonthFormats.
const defaultYearAndMonthFormat = "MMM y"

// yearAndMonthFormats maps language subtags to "year and month" display
// patterns. Sourced from the Unicode CLDR, version 27.1.
var yearAndMonthFormats = map[string]string{
	"be":  "LLL y",
	"bg":  "MM.y 'г'.",
	"bs":  "MMM y.",
	"ca":  "LLL y",
	"cs":  "LLLL y",
	"dz":  "y སྤྱི་ཟླ་MMM",
	"eu":  "y MMM",
	"fi":  "LLL y",
	"fo":  "y MMM",
	"hr":  "LLL y.",
	"hu":  "y. MMM",
	"hy":  "yթ. LLL",
	"ja":  "y年M月",
	"ka":  "MMM, y",
	"kea": "MMM 'di' y",
	"ko":  "y년 MMM",
	"ky":  "y-'ж'. MMM",
	"lt":  "y-MM",
	"lv":  "y. 'g'. MMM",
	"mk":  "MMM y 'г'.",
	"ml":  "y MMM",
	"mn":  "y MMM",
	"ne":  "y MMM",
	"os":  "LLL y",
	"pl":  "MM.y",
	"pt":  "MM/y",
	"ru":  "LLL y",
	"seh": "MMM 'de' y",
	"si":  "y MMM",
	"sk":  "LLLL y",
	"sr":  "MMM y.",
	"uk":  "LLL y",
	"uz":  "y MMM",
}

// YearAndMonthFormat returns the CLDR "year and month" display pattern for a
// locale. Only the language subtag is taken into account; region and script
// are ignored. Unmapped languages get the default pattern. Total function,
// no error path.
func YearAndMonthFormat(locale language.Tag) string {
	base, _ := locale.Base()
	if format, ok := yearAndMonthFormats[strings.ToLower(base.String())]; ok {
		return format
	}
	return defaultYearAndMonthFormat
}
