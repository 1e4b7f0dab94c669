package transform

import "strings"

// defaultCountryAliases maps lowercased country spellings seen in provider feeds to the
// names stored on broadcast rows
var defaultCountryAliases = map[string]string{
	"uk":                       "UK",
	"united kingdom":           "UK",
	"great britain":            "UK",
	"gb":                       "UK",
	"england":                  "UK",
	"scotland":                 "UK",
	"wales":                    "UK",
	"us":                       "USA",
	"usa":                      "USA",
	"united states":            "USA",
	"united states of america": "USA",
	"ie":                       "Ireland",
	"republic of ireland":      "Ireland",
	"de":                       "Germany",
	"deutschland":              "Germany",
	"es":                       "Spain",
	"espana":                   "Spain",
	"españa":                   "Spain",
	"fr":                       "France",
	"it":                       "Italy",
	"italia":                   "Italy",
	"nl":                       "Netherlands",
	"holland":                  "Netherlands",
	"ca":                       "Canada",
	"au":                       "Australia",
}

// CountryTable normalizes country names. Keys are lowercase.
type CountryTable map[string]string

// DefaultCountryTable returns a copy of the built-in country aliases
func DefaultCountryTable() CountryTable {
	table := make(CountryTable, len(defaultCountryAliases))
	for k, v := range defaultCountryAliases {
		table[k] = v
	}
	return table
}

// Normalize returns the canonical country name, or the trimmed input when unknown
func (t CountryTable) Normalize(country string) string {
	country = strings.TrimSpace(country)
	if country == "" {
		return ""
	}
	if canonical, ok := t[strings.ToLower(country)]; ok {
		return canonical
	}
	return country
}
