package soccer

import "github.com/XavierBriggs/Herald/pkg/models"

// TeamAliases returns soccer team name substitutions. Patterns are matched against
// normalized names (lowercase, no punctuation) and applied in this order.
func TeamAliases() []models.Alias {
	return []models.Alias{
		{Pattern: "man utd", Replacement: "manchester united"},
		{Pattern: "man united", Replacement: "manchester united"},
		{Pattern: "man city", Replacement: "manchester city"},
		{Pattern: "spurs", Replacement: "tottenham hotspur"},
		{Pattern: "wolves", Replacement: "wolverhampton wanderers"},
		{Pattern: "nottm forest", Replacement: "nottingham forest"},
		{Pattern: "sheff utd", Replacement: "sheffield united"},
		{Pattern: "sheff wed", Replacement: "sheffield wednesday"},
		{Pattern: "west brom", Replacement: "west bromwich albion"},
		{Pattern: "qpr", Replacement: "queens park rangers"},
		{Pattern: "psg", Replacement: "paris saintgermain"},
		{Pattern: "paris sg", Replacement: "paris saintgermain"},
		{Pattern: "bayern munich", Replacement: "bayern munchen"},
		{Pattern: "atletico de madrid", Replacement: "atletico madrid"},
		{Pattern: "athletic club", Replacement: "athletic bilbao"},
		{Pattern: "inter milan", Replacement: "internazionale"},
	}
}

// LeagueAliases maps provider league names to the names stored on fixtures.
// Keys are matched exactly, before any lowercasing.
func LeagueAliases() map[string]string {
	return map[string]string{
		"English Premier League":       "Premier League",
		"EPL":                          "Premier League",
		"English League Championship":  "Championship",
		"Spanish La Liga":              "La Liga",
		"LaLiga":                       "La Liga",
		"German Bundesliga":            "Bundesliga",
		"Italian Serie A":              "Serie A",
		"French Ligue 1":               "Ligue 1",
		"Dutch Eredivisie":             "Eredivisie",
		"UEFA Champions League":        "Champions League",
		"UEFA Europa League":           "Europa League",
		"American Major League Soccer": "MLS",
	}
}
