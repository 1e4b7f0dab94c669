package basketball_nba

import "github.com/XavierBriggs/Herald/pkg/models"

// TeamAliases returns the NBA team name substitutions, applied in order on normalized names.
// Handles variations like "LA Lakers" vs "Los Angeles Lakers".
func TeamAliases() []models.Alias {
	return []models.Alias{
		{Pattern: "la lakers", Replacement: "los angeles lakers"},
		{Pattern: "la clippers", Replacement: "los angeles clippers"},
		{Pattern: "ny knicks", Replacement: "new york knicks"},
		{Pattern: "gs warriors", Replacement: "golden state warriors"},
		{Pattern: "sa spurs", Replacement: "san antonio spurs"},
		{Pattern: "okc thunder", Replacement: "oklahoma city thunder"},
		{Pattern: "no pelicans", Replacement: "new orleans pelicans"},
		{Pattern: "philly 76ers", Replacement: "philadelphia 76ers"},
		{Pattern: "sixers", Replacement: "philadelphia 76ers"},
		{Pattern: "cavs", Replacement: "cavaliers"},
		{Pattern: "mavs", Replacement: "mavericks"},
	}
}

// LeagueAliases maps provider league names to the names stored on fixtures
func LeagueAliases() map[string]string {
	return map[string]string{
		"National Basketball Association": "NBA",
		"NBA Regular Season":              "NBA",
		"NBA Playoffs":                    "NBA",
		"NBA Cup":                         "NBA",
	}
}
