package generator

import (
	"strings"

	"github.com/iby-sports/gridiron-analytics/internal/models"
)

// Static strength tables driving the fallback generators. Strength is a
// 0-100 scalar tuned by eye, not a real rating system.

var nflTeams = []models.Team{
	{Name: "Buffalo Bills", Abbreviation: "BUF", Conference: "AFC", Division: "East", Strength: 90},
	{Name: "Miami Dolphins", Abbreviation: "MIA", Conference: "AFC", Division: "East", Strength: 78},
	{Name: "New England Patriots", Abbreviation: "NE", Conference: "AFC", Division: "East", Strength: 72},
	{Name: "New York Jets", Abbreviation: "NYJ", Conference: "AFC", Division: "East", Strength: 70},
	{Name: "Baltimore Ravens", Abbreviation: "BAL", Conference: "AFC", Division: "North", Strength: 91},
	{Name: "Cincinnati Bengals", Abbreviation: "CIN", Conference: "AFC", Division: "North", Strength: 84},
	{Name: "Cleveland Browns", Abbreviation: "CLE", Conference: "AFC", Division: "North", Strength: 68},
	{Name: "Pittsburgh Steelers", Abbreviation: "PIT", Conference: "AFC", Division: "North", Strength: 80},
	{Name: "Houston Texans", Abbreviation: "HOU", Conference: "AFC", Division: "South", Strength: 82},
	{Name: "Indianapolis Colts", Abbreviation: "IND", Conference: "AFC", Division: "South", Strength: 76},
	{Name: "Jacksonville Jaguars", Abbreviation: "JAX", Conference: "AFC", Division: "South", Strength: 74},
	{Name: "Tennessee Titans", Abbreviation: "TEN", Conference: "AFC", Division: "South", Strength: 65},
	{Name: "Denver Broncos", Abbreviation: "DEN", Conference: "AFC", Division: "West", Strength: 83},
	{Name: "Kansas City Chiefs", Abbreviation: "KC", Conference: "AFC", Division: "West", Strength: 93},
	{Name: "Las Vegas Raiders", Abbreviation: "LV", Conference: "AFC", Division: "West", Strength: 67},
	{Name: "Los Angeles Chargers", Abbreviation: "LAC", Conference: "AFC", Division: "West", Strength: 81},
	{Name: "Dallas Cowboys", Abbreviation: "DAL", Conference: "NFC", Division: "East", Strength: 79},
	{Name: "New York Giants", Abbreviation: "NYG", Conference: "NFC", Division: "East", Strength: 66},
	{Name: "Philadelphia Eagles", Abbreviation: "PHI", Conference: "NFC", Division: "East", Strength: 92},
	{Name: "Washington Commanders", Abbreviation: "WSH", Conference: "NFC", Division: "East", Strength: 84},
	{Name: "Chicago Bears", Abbreviation: "CHI", Conference: "NFC", Division: "North", Strength: 75},
	{Name: "Detroit Lions", Abbreviation: "DET", Conference: "NFC", Division: "North", Strength: 91},
	{Name: "Green Bay Packers", Abbreviation: "GB", Conference: "NFC", Division: "North", Strength: 86},
	{Name: "Minnesota Vikings", Abbreviation: "MIN", Conference: "NFC", Division: "North", Strength: 85},
	{Name: "Atlanta Falcons", Abbreviation: "ATL", Conference: "NFC", Division: "South", Strength: 74},
	{Name: "Carolina Panthers", Abbreviation: "CAR", Conference: "NFC", Division: "South", Strength: 64},
	{Name: "New Orleans Saints", Abbreviation: "NO", Conference: "NFC", Division: "South", Strength: 69},
	{Name: "Tampa Bay Buccaneers", Abbreviation: "TB", Conference: "NFC", Division: "South", Strength: 83},
	{Name: "Arizona Cardinals", Abbreviation: "ARI", Conference: "NFC", Division: "West", Strength: 73},
	{Name: "Los Angeles Rams", Abbreviation: "LAR", Conference: "NFC", Division: "West", Strength: 82},
	{Name: "San Francisco 49ers", Abbreviation: "SF", Conference: "NFC", Division: "West", Strength: 87},
	{Name: "Seattle Seahawks", Abbreviation: "SEA", Conference: "NFC", Division: "West", Strength: 78},
}

var ncaaTeams = []models.Team{
	{Name: "Georgia Bulldogs", Abbreviation: "UGA", Conference: "SEC", Strength: 95},
	{Name: "Ohio State Buckeyes", Abbreviation: "OSU", Conference: "Big Ten", Strength: 94},
	{Name: "Texas Longhorns", Abbreviation: "TEX", Conference: "SEC", Strength: 93},
	{Name: "Oregon Ducks", Abbreviation: "ORE", Conference: "Big Ten", Strength: 92},
	{Name: "Alabama Crimson Tide", Abbreviation: "ALA", Conference: "SEC", Strength: 91},
	{Name: "Penn State Nittany Lions", Abbreviation: "PSU", Conference: "Big Ten", Strength: 90},
	{Name: "Notre Dame Fighting Irish", Abbreviation: "ND", Conference: "Independent", Strength: 89},
	{Name: "Michigan Wolverines", Abbreviation: "MICH", Conference: "Big Ten", Strength: 86},
	{Name: "LSU Tigers", Abbreviation: "LSU", Conference: "SEC", Strength: 86},
	{Name: "Ole Miss Rebels", Abbreviation: "MISS", Conference: "SEC", Strength: 85},
	{Name: "Tennessee Volunteers", Abbreviation: "TENN", Conference: "SEC", Strength: 85},
	{Name: "Clemson Tigers", Abbreviation: "CLEM", Conference: "ACC", Strength: 84},
	{Name: "Miami Hurricanes", Abbreviation: "MIA", Conference: "ACC", Strength: 84},
	{Name: "USC Trojans", Abbreviation: "USC", Conference: "Big Ten", Strength: 82},
	{Name: "Oklahoma Sooners", Abbreviation: "OU", Conference: "SEC", Strength: 81},
	{Name: "Utah Utes", Abbreviation: "UTAH", Conference: "Big 12", Strength: 80},
	{Name: "Kansas State Wildcats", Abbreviation: "KSU", Conference: "Big 12", Strength: 79},
	{Name: "Missouri Tigers", Abbreviation: "MIZ", Conference: "SEC", Strength: 79},
	{Name: "Florida State Seminoles", Abbreviation: "FSU", Conference: "ACC", Strength: 78},
	{Name: "Washington Huskies", Abbreviation: "WASH", Conference: "Big Ten", Strength: 77},
	{Name: "Iowa Hawkeyes", Abbreviation: "IOWA", Conference: "Big Ten", Strength: 76},
	{Name: "Louisville Cardinals", Abbreviation: "LOU", Conference: "ACC", Strength: 75},
	{Name: "Texas A&M Aggies", Abbreviation: "TAMU", Conference: "SEC", Strength: 75},
	{Name: "Wisconsin Badgers", Abbreviation: "WIS", Conference: "Big Ten", Strength: 73},
	{Name: "Arizona Wildcats", Abbreviation: "ARIZ", Conference: "Big 12", Strength: 72},
}

// defaultStrength is used for teams not present in the tables so that
// predictions still work for live data covering any matchup.
const defaultStrength = 75

// Teams returns the strength table for a league
func Teams(league models.League) []models.Team {
	if league == models.LeagueNCAA {
		return ncaaTeams
	}
	return nflTeams
}

// TeamByName looks up a team by name or abbreviation, case-insensitive.
// Unknown teams get a neutral default strength so the caller never fails.
func TeamByName(league models.League, name string) models.Team {
	for _, team := range Teams(league) {
		if strings.EqualFold(team.Name, name) || strings.EqualFold(team.Abbreviation, name) {
			return team
		}
	}
	return models.Team{Name: name, Strength: defaultStrength}
}
