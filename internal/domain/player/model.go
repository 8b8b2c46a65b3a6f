package player

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAlreadyExists is returned when a player with the same name is already in
// the group, on either team.
var ErrAlreadyExists = errors.New("player already exists in group")

// AlreadyExistsMessage is the user-facing text for ErrAlreadyExists.
const AlreadyExistsMessage = "Essa pessoa já está adicionada em um time aqui."

// Team is one of the two fixed halves of a group.
type Team string

const (
	TeamA Team = "Time A"
	TeamB Team = "Time B"
)

// AllTeams lists teams in display order.
var AllTeams = []Team{TeamA, TeamB}

func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}

// ParseTeam accepts a team label ignoring surrounding whitespace and case.
func ParseTeam(raw string) (Team, error) {
	value := strings.TrimSpace(raw)
	for _, t := range AllTeams {
		if strings.EqualFold(value, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid team %q: valid values are %q, %q", raw, TeamA, TeamB)
}

// Player is a name/team pair stored in a group's roster.
type Player struct {
	Name string
	Team Team
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if !p.Team.Valid() {
		return fmt.Errorf("invalid player team: %s", p.Team)
	}
	return nil
}

// CountByTeam tallies players per known team.
func CountByTeam(players []Player) map[Team]int {
	out := make(map[Team]int, len(AllTeams))
	for _, t := range AllTeams {
		out[t] = 0
	}
	for _, p := range players {
		out[p.Team]++
	}
	return out
}
