package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/turma-roster/internal/domain/group"
	"github.com/riskibarqy/turma-roster/internal/domain/player"
)

// SeedGroup is a group with its initial roster.
type SeedGroup struct {
	Name    string
	Players []player.Player
}

func DemoRoster() []SeedGroup {
	return []SeedGroup{
		{
			Name: "Futebol de quinta",
			Players: []player.Player{
				{Name: "Ana", Team: player.TeamA},
				{Name: "Bruno", Team: player.TeamA},
				{Name: "Carla", Team: player.TeamB},
				{Name: "Diego", Team: player.TeamB},
			},
		},
		{
			Name: "Vôlei de praia",
			Players: []player.Player{
				{Name: "Elisa", Team: player.TeamA},
				{Name: "Fábio", Team: player.TeamB},
			},
		},
	}
}

// Seed stores groups and players that are not present yet. Existing groups and
// players are left untouched, so seeding twice is harmless.
func Seed(ctx context.Context, groups *GroupRepository, players *PlayerRepository, seed []SeedGroup) error {
	for _, g := range seed {
		if err := groups.Add(ctx, g.Name); err != nil && !errors.Is(err, group.ErrAlreadyExists) {
			return fmt.Errorf("seed group %q: %w", g.Name, err)
		}
		for _, p := range g.Players {
			if err := players.Add(ctx, p, g.Name); err != nil && !errors.Is(err, player.ErrAlreadyExists) {
				return fmt.Errorf("seed player %q in group %q: %w", p.Name, g.Name, err)
			}
		}
	}
	return nil
}
