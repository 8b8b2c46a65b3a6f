package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/turma-roster/internal/domain/player"
)

func TestPlayerService_AddAndFilterByTeam(t *testing.T) {
	t.Parallel()

	groups, players := newTestServices(t)
	ctx := t.Context()

	if _, err := groups.CreateGroup(ctx, "Turma A"); err != nil {
		t.Fatalf("create group: %v", err)
	}

	added, err := players.AddPlayer(ctx, AddPlayerInput{Group: "Turma A", Name: " Ana ", Team: "time a"})
	if err != nil {
		t.Fatalf("add player: %v", err)
	}
	if added.Name != "Ana" || added.Team != player.TeamA {
		t.Fatalf("unexpected added player: %+v", added)
	}

	teamA, err := players.ListPlayers(ctx, "Turma A", "Time A")
	if err != nil {
		t.Fatalf("list team A: %v", err)
	}
	if len(teamA) != 1 || teamA[0] != (player.Player{Name: "Ana", Team: player.TeamA}) {
		t.Fatalf("unexpected team A roster: %v", teamA)
	}

	teamB, err := players.ListPlayers(ctx, "Turma A", "Time B")
	if err != nil {
		t.Fatalf("list team B: %v", err)
	}
	if len(teamB) != 0 {
		t.Fatalf("expected empty team B, got %v", teamB)
	}
}

func TestPlayerService_AddPlayer_Validation(t *testing.T) {
	t.Parallel()

	groups, players := newTestServices(t)
	ctx := t.Context()
	if _, err := groups.CreateGroup(ctx, "Turma A"); err != nil {
		t.Fatalf("create group: %v", err)
	}

	cases := []struct {
		name  string
		input AddPlayerInput
		want  error
	}{
		{name: "blank name", input: AddPlayerInput{Group: "Turma A", Name: "  ", Team: "Time A"}, want: ErrInvalidInput},
		{name: "unknown team", input: AddPlayerInput{Group: "Turma A", Name: "Ana", Team: "Time C"}, want: ErrInvalidInput},
		{name: "blank group", input: AddPlayerInput{Group: "", Name: "Ana", Team: "Time A"}, want: ErrInvalidInput},
		{name: "unknown group", input: AddPlayerInput{Group: "Turma Z", Name: "Ana", Team: "Time A"}, want: ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := players.AddPlayer(ctx, tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPlayerService_AddPlayer_Duplicate(t *testing.T) {
	t.Parallel()

	groups, players := newTestServices(t)
	ctx := t.Context()
	if _, err := groups.CreateGroup(ctx, "Turma A"); err != nil {
		t.Fatalf("create group: %v", err)
	}
	if _, err := players.AddPlayer(ctx, AddPlayerInput{Group: "Turma A", Name: "Ana", Team: "Time A"}); err != nil {
		t.Fatalf("add player: %v", err)
	}

	_, err := players.AddPlayer(ctx, AddPlayerInput{Group: "Turma A", Name: "Ana", Team: "Time B"})
	if !errors.Is(err, player.ErrAlreadyExists) {
		t.Fatalf("expected player.ErrAlreadyExists, got %v", err)
	}
}

func TestPlayerService_RemovePlayer(t *testing.T) {
	t.Parallel()

	groups, players := newTestServices(t)
	ctx := t.Context()
	if _, err := groups.CreateGroup(ctx, "Turma A"); err != nil {
		t.Fatalf("create group: %v", err)
	}
	if _, err := players.AddPlayer(ctx, AddPlayerInput{Group: "Turma A", Name: "Ana", Team: "Time A"}); err != nil {
		t.Fatalf("add player: %v", err)
	}

	if err := players.RemovePlayer(ctx, "Turma A", "Bob"); err != nil {
		t.Fatalf("removing an absent player should be a no-op, got %v", err)
	}
	if err := players.RemovePlayer(ctx, "Turma A", "Ana"); err != nil {
		t.Fatalf("remove player: %v", err)
	}

	roster, err := players.ListPlayers(ctx, "Turma A", "")
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(roster) != 0 {
		t.Fatalf("expected empty roster, got %v", roster)
	}

	if err := players.RemovePlayer(ctx, "Turma Z", "Ana"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown group, got %v", err)
	}
}

func TestPlayerService_ListPlayers_InvalidTeam(t *testing.T) {
	t.Parallel()

	groups, players := newTestServices(t)
	ctx := t.Context()
	if _, err := groups.CreateGroup(ctx, "Turma A"); err != nil {
		t.Fatalf("create group: %v", err)
	}

	if _, err := players.ListPlayers(ctx, "Turma A", "Reservas"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := players.ListPlayers(ctx, "Turma Z", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
