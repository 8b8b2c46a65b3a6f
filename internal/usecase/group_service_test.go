package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/turma-roster/internal/domain/group"
	"github.com/riskibarqy/turma-roster/internal/domain/player"
	"github.com/riskibarqy/turma-roster/internal/infrastructure/repository/kv"
	"github.com/riskibarqy/turma-roster/internal/platform/kvstore"
	"github.com/riskibarqy/turma-roster/internal/platform/logging"
)

func newTestServices(t *testing.T) (*GroupService, *PlayerService) {
	t.Helper()

	store := kvstore.NewMemory()
	groupRepo := kv.NewGroupRepository(store)
	playerRepo := kv.NewPlayerRepository(store)
	logger := logging.NewNop()

	return NewGroupService(groupRepo, playerRepo, logger, 2), NewPlayerService(groupRepo, playerRepo, logger)
}

func TestGroupService_CreateGroup_TrimsAndRejectsDuplicates(t *testing.T) {
	t.Parallel()

	groups, _ := newTestServices(t)

	created, err := groups.CreateGroup(t.Context(), "  Turma A ")
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if created != "Turma A" {
		t.Fatalf("expected trimmed name, got %q", created)
	}

	_, err = groups.CreateGroup(t.Context(), "Turma A")
	if !errors.Is(err, group.ErrAlreadyExists) {
		t.Fatalf("expected group.ErrAlreadyExists, got %v", err)
	}

	names, err := groups.ListGroups(t.Context())
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	if len(names) != 1 || names[0] != "Turma A" {
		t.Fatalf("expected exactly one Turma A, got %v", names)
	}
}

func TestGroupService_CreateGroup_BlankName(t *testing.T) {
	t.Parallel()

	groups, _ := newTestServices(t)
	if _, err := groups.CreateGroup(t.Context(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGroupService_RemoveGroup(t *testing.T) {
	t.Parallel()

	groups, players := newTestServices(t)
	ctx := t.Context()

	if _, err := groups.CreateGroup(ctx, "Turma A"); err != nil {
		t.Fatalf("create group: %v", err)
	}
	if _, err := players.AddPlayer(ctx, AddPlayerInput{Group: "Turma A", Name: "Ana", Team: "Time A"}); err != nil {
		t.Fatalf("add player: %v", err)
	}

	if err := groups.RemoveGroup(ctx, "Turma A"); err != nil {
		t.Fatalf("remove group: %v", err)
	}
	if err := groups.RemoveGroup(ctx, "Turma A"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}

	if _, err := groups.CreateGroup(ctx, "Turma A"); err != nil {
		t.Fatalf("recreate group: %v", err)
	}
	roster, err := players.ListPlayers(ctx, "Turma A", "")
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(roster) != 0 {
		t.Fatalf("expected roster to be removed with the group, got %v", roster)
	}
}

func TestGroupService_ListGroupSummaries(t *testing.T) {
	t.Parallel()

	groups, players := newTestServices(t)
	ctx := t.Context()

	for _, name := range []string{"Turma A", "Turma B", "Turma C"} {
		if _, err := groups.CreateGroup(ctx, name); err != nil {
			t.Fatalf("create group %s: %v", name, err)
		}
	}
	inputs := []AddPlayerInput{
		{Group: "Turma A", Name: "Ana", Team: "Time A"},
		{Group: "Turma A", Name: "Bia", Team: "Time B"},
		{Group: "Turma A", Name: "Caio", Team: "Time B"},
		{Group: "Turma C", Name: "Duda", Team: "Time A"},
	}
	for _, in := range inputs {
		if _, err := players.AddPlayer(ctx, in); err != nil {
			t.Fatalf("add player %s: %v", in.Name, err)
		}
	}

	summaries, err := groups.ListGroupSummaries(ctx)
	if err != nil {
		t.Fatalf("list summaries: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}

	want := []struct {
		name  string
		total int
		teamA int
		teamB int
	}{
		{"Turma A", 3, 1, 2},
		{"Turma B", 0, 0, 0},
		{"Turma C", 1, 1, 0},
	}
	for i, w := range want {
		got := summaries[i]
		if got.Name != w.name || got.PlayerCount != w.total ||
			got.CountsByTeam[player.TeamA] != w.teamA || got.CountsByTeam[player.TeamB] != w.teamB {
			t.Fatalf("summary %d mismatch: got %+v want %+v", i, got, w)
		}
	}
}

func TestGroupService_ListGroupSummaries_Empty(t *testing.T) {
	t.Parallel()

	groups, _ := newTestServices(t)
	summaries, err := groups.ListGroupSummaries(t.Context())
	if err != nil {
		t.Fatalf("list summaries: %v", err)
	}
	if summaries == nil || len(summaries) != 0 {
		t.Fatalf("expected empty non-nil summaries, got %v", summaries)
	}
}
