package usecase

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/turma-roster/internal/infrastructure/repository/kv"
	"github.com/riskibarqy/turma-roster/internal/platform/kvstore"
	"github.com/riskibarqy/turma-roster/internal/platform/logging"
)

func newFileServices(t *testing.T, path string) (*GroupService, *PlayerService) {
	t.Helper()

	store, err := kvstore.OpenFile(path)
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	groupRepo := kv.NewGroupRepository(store)
	playerRepo := kv.NewPlayerRepository(store)
	logger := logging.NewNop()

	return NewGroupService(groupRepo, playerRepo, logger, 2), NewPlayerService(groupRepo, playerRepo, logger)
}

func TestNames_RejectInvalidUTF8(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roster.json")
	groups, players := newFileServices(t, path)
	ctx := t.Context()

	const bad = "Turma \xff"

	if _, err := groups.CreateGroup(ctx, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("create group: expected ErrInvalidInput, got %v", err)
	}
	if _, err := groups.CreateGroup(ctx, "Vôlei"); err != nil {
		t.Fatalf("create group: %v", err)
	}

	if _, err := players.AddPlayer(ctx, AddPlayerInput{Group: "Vôlei", Name: "Ana \xff", Team: "Time A"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("add player with bad name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := players.AddPlayer(ctx, AddPlayerInput{Group: bad, Name: "Ana", Team: "Time A"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("add player to bad group: expected ErrInvalidInput, got %v", err)
	}
	if _, err := players.ListPlayers(ctx, bad, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("list players: expected ErrInvalidInput, got %v", err)
	}
	if err := players.RemovePlayer(ctx, "Vôlei", "Ana \xff"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("remove player: expected ErrInvalidInput, got %v", err)
	}
	if err := groups.RemoveGroup(ctx, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("remove group: expected ErrInvalidInput, got %v", err)
	}

	if _, err := players.AddPlayer(ctx, AddPlayerInput{Group: "Vôlei", Name: "João", Team: "Time B"}); err != nil {
		t.Fatalf("add player: %v", err)
	}

	reopenedGroups, reopenedPlayers := newFileServices(t, path)
	names, err := reopenedGroups.ListGroups(ctx)
	if err != nil {
		t.Fatalf("list groups after reopen: %v", err)
	}
	if len(names) != 1 || names[0] != "Vôlei" {
		t.Fatalf("expected only Vôlei after reopen, got %q", names)
	}

	roster, err := reopenedPlayers.ListPlayers(ctx, "Vôlei", "")
	if err != nil {
		t.Fatalf("list players after reopen: %v", err)
	}
	if len(roster) != 1 || roster[0].Name != "João" {
		t.Fatalf("expected only João after reopen, got %+v", roster)
	}
}
