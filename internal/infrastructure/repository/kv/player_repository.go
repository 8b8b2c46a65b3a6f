package kv

import (
	"context"
	"slices"

	"github.com/riskibarqy/turma-roster/internal/domain/player"
	"github.com/riskibarqy/turma-roster/internal/platform/kvstore"
)

type PlayerRepository struct {
	store kvstore.Store
}

var _ player.Repository = (*PlayerRepository)(nil)

func NewPlayerRepository(store kvstore.Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) ListByGroup(ctx context.Context, group string) ([]player.Player, error) {
	key := PlayerKey(group)
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, &StorageReadError{Key: key, Err: err}
	}
	if !ok {
		return []player.Player{}, nil
	}

	players, err := decodePlayers(raw)
	if err != nil {
		return nil, &StorageReadError{Key: key, Err: err}
	}

	return players, nil
}

func (r *PlayerRepository) ListByGroupAndTeam(ctx context.Context, group string, team player.Team) ([]player.Player, error) {
	players, err := r.ListByGroup(ctx, group)
	if err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if p.Team == team {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PlayerRepository) Add(ctx context.Context, p player.Player, group string) error {
	players, err := r.ListByGroup(ctx, group)
	if err != nil {
		return err
	}

	exists := slices.ContainsFunc(players, func(existing player.Player) bool {
		return existing.Name == p.Name
	})
	if exists {
		return player.ErrAlreadyExists
	}

	return r.write(ctx, group, append(players, p))
}

func (r *PlayerRepository) Remove(ctx context.Context, name, group string) error {
	players, err := r.ListByGroup(ctx, group)
	if err != nil {
		return err
	}

	remaining := slices.DeleteFunc(players, func(p player.Player) bool { return p.Name == name })
	if len(remaining) == len(players) {
		return nil
	}

	return r.write(ctx, group, remaining)
}

func (r *PlayerRepository) write(ctx context.Context, group string, players []player.Player) error {
	key := PlayerKey(group)
	encoded, err := encodePlayers(players)
	if err != nil {
		return &StorageWriteError{Key: key, Err: err}
	}
	if err := r.store.Set(ctx, key, encoded); err != nil {
		return &StorageWriteError{Key: key, Err: err}
	}
	return nil
}
