package kv

import (
	"context"
	"slices"

	"github.com/riskibarqy/turma-roster/internal/domain/group"
	"github.com/riskibarqy/turma-roster/internal/platform/kvstore"
)

type GroupRepository struct {
	store kvstore.Store
}

var _ group.Repository = (*GroupRepository)(nil)

func NewGroupRepository(store kvstore.Store) *GroupRepository {
	return &GroupRepository{store: store}
}

func (r *GroupRepository) List(ctx context.Context) ([]string, error) {
	raw, ok, err := r.store.Get(ctx, GroupCollection)
	if err != nil {
		return nil, &StorageReadError{Key: GroupCollection, Err: err}
	}
	if !ok {
		return []string{}, nil
	}

	groups, err := decodeGroups(raw)
	if err != nil {
		return nil, &StorageReadError{Key: GroupCollection, Err: err}
	}

	return groups, nil
}

func (r *GroupRepository) Add(ctx context.Context, name string) error {
	groups, err := r.List(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(groups, name) {
		return group.ErrAlreadyExists
	}

	return r.write(ctx, append(groups, name))
}

// Remove rewrites the group list without name and deletes the group's roster.
// With a batching store both happen together; otherwise a failure deleting the
// roster leaves it orphaned and is reported, not retried.
func (r *GroupRepository) Remove(ctx context.Context, name string) error {
	groups, err := r.List(ctx)
	if err != nil {
		return err
	}

	remaining := slices.DeleteFunc(groups, func(g string) bool { return g == name })
	encoded, err := encodeGroups(remaining)
	if err != nil {
		return &StorageWriteError{Key: GroupCollection, Err: err}
	}

	rosterKey := PlayerKey(name)
	if batcher, ok := r.store.(kvstore.Batcher); ok {
		err := batcher.Apply(ctx,
			kvstore.SetOp(GroupCollection, encoded),
			kvstore.RemoveOp(rosterKey),
		)
		if err != nil {
			return &StorageWriteError{Key: GroupCollection, Err: err}
		}
		return nil
	}

	if err := r.store.Set(ctx, GroupCollection, encoded); err != nil {
		return &StorageWriteError{Key: GroupCollection, Err: err}
	}
	if err := r.store.Remove(ctx, rosterKey); err != nil {
		return &StorageWriteError{Key: rosterKey, Err: err}
	}

	return nil
}

func (r *GroupRepository) write(ctx context.Context, groups []string) error {
	encoded, err := encodeGroups(groups)
	if err != nil {
		return &StorageWriteError{Key: GroupCollection, Err: err}
	}
	if err := r.store.Set(ctx, GroupCollection, encoded); err != nil {
		return &StorageWriteError{Key: GroupCollection, Err: err}
	}
	return nil
}
