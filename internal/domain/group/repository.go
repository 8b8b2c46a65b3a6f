package group

import "context"

// Repository describes group persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
	// Remove deletes the group and every player stored for it.
	Remove(ctx context.Context, name string) error
}
