package player

import "context"

// Repository describes roster persistence needs from use cases. Rosters are
// keyed by group name.
type Repository interface {
	ListByGroup(ctx context.Context, group string) ([]Player, error)
	ListByGroupAndTeam(ctx context.Context, group string, team Team) ([]Player, error)
	Add(ctx context.Context, p Player, group string) error
	// Remove drops every record named name. Absent names are not an error.
	Remove(ctx context.Context, name, group string) error
}
