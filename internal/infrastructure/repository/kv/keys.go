package kv

const (
	// GroupCollection holds a JSON array with every group name.
	GroupCollection = "@ignite-teams:groups"
	// PlayerCollection prefixes one key per group holding its roster.
	PlayerCollection = "@ignite-teams:players"
)

// PlayerKey is the roster key of a group: "<PlayerCollection>-<group>".
func PlayerKey(group string) string {
	return PlayerCollection + "-" + group
}
