package httpapi

import "github.com/riskibarqy/turma-roster/internal/platform/cache"

// Blank names pass validation on purpose: the services trim and reject them
// with their own messages.
type createGroupRequest struct {
	Name string `json:"name" validate:"max=120"`
}

type addPlayerRequest struct {
	Name string `json:"name" validate:"max=120"`
	Team string `json:"team" validate:"max=40"`
}

type healthDTO struct {
	Status string       `json:"status"`
	Cache  *cache.Stats `json:"cache,omitempty"`
}

type groupListDTO struct {
	Items []string `json:"items"`
}

type groupMutationDTO struct {
	Group  string   `json:"group"`
	Groups []string `json:"groups"`
}

type groupSummaryDTO struct {
	Name         string         `json:"name"`
	PlayerCount  int            `json:"player_count"`
	CountsByTeam map[string]int `json:"counts_by_team"`
}

type playerDTO struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

type playerMutationDTO struct {
	Player  *playerDTO  `json:"player,omitempty"`
	Players []playerDTO `json:"players"`
}
