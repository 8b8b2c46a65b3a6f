package httpapi

import (
	"net/http"

	"github.com/riskibarqy/turma-roster/internal/domain/player"
	"github.com/riskibarqy/turma-roster/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	groupName := r.PathValue("group")
	team := r.URL.Query().Get("team")

	players, err := h.playerService.ListPlayers(ctx, groupName, team)
	if err != nil {
		h.fail(ctx, w, "list players failed", err, "group", groupName, "team", team)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

// AddPlayer answers with the added player and the refreshed roster of its team.
func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayer")
	defer span.End()

	groupName := r.PathValue("group")

	var req addPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	added, err := h.playerService.AddPlayer(ctx, usecase.AddPlayerInput{
		Group: groupName,
		Name:  req.Name,
		Team:  req.Team,
	})
	if err != nil {
		h.fail(ctx, w, "add player failed", err, "group", groupName, "player", req.Name, "team", req.Team)
		return
	}

	roster, err := h.playerService.ListPlayers(ctx, groupName, string(added.Team))
	if err != nil {
		h.fail(ctx, w, "reload players after add failed", err, "group", groupName)
		return
	}

	item := playerToDTO(added)
	writeSuccess(ctx, w, http.StatusCreated, playerMutationDTO{
		Player:  &item,
		Players: playersToDTO(roster),
	})
}

// RemovePlayer answers with the refreshed roster, narrowed by the optional
// team query parameter.
func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePlayer")
	defer span.End()

	groupName := r.PathValue("group")
	name := r.PathValue("name")
	team := r.URL.Query().Get("team")

	if err := h.playerService.RemovePlayer(ctx, groupName, name); err != nil {
		h.fail(ctx, w, "remove player failed", err, "group", groupName, "player", name)
		return
	}

	roster, err := h.playerService.ListPlayers(ctx, groupName, team)
	if err != nil {
		h.fail(ctx, w, "reload players after remove failed", err, "group", groupName, "team", team)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerMutationDTO{Players: playersToDTO(roster)})
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{Name: p.Name, Team: string(p.Team)}
}

func playersToDTO(players []player.Player) []playerDTO {
	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	return items
}
