package httpapi

import (
	"net/http"

	"github.com/riskibarqy/turma-roster/internal/usecase"
)

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroups")
	defer span.End()

	groups, err := h.groupService.ListGroups(ctx)
	if err != nil {
		h.fail(ctx, w, "list groups failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, groupListDTO{Items: groups})
}

func (h *Handler) ListGroupSummaries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroupSummaries")
	defer span.End()

	summaries, err := h.groupService.ListGroupSummaries(ctx)
	if err != nil {
		h.fail(ctx, w, "list group summaries failed", err)
		return
	}

	items := make([]groupSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, groupSummaryToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGroup")
	defer span.End()

	var req createGroupRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.groupService.CreateGroup(ctx, req.Name)
	if err != nil {
		h.fail(ctx, w, "create group failed", err, "group", req.Name)
		return
	}

	groups, err := h.groupService.ListGroups(ctx)
	if err != nil {
		h.fail(ctx, w, "reload groups after create failed", err, "group", created)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, groupMutationDTO{Group: created, Groups: groups})
}

func (h *Handler) RemoveGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveGroup")
	defer span.End()

	name := r.PathValue("group")
	if err := h.groupService.RemoveGroup(ctx, name); err != nil {
		h.fail(ctx, w, "remove group failed", err, "group", name)
		return
	}

	groups, err := h.groupService.ListGroups(ctx)
	if err != nil {
		h.fail(ctx, w, "reload groups after remove failed", err, "group", name)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, groupMutationDTO{Group: name, Groups: groups})
}

func groupSummaryToDTO(s usecase.GroupSummary) groupSummaryDTO {
	counts := make(map[string]int, len(s.CountsByTeam))
	for team, n := range s.CountsByTeam {
		counts[string(team)] = n
	}

	return groupSummaryDTO{
		Name:         s.Name,
		PlayerCount:  s.PlayerCount,
		CountsByTeam: counts,
	}
}
