package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerGroupRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/groups", handler.ListGroups)
	mux.HandleFunc("GET /v1/groups/summaries", handler.ListGroupSummaries)
	mux.HandleFunc("POST /v1/groups", handler.CreateGroup)
	mux.HandleFunc("DELETE /v1/groups/{group}", handler.RemoveGroup)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/groups/{group}/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/groups/{group}/players", handler.AddPlayer)
	mux.HandleFunc("DELETE /v1/groups/{group}/players/{name}", handler.RemovePlayer)
}
