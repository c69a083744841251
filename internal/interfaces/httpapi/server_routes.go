package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)

	mux.HandleFunc("GET /v1/users", handler.ListUsers)
	mux.HandleFunc("POST /v1/users", handler.RegisterUser)
	mux.HandleFunc("GET /v1/users/{userID}/balance", handler.GetUserBalance)
	mux.HandleFunc("GET /v1/users/{userID}/rounds/{roundID}/bets", handler.ListUserRoundBets)

	mux.HandleFunc("GET /v1/rounds", handler.ListRounds)
	mux.HandleFunc("POST /v1/rounds", handler.CreateRound)
	mux.HandleFunc("GET /v1/rounds/{roundID}/matches", handler.ListRoundMatches)
	mux.HandleFunc("POST /v1/rounds/{roundID}/matches", handler.CreateMatch)

	mux.HandleFunc("POST /v1/bets", handler.PlaceBet)
	mux.HandleFunc("GET /v1/bets/preview", handler.PreviewPayout)

	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/admin/teams/import", RequireAdminToken(adminToken, http.HandlerFunc(handler.ImportTeams)))
	mux.Handle("POST /v1/admin/rounds/{roundID}/matches/import", RequireAdminToken(adminToken, http.HandlerFunc(handler.ImportRoundMatches)))
	mux.Handle("POST /v1/admin/matches/{matchID}/result", RequireAdminToken(adminToken, http.HandlerFunc(handler.SetMatchResult)))
	mux.Handle("POST /v1/admin/rounds/{roundID}/settle", RequireAdminToken(adminToken, http.HandlerFunc(handler.SettleRound)))
}
