package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"xiangqi/internal/notation"
	"xiangqi/internal/record"
	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games    *game.Manager
	resolver *notation.Resolver
	log      zerolog.Logger
}

func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		games:    game.NewManager(),
		resolver: notation.NewResolver(log),
		log:      log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/legal_moves":
		h.handleLegalMoves(w, r)
	case "/api/resolve":
		h.handleResolve(w, r)
	case "/api/replay":
		h.handleReplay(w, r)
	case "/api/export":
		h.handleExport(w, r)
	case "/api/import":
		h.handleImport(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("writeJSON failed")
	}
}

func (h *Handler) lookupGame(w http.ResponseWriter, id string) *game.GameState {
	gs, err := h.games.Get(id)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return nil
	}
	return gs
}

func statusOf(g *xiangqi.Game) string {
	if g.Ended() {
		return "ended"
	}
	return "ongoing"
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	gs := h.games.NewGame()
	g := gs.Game

	resp := NewGameResponse{
		GameID:     gs.ID,
		Position:   xiangqi.EncodeBoard(g.Board(), g.ActiveSide()),
		ToMove:     sideToInt(g.ActiveSide()),
		LegalMoves: movesToDTO(xiangqi.AllMoves(g.Board(), g.ActiveSide())),
	}
	h.writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	gs := h.lookupGame(w, req.GameID)
	if gs == nil {
		return
	}
	g := gs.Game

	from := xiangqi.Pos{Row: req.Move.FromRow, Col: req.Move.FromCol}
	to := xiangqi.Pos{Row: req.Move.ToRow, Col: req.Move.ToCol}
	if !g.AttemptMoveFrom(from, to) {
		http.Error(w, "illegal move", http.StatusBadRequest)
		return
	}
	h.games.Touch(gs.ID)

	st := g.GetState()
	resp := PlayResponse{
		Position:   xiangqi.EncodeBoard(g.Board(), g.ActiveSide()),
		ToMove:     sideToInt(g.ActiveSide()),
		LegalMoves: movesToDTO(xiangqi.AllMoves(g.Board(), g.ActiveSide())),
		RedCheck:   st.RedInCheck,
		BlackCheck: st.BlackInCheck,
		Hash:       st.Hash,
		Status:     statusOf(g),
	}
	h.writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	gs := h.lookupGame(w, req.GameID)
	if gs == nil {
		return
	}
	g := gs.Game

	st := g.GetState()
	resp := StateResponse{
		Position:   xiangqi.EncodeBoard(g.Board(), g.ActiveSide()),
		ToMove:     sideToInt(g.ActiveSide()),
		LegalMoves: movesToDTO(xiangqi.AllMoves(g.Board(), g.ActiveSide())),
		History:    movesToDTO(st.MoveHistory),
		RedCheck:   st.RedInCheck,
		BlackCheck: st.BlackInCheck,
		Hash:       st.Hash,
		Status:     statusOf(g),
	}
	h.writeJSON(w, resp)
}

func (h *Handler) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	var req LegalMovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	gs := h.lookupGame(w, req.GameID)
	if gs == nil {
		return
	}
	g := gs.Game

	pc := g.PieceAt(xiangqi.Pos{Row: req.Row, Col: req.Col})
	if pc == nil {
		http.Error(w, "empty square", http.StatusBadRequest)
		return
	}
	var resp LegalMovesResponse
	for _, to := range xiangqi.LegalDestinations(pc, g.Lookup()) {
		resp.Destinations = append(resp.Destinations, PosDTO{Row: to.Row, Col: to.Col})
	}
	h.writeJSON(w, resp)
}

// handleResolve 只解析不落子：前端用来预览一条记谱指到哪
func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	gs := h.lookupGame(w, req.GameID)
	if gs == nil {
		return
	}
	g := gs.Game

	mv, err := h.resolver.Resolve(req.Text, g.ActiveSide(), g.Board())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, ResolveResponse{Move: moveToDTO(mv)})
}

func (h *Handler) handleReplay(w http.ResponseWriter, r *http.Request) {
	var req ReplayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	gs := h.lookupGame(w, req.GameID)
	if gs == nil {
		return
	}
	g := gs.Game

	applied, err := record.Replay(g, h.resolver, req.Tokens)
	h.games.Touch(gs.ID)

	resp := ReplayResponse{
		Applied:  applied,
		Position: xiangqi.EncodeBoard(g.Board(), g.ActiveSide()),
		ToMove:   sideToInt(g.ActiveSide()),
	}
	if err != nil {
		h.log.Warn().Err(err).Str("game_id", gs.ID).Msg("replay stopped early")
		resp.Error = err.Error()
	}
	h.writeJSON(w, resp)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	gs := h.lookupGame(w, req.GameID)
	if gs == nil {
		return
	}
	h.writeJSON(w, gs.Game.ExportState())
}

func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g := xiangqi.NewGame()
	if !g.ImportState(req.Snapshot) {
		http.Error(w, "invalid snapshot", http.StatusBadRequest)
		return
	}
	gs := h.games.Add(g)

	resp := ImportResponse{
		GameID:   gs.ID,
		Position: xiangqi.EncodeBoard(g.Board(), g.ActiveSide()),
		ToMove:   sideToInt(g.ActiveSide()),
	}
	h.writeJSON(w, resp)
}
