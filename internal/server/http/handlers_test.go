package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestNewGameAndPlay(t *testing.T) {
	h := NewHandler(zerolog.Nop())

	w := postJSON(t, h, "/api/new_game", struct{}{})
	if w.Code != http.StatusOK {
		t.Fatalf("new_game status %d", w.Code)
	}
	ng := decode[NewGameResponse](t, w)
	if ng.GameID == "" || ng.ToMove != 0 {
		t.Fatalf("new game: %+v", ng)
	}
	if len(ng.LegalMoves) == 0 {
		t.Fatalf("opening position must offer legal moves")
	}

	// 兵七进一
	w = postJSON(t, h, "/api/play", PlayRequest{
		GameID: ng.GameID,
		Move:   MoveDTO{FromRow: 6, FromCol: 2, ToRow: 5, ToCol: 2},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("play status %d: %s", w.Code, w.Body.String())
	}
	pr := decode[PlayResponse](t, w)
	if pr.ToMove != 1 || pr.Status != "ongoing" {
		t.Fatalf("play response: %+v", pr)
	}

	// 非法步：直接 400，对局不动
	w = postJSON(t, h, "/api/play", PlayRequest{
		GameID: ng.GameID,
		Move:   MoveDTO{FromRow: 0, FromCol: 0, ToRow: 5, ToCol: 5},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("illegal move status %d, want 400", w.Code)
	}

	w = postJSON(t, h, "/api/state", StateRequest{GameID: ng.GameID})
	st := decode[StateResponse](t, w)
	if len(st.History) != 1 || st.ToMove != 1 {
		t.Fatalf("state after one ply: %+v", st)
	}
}

func TestUnknownGameIs404(t *testing.T) {
	h := NewHandler(zerolog.Nop())
	w := postJSON(t, h, "/api/state", StateRequest{GameID: "nope"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
}

func TestResolveEndpoint(t *testing.T) {
	h := NewHandler(zerolog.Nop())
	ng := decode[NewGameResponse](t, postJSON(t, h, "/api/new_game", struct{}{}))

	w := postJSON(t, h, "/api/resolve", ResolveRequest{GameID: ng.GameID, Text: "炮二平五"})
	if w.Code != http.StatusOK {
		t.Fatalf("resolve status %d: %s", w.Code, w.Body.String())
	}
	rr := decode[ResolveResponse](t, w)
	if rr.Move.FromRow != 7 || rr.Move.FromCol != 7 || rr.Move.ToRow != 7 || rr.Move.ToCol != 4 {
		t.Fatalf("resolved move: %+v", rr.Move)
	}

	// 只预览不落子
	st := decode[StateResponse](t, postJSON(t, h, "/api/state", StateRequest{GameID: ng.GameID}))
	if len(st.History) != 0 {
		t.Fatalf("resolve must not mutate the game")
	}

	w = postJSON(t, h, "/api/resolve", ResolveRequest{GameID: ng.GameID, Text: "无效棋谱"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad notation status %d, want 400", w.Code)
	}
}

func TestReplayAndExportImport(t *testing.T) {
	h := NewHandler(zerolog.Nop())
	ng := decode[NewGameResponse](t, postJSON(t, h, "/api/new_game", struct{}{}))

	w := postJSON(t, h, "/api/replay", ReplayRequest{
		GameID: ng.GameID,
		Tokens: []string{"炮二平五", "马8进7", "马二进三", "车9平8"},
	})
	rp := decode[ReplayResponse](t, w)
	if rp.Applied != 4 || rp.Error != "" {
		t.Fatalf("replay response: %+v", rp)
	}

	w = postJSON(t, h, "/api/export", ExportRequest{GameID: ng.GameID})
	if w.Code != http.StatusOK {
		t.Fatalf("export status %d", w.Code)
	}
	var snap map[string]any
	if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}

	// 原样导回去，得到一个新对局
	body, _ := json.Marshal(map[string]any{"snapshot": snap})
	req := httptest.NewRequest(http.MethodPost, "/api/import", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("import status %d: %s", rec.Code, rec.Body.String())
	}
	imp := decode[ImportResponse](t, rec)
	if imp.GameID == "" || imp.GameID == ng.GameID {
		t.Fatalf("import must create a fresh game: %+v", imp)
	}
	if imp.ToMove != rp.ToMove {
		t.Fatalf("imported game active side %d, want %d", imp.ToMove, rp.ToMove)
	}
}
