package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/league-media-system/db"
	"github.com/Dosada05/league-media-system/handlers"
	"github.com/Dosada05/league-media-system/live"
	"github.com/Dosada05/league-media-system/repositories"
	"github.com/Dosada05/league-media-system/services"
	"github.com/Dosada05/league-media-system/storage"
	"github.com/go-chi/chi/v5"
)

const (
	testJWTSecret     = "test-secret"
	testAdminEmail    = "admin@liga.test"
	testAdminPassword = "hunter2hunter2"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := db.Open(t.TempDir())
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	uploadDir := t.TempDir()
	uploader, err := storage.NewLocalDiskUploader(uploadDir, "/uploads/videos")
	if err != nil {
		t.Fatalf("NewLocalDiskUploader: %v", err)
	}

	hub := live.NewHub()
	go hub.Run()

	clipRepo := repositories.NewFileClipRepository(store)
	matchRepo := repositories.NewFileMatchRepository(store)
	standingRepo := repositories.NewFileStandingRepository(store)
	settingsRepo := repositories.NewFileSettingsRepository(store)

	authService, err := services.NewAuthService(testAdminEmail, testAdminPassword)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		handlers.NewAuthHandler(authService, testJWTSecret),
		handlers.NewClipHandler(services.NewClipService(clipRepo, uploader, hub)),
		handlers.NewStandingHandler(services.NewStandingService(standingRepo, hub)),
		handlers.NewMatchHandler(services.NewMatchService(matchRepo, hub)),
		handlers.NewSettingsHandler(services.NewSettingsService(settingsRepo, hub)),
		handlers.NewStatsHandler(services.NewStatsService(clipRepo, matchRepo)),
		handlers.NewWebSocketHandler(hub),
		[]byte(testJWTSecret),
		uploadDir,
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func login(t *testing.T, server *httptest.Server) string {
	t.Helper()

	body := fmt.Sprintf(`{"email": %q, "password": %q}`, testAdminEmail, testAdminPassword)
	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if payload.Token == "" {
		t.Fatal("empty token")
	}
	return payload.Token
}

func doJSON(t *testing.T, server *httptest.Server, method, path, token, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, buf.Bytes()
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	server := newTestServer(t)

	body := fmt.Sprintf(`{"email": %q, "password": "wrong"}`, testAdminEmail)
	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	server := newTestServer(t)

	cases := []struct{ method, path, body string }{
		{http.MethodPut, "/api/standings", `[]`},
		{http.MethodPost, "/api/standings/reset", ""},
		{http.MethodPost, "/api/matches", `{"homeTeam": "a", "awayTeam": "b"}`},
		{http.MethodPut, "/api/matches/1", `{"status": "played"}`},
		{http.MethodDelete, "/api/matches/1", ""},
		{http.MethodPut, "/api/settings", `{"seasonName": "x"}`},
	}
	for _, c := range cases {
		resp, _ := doJSON(t, server, c.method, c.path, "", c.body)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status = %d, want 401", c.method, c.path, resp.StatusCode)
		}
	}
}

func TestMatchLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp, body := doJSON(t, server, http.MethodPost, "/api/matches", token,
		`{"homeTeam": "ACP 507", "awayTeam": "Raven Law", "matchday": 1, "date": "2025-03-01", "venue": "Estadio Central"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", resp.StatusCode, body)
	}
	var created struct {
		Success bool `json:"success"`
		Match   struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		} `json:"match"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if !created.Success || created.Match.ID == 0 {
		t.Fatalf("create response = %s", body)
	}
	if created.Match.Status != "scheduled" {
		t.Errorf("default status = %q, want scheduled", created.Match.Status)
	}

	resp, body = doJSON(t, server, http.MethodPut,
		fmt.Sprintf("/api/matches/%d", created.Match.ID), token,
		`{"status": "played", "homeScore": 2, "awayScore": 1}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, body %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, server, http.MethodGet, "/api/matches", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var matches []map[string]interface{}
	if err := json.Unmarshal(body, &matches); err != nil {
		t.Fatalf("decode match list: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("match list has %d entries, want 1", len(matches))
	}
	match := matches[0]
	if match["status"] != "played" {
		t.Errorf("status = %v, want played", match["status"])
	}
	if match["homeTeam"] != "ACP 507" || match["date"] != "2025-03-01" {
		t.Errorf("patch clobbered unrelated fields: %v", match)
	}
	if match["venue"] != "Estadio Central" {
		t.Errorf("unknown key dropped: %v", match)
	}
	if match["homeScore"] != float64(2) {
		t.Errorf("patched extra key missing: %v", match)
	}

	resp, body = doJSON(t, server, http.MethodDelete,
		fmt.Sprintf("/api/matches/%d", created.Match.ID), token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, body %s", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, server, http.MethodDelete,
		fmt.Sprintf("/api/matches/%d", created.Match.ID), token, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", resp.StatusCode)
	}
}

func TestMatchPatchWithWrongTypeIsBadRequest(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp, body := doJSON(t, server, http.MethodPost, "/api/matches", token,
		`{"homeTeam": "Humacao Fc", "awayTeam": "Punta Coco Fc", "matchday": 1}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", resp.StatusCode, body)
	}
	var created struct {
		Match struct {
			ID int64 `json:"id"`
		} `json:"match"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	resp, body = doJSON(t, server, http.MethodPut,
		fmt.Sprintf("/api/matches/%d", created.Match.ID), token,
		`{"matchday": "not-a-number"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("patch status = %d, body %s, want 400", resp.StatusCode, body)
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if payload.Error == "" {
		t.Error("error body has no message")
	}

	resp, body = doJSON(t, server, http.MethodGet, "/api/matches", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var matches []map[string]interface{}
	if err := json.Unmarshal(body, &matches); err != nil {
		t.Fatalf("decode match list: %v", err)
	}
	if len(matches) != 1 || matches[0]["matchday"] != float64(1) {
		t.Errorf("rejected patch changed the match: %v", matches)
	}
}

func TestUploadAndClipFlow(t *testing.T) {
	server := newTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("clipTitle", "Golazo"); err != nil {
		t.Fatal(err)
	}
	if err := writer.WriteField("clubSelect", "Pura Vibra"); err != nil {
		t.Fatal(err)
	}
	part, err := writer.CreateFormFile("clipFile", "golazo.mp4")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("fake video bytes")); err != nil {
		t.Fatal(err)
	}
	writer.Close()

	resp, err := http.Post(server.URL+"/api/upload", writer.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("upload status = %d", resp.StatusCode)
	}
	var uploaded struct {
		Success bool   `json:"success"`
		ClipID  string `json:"clip_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if !uploaded.Success || uploaded.ClipID == "" {
		t.Fatalf("upload response missing clip id")
	}

	detailResp, body := doJSON(t, server, http.MethodGet, "/api/clips/"+uploaded.ClipID, "", "")
	if detailResp.StatusCode != http.StatusOK {
		t.Fatalf("clip detail status = %d", detailResp.StatusCode)
	}
	var clip struct {
		Views int `json:"views"`
		Likes int `json:"likes"`
	}
	if err := json.Unmarshal(body, &clip); err != nil {
		t.Fatalf("decode clip: %v", err)
	}
	if clip.Views != 1 {
		t.Errorf("views after first read = %d, want 1", clip.Views)
	}

	viewResp, body := doJSON(t, server, http.MethodPost, "/api/clips/"+uploaded.ClipID+"/view", "", "")
	if viewResp.StatusCode != http.StatusOK {
		t.Fatalf("view status = %d", viewResp.StatusCode)
	}
	var viewed struct {
		Success bool `json:"success"`
		Views   int  `json:"views"`
	}
	if err := json.Unmarshal(body, &viewed); err != nil {
		t.Fatalf("decode view response: %v", err)
	}
	if !viewed.Success || viewed.Views != 2 {
		t.Errorf("view response = %s, want views 2", body)
	}

	likeResp, body := doJSON(t, server, http.MethodPost, "/api/clips/"+uploaded.ClipID+"/like", "", "")
	if likeResp.StatusCode != http.StatusOK {
		t.Fatalf("like status = %d", likeResp.StatusCode)
	}
	var liked struct {
		Success bool `json:"success"`
		Likes   int  `json:"likes"`
	}
	if err := json.Unmarshal(body, &liked); err != nil {
		t.Fatalf("decode like response: %v", err)
	}
	if !liked.Success || liked.Likes != 1 {
		t.Errorf("like response = %s", body)
	}

	// The stored file is served from the static route.
	fileResp, fileBody := doJSON(t, server, http.MethodGet, "/uploads/videos/"+uploaded.ClipID+".mp4", "", "")
	if fileResp.StatusCode != http.StatusOK {
		t.Fatalf("file download status = %d", fileResp.StatusCode)
	}
	if string(fileBody) != "fake video bytes" {
		t.Errorf("file contents = %q", fileBody)
	}
}

func TestUploadRejectsBadExtensionOverHTTP(t *testing.T) {
	server := newTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("clipFile", "notavideo.exe")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("MZ"))
	writer.Close()

	resp, err := http.Post(server.URL+"/api/upload", writer.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestMissingClipIsNotFound(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, server, http.MethodGet, "/api/clips/doesnotexist", "", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if payload.Error == "" {
		t.Error("error body has no message")
	}
}

func TestSettingsRoundTripOverHTTP(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp, body := doJSON(t, server, http.MethodGet, "/api/settings", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get settings status = %d", resp.StatusCode)
	}
	var settings struct {
		SeasonName string `json:"seasonName"`
		PointsWin  int    `json:"pointsWin"`
	}
	if err := json.Unmarshal(body, &settings); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	if settings.SeasonName != "Temporada 2025" || settings.PointsWin != 3 {
		t.Errorf("default settings = %s", body)
	}

	resp, body = doJSON(t, server, http.MethodPut, "/api/settings", token,
		`{"seasonName": "Temporada 2026", "pointsWin": 2, "pointsDraw": 1, "pointsLoss": 0}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("put settings status = %d, body %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, server, http.MethodGet, "/api/settings", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get settings status = %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, &settings); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	if settings.SeasonName != "Temporada 2026" || settings.PointsWin != 2 {
		t.Errorf("settings not replaced: %s", body)
	}
}

func TestStandingsAndStatsOverHTTP(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp, body := doJSON(t, server, http.MethodGet, "/api/standings", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get standings status = %d", resp.StatusCode)
	}
	var standings []struct {
		Position int    `json:"position"`
		Team     string `json:"team"`
		Points   int    `json:"points"`
	}
	if err := json.Unmarshal(body, &standings); err != nil {
		t.Fatalf("decode standings: %v", err)
	}
	if len(standings) != 10 {
		t.Fatalf("default standings has %d rows, want 10", len(standings))
	}

	resp, body = doJSON(t, server, http.MethodPut, "/api/standings", token,
		`[{"team": "Raven Law", "teamId": 7, "points": 9}, {"team": "fly city", "teamId": 10, "points": 12}]`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("put standings status = %d, body %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, server, http.MethodGet, "/api/standings", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get standings status = %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, &standings); err != nil {
		t.Fatalf("decode standings: %v", err)
	}
	if len(standings) != 2 || standings[0].Team != "fly city" || standings[0].Position != 1 {
		t.Errorf("standings not ranked after replace: %s", body)
	}

	resp, body = doJSON(t, server, http.MethodPost, "/api/standings/reset", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reset status = %d, body %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, server, http.MethodGet, "/api/stats", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats status = %d", resp.StatusCode)
	}
	var stats struct {
		TotalClips   int `json:"total_clips"`
		TotalMatches int `json:"total_matches"`
	}
	if err := json.Unmarshal(body, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalClips != 0 || stats.TotalMatches != 0 {
		t.Errorf("empty-system stats = %s", body)
	}

	resp, body = doJSON(t, server, http.MethodGet, "/api/teams", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("teams status = %d", resp.StatusCode)
	}
	var teams []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &teams); err != nil {
		t.Fatalf("decode teams: %v", err)
	}
	if len(teams) != 10 {
		t.Errorf("roster has %d teams, want 10", len(teams))
	}
}
