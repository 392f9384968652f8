package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsathrahman00-arsath/fpda/internal/config"
	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
	"github.com/arsathrahman00-arsath/fpda/internal/server/handlers"
	"github.com/arsathrahman00-arsath/fpda/internal/server/router"
	authsvc "github.com/arsathrahman00-arsath/fpda/internal/service/auth"
	masterdatasvc "github.com/arsathrahman00-arsath/fpda/internal/service/masterdata"
	mediasvc "github.com/arsathrahman00-arsath/fpda/internal/service/media"
	planningsvc "github.com/arsathrahman00-arsath/fpda/internal/service/planning"
	"github.com/arsathrahman00-arsath/fpda/pkg/clients/fpda"
)

const cookieName = "fpda_session"

type memoryStore struct {
	sessions map[string]models.UserSession
}

func (m *memoryStore) SaveSession(_ context.Context, id string, s models.UserSession) error {
	m.sessions[id] = s
	return nil
}

func (m *memoryStore) FindSession(_ context.Context, id string) (*models.UserSession, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memoryStore) DeleteSession(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

// stubBackend fakes the external REST backend's envelope responses.
type stubBackend struct {
	itemCreates atomic.Int32
}

func (s *stubBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/user_login", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseMultipartForm(1 << 20)
		if r.FormValue("password") != "secret" {
			_, _ = w.Write([]byte(`{"status":"failure","message":"invalid credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"user_name":"arsath","user_code":"U1","role_selection":"kitchen"}}`))
	})

	mux.HandleFunc("/masjid_list", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":[{"masjid_name":"Jama Masjid","city":"Chennai"}]}`))
	})

	mux.HandleFunc("/masjid_creation", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success"}`))
	})

	mux.HandleFunc("/item_list", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":[{"item_name":"Rice","cat_name":"Grains","unit_short":"kg"}]}`))
	})

	mux.HandleFunc("/item_creation", func(w http.ResponseWriter, _ *http.Request) {
		s.itemCreates.Add(1)
		_, _ = w.Write([]byte(`{"status":"success"}`))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success"}`))
	})

	return mux
}

func newTestServer(t *testing.T) (*gin.Engine, *stubBackend) {
	t.Helper()

	backend := &stubBackend{}
	backendSrv := httptest.NewServer(backend.handler())
	t.Cleanup(backendSrv.Close)

	client := fpda.NewClient(config.BackendConfig{BaseURL: backendSrv.URL, Timeout: 5 * time.Second}, nil)
	manager := authsvc.NewManager(client, &memoryStore{sessions: make(map[string]models.UserSession)}, nil)
	masters := masterdatasvc.NewService(nil)
	planner := planningsvc.NewPlanner(client, nil)
	media := mediasvc.NewService(mediasvc.NewPolicy(config.MediaConfig{MaxImageMB: 2, MaxVideoMB: 10}), client, nil)

	engine := router.New(router.Handlers{
		Auth:     handlers.NewAuthHandler(manager, cookieName, nil),
		Masters:  handlers.NewMastersHandler(client, masters, nil),
		Workflow: handlers.NewWorkflowHandler(client, nil, nil),
		Planning: handlers.NewPlanningHandler(planner, nil, nil),
		Media:    handlers.NewMediaHandler(media, nil),
	}, manager, cookieName, nil)

	return engine, backend
}

func login(t *testing.T, engine *gin.Engine) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"user_name":"arsath","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestRoutesRequireSession(t *testing.T) {
	engine, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/masjids", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginAndListMasjids(t *testing.T) {
	engine, _ := newTestServer(t)
	cookie := login(t, engine)

	req := httptest.NewRequest(http.MethodGet, "/api/masjids", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jama Masjid")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	engine, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"user_name":"arsath","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestCreateMasjidBlocksDuplicate(t *testing.T) {
	engine, _ := newTestServer(t)
	cookie := login(t, engine)

	req := httptest.NewRequest(http.MethodPost, "/api/masjids",
		strings.NewReader(`{"masjid_name":"  jama masjid ","city":"Chennai"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate")
}

func TestItemBatchBlockedOnDuplicateIssuesNoCreates(t *testing.T) {
	engine, backend := newTestServer(t)
	cookie := login(t, engine)

	// Row 2 duplicates the existing "Rice" (case-insensitive); rows 1 and 3
	// must not be submitted either.
	body := `{"items":[
		{"item_name":"Dal","cat_name":"Grains","unit_short":"kg"},
		{"item_name":"RICE","cat_name":"Grains","unit_short":"kg"},
		{"item_name":"Salt","cat_name":"Spices","unit_short":"kg"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/items/batch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int32(0), backend.itemCreates.Load())
}

func TestItemBatchCreatesAllRows(t *testing.T) {
	engine, backend := newTestServer(t)
	cookie := login(t, engine)

	body := `{"items":[
		{"item_name":"Dal","cat_name":"Grains","unit_short":"kg"},
		{"item_name":"Salt","cat_name":"Spices","unit_short":"kg"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/items/batch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int32(2), backend.itemCreates.Load())
	assert.Contains(t, rec.Body.String(), `"results"`)
}

func TestCreateRecipeTypeRejectsMalformedRatio(t *testing.T) {
	engine, _ := newTestServer(t)
	cookie := login(t, engine)

	// A non-numeric ratio must come back as a field error, not silently become
	// a zero ratio.
	for _, body := range []string{
		`{"recipe_type":"Biryani","recipe_totpkt":"abc"}`,
		`{"recipe_type":"Biryani","recipe_totpkt":"-5"}`,
		`{"recipe_type":"Biryani"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/recipe-types", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Contains(t, rec.Body.String(), "recipe_totpkt", "body %s", body)
	}
}

func TestCreateRecipeTypeAcceptsQuotedAndBareRatios(t *testing.T) {
	engine, _ := newTestServer(t)
	cookie := login(t, engine)

	for _, body := range []string{
		`{"recipe_type":"Biryani","recipe_totpkt":50}`,
		`{"recipe_type":"Pongal","recipe_totpkt":"50.5","recipe_perkg":"2"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/recipe-types", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code, "body %s", body)
	}
}

func TestMediaUploadWithoutFileIsAccepted(t *testing.T) {
	engine, _ := newTestServer(t)
	cookie := login(t, engine)

	req := httptest.NewRequest(http.MethodPost, "/api/media/cooking",
		strings.NewReader("capture_date=2026-03-01"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"uploaded":false`)
}
