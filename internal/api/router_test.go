package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"monastery/internal/api/controllers"
	"monastery/internal/catalog"
	"monastery/internal/explorer"
	"monastery/internal/infra"
	"monastery/internal/mapview"
	"monastery/internal/repositories"
	"monastery/internal/services"
	"monastery/internal/slideshow"
	mem "monastery/pkg/memcache"
	"monastery/pkg/middleware"
	"monastery/pkg/utils"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	tokens := utils.NewTokenManager("router-secret", time.Hour)
	revoked := mem.NewRevokedTokens()

	ex := explorer.New(catalog.Default(), mapview.Options{}, logger)
	ex.Start()
	t.Cleanup(ex.Stop)

	accounts := services.NewAccountService(repositories.NewMemoryAccountRepository(), tokens, revoked, logger)
	photos := services.NewPhotoService(repositories.NewMemoryPhotoRepository(), infra.NewMemoryUploadStore(), 1024, []string{"images/rumtek.jpg"}, logger)
	contact := services.NewContactService(repositories.NewMemoryContactRepository(), services.NewNoopMailService(logger), logger)
	t.Cleanup(contact.Wait)

	h := Handlers{
		Account:   controllers.NewAccountController(accounts),
		Photo:     controllers.NewPhotoController(photos, 1024),
		Contact:   controllers.NewContactController(contact),
		Monastery: controllers.NewMonasteryController(ex, logger),
		Slideshow: controllers.NewSlideshowController(slideshow.New([]string{"a.jpg", "b.jpg", "c.jpg"}, logger)),
		Health:    controllers.NewHealthController("test"),
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	RegisterRoutes(r, h, middleware.JWTAuthMiddleware(tokens, revoked))
	return r
}

func request(r http.Handler, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func login(t *testing.T, r http.Handler, username, password string) string {
	t.Helper()
	w, _ := request(r, http.MethodPost, "/api/auth/signup", map[string]string{"username": username, "password": password}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := request(r, http.MethodPost, "/api/auth/login", map[string]string{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out.Token
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w, env := request(r, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.NotEmpty(t, env.TraceID)
}

func TestMonasteryRoutes(t *testing.T) {
	r := newTestRouter(t)

	t.Run("list all", func(t *testing.T) {
		w, env := request(r, http.MethodGet, "/api/monasteries", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var view explorer.View
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, 9, view.Count)
		assert.Len(t, view.Markers, 9)
		assert.Equal(t, "Found 9 monasteries matching your criteria.", env.Message)
	})

	t.Run("list filtered", func(t *testing.T) {
		w, env := request(r, http.MethodGet, "/api/monasteries?category=Kagyu&region=East%20Sikkim", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var view explorer.View
		require.NoError(t, json.Unmarshal(env.Data, &view))
		require.Equal(t, 2, view.Count)
		assert.Equal(t, "Rumtek Monastery", view.Records[0].Name)
		assert.Equal(t, "Lingdum Monastery (Ranka)", view.Records[1].Name)
	})

	t.Run("apply filter moves shared map", func(t *testing.T) {
		w, _ := request(r, http.MethodPost, "/api/monasteries/filter", map[string]string{"search": "ding"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		w, env := request(r, http.MethodGet, "/api/monasteries/current", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var view explorer.View
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.True(t, view.Filtered)
		require.Equal(t, 1, view.Count)
		assert.Equal(t, "Tashiding Monastery", view.Records[0].Name)
		require.Len(t, view.Markers, 1)

		markerPath := "/api/monasteries/markers/" + strconv.FormatUint(uint64(view.Markers[0].ID), 10)
		w, env = request(r, http.MethodGet, markerPath, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), "Tashiding Monastery")

		w, _ = request(r, http.MethodGet, "/api/monasteries/markers/1", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/monasteries/map", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"FeatureCollection"`)
		assert.Contains(t, w.Body.String(), "Tashiding")
		assert.NotContains(t, w.Body.String(), "Rumtek")
	})

	t.Run("filters", func(t *testing.T) {
		_, env := request(r, http.MethodGet, "/api/monasteries/filters", nil, "")
		var opts struct {
			Categories []string `json:"categories"`
			Regions    []string `json:"regions"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &opts))
		assert.Equal(t, []string{"Kagyu", "Nyingma"}, opts.Categories)
		assert.Equal(t, []string{"East Sikkim", "West Sikkim", "North Sikkim"}, opts.Regions)
	})

	t.Run("detail", func(t *testing.T) {
		w, env := request(r, http.MethodGet, "/api/monasteries/detail?name=Do%20Drul%20Chorten", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), "monastery.html?name=Do%20Drul%20Chorten")

		w, _ = request(r, http.MethodGet, "/api/monasteries/detail?name=Nowhere", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w, _ = request(r, http.MethodGet, "/api/monasteries/detail", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("nearby", func(t *testing.T) {
		w, env := request(r, http.MethodGet, "/api/monasteries/nearby?lat=27.2886&lon=88.5616&radius_km=5", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), "Rumtek")

		w, _ = request(r, http.MethodGet, "/api/monasteries/nearby?lat=abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSlideRoutes(t *testing.T) {
	r := newTestRouter(t)

	var st slideshow.State
	_, env := request(r, http.MethodPost, "/api/slides/previous", nil, "")
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, 2, st.Current)

	_, env = request(r, http.MethodPost, "/api/slides/next", nil, "")
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, 0, st.Current)

	_, env = request(r, http.MethodPost, "/api/slides/show", map[string]int{"index": 1}, "")
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, 1, st.Current)
	assert.True(t, st.Slides[1].Active)
}

func TestAuthRoutes(t *testing.T) {
	r := newTestRouter(t)

	w, _ := request(r, http.MethodPost, "/api/auth/signup", map[string]string{"username": "ab", "password": "secret1"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	adminToken := login(t, r, "abbot", "secret1")
	userToken := login(t, r, "pilgrim", "secret2")

	w, _ = request(r, http.MethodPost, "/api/auth/signup", map[string]string{"username": "abbot", "password": "secret1"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = request(r, http.MethodPost, "/api/auth/login", map[string]string{"username": "abbot", "password": "nope!!"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = request(r, http.MethodGet, "/api/accounts", nil, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := request(r, http.MethodGet, "/api/accounts", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "pilgrim")

	w, _ = request(r, http.MethodPost, "/api/auth/logout", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = request(r, http.MethodGet, "/api/accounts", nil, adminToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func uploadRequest(t *testing.T, filename string, content []byte, token string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/photos", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestPhotoRoutes(t *testing.T) {
	r := newTestRouter(t)
	adminToken := login(t, r, "abbot", "secret1")
	userToken := login(t, r, "pilgrim", "secret2")

	_, env := request(r, http.MethodGet, "/api/photos", nil, "")
	assert.Contains(t, string(env.Data), `"placeholder":true`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "a.png", pngBytes, userToken))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "notes.txt", []byte("just text"), adminToken))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "huge.png", append(append([]byte{}, pngBytes...), make([]byte, 2048)...), adminToken))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "Photo must be 1.0 KiB or smaller")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "rumtek.png", pngBytes, adminToken))
	require.Equal(t, http.StatusCreated, w.Code)
	var env2 envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env2))
	var photo struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(env2.Data, &photo))
	require.True(t, strings.HasPrefix(photo.URL, "/uploads/"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, photo.URL, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pngBytes, w.Body.Bytes())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, env = request(r, http.MethodGet, "/api/photos", nil, "")
	assert.NotContains(t, string(env.Data), `"placeholder":true`)
}

func TestPhotoRoutes_ServedTypeIgnoresClientName(t *testing.T) {
	r := newTestRouter(t)
	adminToken := login(t, r, "abbot", "secret1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "evil.html", pngBytes, adminToken))
	require.Equal(t, http.StatusCreated, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var photo struct {
		URL         string `json:"url"`
		ContentType string `json:"content_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &photo))
	assert.True(t, strings.HasSuffix(photo.URL, ".png"), photo.URL)
	assert.NotContains(t, photo.URL, ".html")
	assert.Equal(t, "image/png", photo.ContentType)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, photo.URL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	svg := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "evil.svg", svg, adminToken))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/evil.svg", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactRoutes(t *testing.T) {
	r := newTestRouter(t)
	adminToken := login(t, r, "abbot", "secret1")

	w, _ := request(r, http.MethodPost, "/api/contact", map[string]string{"name": "Tenzin", "email": "bad", "message": "hi"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = request(r, http.MethodPost, "/api/contact", map[string]string{"name": "Tenzin", "email": "t@example.com", "message": "Visiting hours?"}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = request(r, http.MethodGet, "/api/contact", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := request(r, http.MethodGet, "/api/contact?page=1&pageSize=5", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Visiting hours?")

	w, _ = request(r, http.MethodGet, "/api/contact?page=0", nil, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
