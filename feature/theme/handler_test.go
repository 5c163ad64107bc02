package theme

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"toolbox/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string) (Mode, error) { return "", errors.New("store down") }
func (failingStore) Set(context.Context, string, Mode) error   { return errors.New("store down") }
func (failingStore) Delete(context.Context, string) error      { return errors.New("store down") }

func setupTestApp(store Store) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(store, zap.NewNop(), metrics.New())).RegisterRoutes(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHandleThemeLifecycle(t *testing.T) {
	app := setupTestApp(NewMemoryStore())

	code, body := do(t, app, "GET", "/theme", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, map[string]string{"key": DefaultKey, "mode": "Automatic"}, body)

	code, body = do(t, app, "PUT", "/theme", `{"key":"alice","mode":"DarkMode"}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "DarkMode", body["mode"])

	code, body = do(t, app, "GET", "/theme?key=alice", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "DarkMode", body["mode"])

	code, body = do(t, app, "DELETE", "/theme?key=alice", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Automatic", body["mode"])

	_, body = do(t, app, "GET", "/theme?key=alice", "")
	assert.Equal(t, "Automatic", body["mode"])
}

func TestHandleTheme_BadRequests(t *testing.T) {
	app := setupTestApp(NewMemoryStore())

	code, body := do(t, app, "PUT", "/theme", `{"key":"alice","mode":"Sepia"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body["error"], "invalid theme mode")

	code, _ = do(t, app, "GET", "/theme?key=a/b", "")
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = do(t, app, "PUT", "/theme", `{"key":`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestHandleTheme_StoreFailure(t *testing.T) {
	app := setupTestApp(failingStore{})

	code, body := do(t, app, "GET", "/theme", "")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "store down", body["error"])

	code, _ = do(t, app, "PUT", "/theme", `{"mode":"LightMode"}`)
	assert.Equal(t, fiber.StatusInternalServerError, code)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(NewMemoryStore(), zap.NewNop(), nil)

	assert.Equal(t, "theme", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))

	assert.False(t, NewFeature(nil, zap.NewNop(), nil).IsEnabled())
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(context.Background(), Config{Backend: BackendMemory}, databaseConfigForTest(), storageConfigForTest())
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = NewStore(context.Background(), Config{Backend: BackendDatabase}, databaseConfigForTest(), storageConfigForTest())
	require.NoError(t, err)
	assert.IsType(t, &DatabaseStore{}, store)

	_, err = NewStore(context.Background(), Config{Backend: "redis"}, databaseConfigForTest(), storageConfigForTest())
	assert.ErrorContains(t, err, "unknown theme backend")
}
