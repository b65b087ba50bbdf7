package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rakb/api/internal/api/handlers"
	"rakb/api/internal/store"
)

func diagRouter(st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewDiagHandler(st)
	r := gin.New()
	r.GET("/test", handler.TestDatabase)
	return r
}

func clearStoreEnv(t *testing.T) {
	// t.Setenv registers restoration; Unsetenv makes the variable truly absent.
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("DATABASE_NAME")
}

func TestDiagHandler_Unconfigured(t *testing.T) {
	clearStoreEnv(t)

	mockStore := new(MockStore)
	mockStore.On("Configured").Return(false)
	r := diagRouter(mockStore)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "running", resp["backend"])
	assert.Equal(t, "not available", resp["database"])
	assert.Equal(t, "not connected", resp["connection_status"])
	assert.Equal(t, "not set", resp["database_url"])
	assert.Equal(t, "not set", resp["database_name"])
	assert.Empty(t, resp["collections"])
	mockStore.AssertNotCalled(t, "CollectionNames", mock.Anything)
}

func TestDiagHandler_ConnectedTruncatesCollections(t *testing.T) {
	clearStoreEnv(t)
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "rakb")

	names := make([]string, 12)
	for i := range names {
		names[i] = string(rune('a' + i))
	}

	mockStore := new(MockStore)
	mockStore.On("Configured").Return(true)
	mockStore.On("CollectionNames", mock.Anything).Return(names, nil)
	r := diagRouter(mockStore)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "connected and working", resp["database"])
	assert.Equal(t, "connected", resp["connection_status"])
	assert.Equal(t, "set", resp["database_url"])
	assert.Equal(t, "set", resp["database_name"])
	assert.Len(t, resp["collections"], 10)
}

func TestDiagHandler_ConnectedButErroring(t *testing.T) {
	clearStoreEnv(t)

	mockStore := new(MockStore)
	mockStore.On("Configured").Return(true)
	mockStore.On("CollectionNames", mock.Anything).Return(nil, assert.AnError)
	r := diagRouter(mockStore)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["database"], "connected but erroring")
}
