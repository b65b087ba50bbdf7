package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"rakb/api/internal/store"
)

// DiagHandler reports database connectivity for operational checks. It
// mutates nothing and must keep responding when the store is unconfigured.
type DiagHandler struct {
	store store.Store
}

// NewDiagHandler creates a new DiagHandler.
func NewDiagHandler(st store.Store) *DiagHandler {
	return &DiagHandler{store: st}
}

// TestDatabase handles GET /test
func (h *DiagHandler) TestDatabase(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.store.Configured() {
		resp["database"] = "available"
		resp["connection_status"] = "connected"

		names, err := h.store.CollectionNames(c.Request.Context())
		if err != nil {
			resp["database"] = "connected but erroring: " + truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			resp["collections"] = names
			resp["database"] = "connected and working"
		}
	}

	// Report presence only, never the values.
	resp["database_url"] = envStatus("DATABASE_URL")
	resp["database_name"] = envStatus("DATABASE_NAME")

	c.JSON(http.StatusOK, resp)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
