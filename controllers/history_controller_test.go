package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newHistoryTestRouter(username string, repo *stubRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewHistoryController(repo)

	r := gin.New()
	r.GET("/history", func(c *gin.Context) {
		if username != "" {
			c.Set("username", username)
		}
		ctrl.GetHistory(c)
	})
	return r
}

func seededRepo(n int) *stubRepo {
	repo := &stubRepo{}
	for i := 0; i < n; i++ {
		repo.records = append(repo.records, models.AnalysisRecord{
			ID:        uint(i + 1),
			User:      "demo_user",
			Filename:  "label.jpg",
			Timestamp: time.Now(),
		})
	}
	return repo
}

func getHistory(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetHistoryDefaultLimit(t *testing.T) {
	r := newHistoryTestRouter("demo_user", seededRepo(15))

	w := getHistory(r, "/history")

	assert.Equal(t, http.StatusOK, w.Code)

	var records []models.AnalysisRecord
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 10)
}

func TestGetHistoryExplicitLimit(t *testing.T) {
	r := newHistoryTestRouter("demo_user", seededRepo(15))

	w := getHistory(r, "/history?limit=3")

	assert.Equal(t, http.StatusOK, w.Code)

	var records []models.AnalysisRecord
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 3)
}

func TestGetHistoryRejectsBadLimit(t *testing.T) {
	r := newHistoryTestRouter("demo_user", seededRepo(2))

	for _, raw := range []string{"0", "-5", "abc"} {
		w := getHistory(r, "/history?limit="+raw)
		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", raw)
	}
}

func TestGetHistoryRequiresIdentity(t *testing.T) {
	r := newHistoryTestRouter("", seededRepo(2))

	w := getHistory(r, "/history")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetHistoryRepositoryFailure(t *testing.T) {
	r := newHistoryTestRouter("demo_user", &stubRepo{err: errors.New("connection refused")})

	w := getHistory(r, "/history")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
