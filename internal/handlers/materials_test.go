package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TEJ42000/ALLMS-sub002/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	courses   []models.Course
	materials map[string][]map[string]interface{}
	err       error
}

func (f *fakeStore) Courses(ctx context.Context) ([]models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.courses, nil
}

func (f *fakeStore) Materials(ctx context.Context, courseID string, limit int) ([]map[string]interface{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	docs := f.materials[courseID]
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func newTestRouter(f *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewMaterialsHandler(f)
	router.GET("/courses", h.ListCourses)
	router.GET("/courses/:id/materials", h.ListMaterials)
	router.GET("/admin/verify-materials", h.VerifyMaterials)
	return router
}

func TestListCourses(t *testing.T) {
	router := newTestRouter(&fakeStore{courses: []models.Course{
		{ID: "spanish-a1", Title: "Spanish for Beginners (A1)", Term: "fall-2026", CreatedAt: time.Now()},
		{ID: "french-b1", Title: "Intermediate French (B1)", Term: "fall-2026", CreatedAt: time.Now()},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
	require.Len(t, courses, 2)
	assert.Equal(t, "spanish-a1", courses[0].ID)
	assert.Equal(t, "Intermediate French (B1)", courses[1].Title)
}

func TestListCoursesStoreError(t *testing.T) {
	router := newTestRouter(&fakeStore{err: errors.New("unavailable")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListMaterials(t *testing.T) {
	router := newTestRouter(&fakeStore{materials: map[string][]map[string]interface{}{
		"spanish-a1": {
			{"filename": "week1_greetings.pdf", "weekNumber": float64(1), "tier": "free"},
			{"filename": "week2_numbers.pdf", "weekNumber": float64(2), "tier": "free"},
		},
	}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/spanish-a1/materials", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CourseID  string                   `json:"course_id"`
		Materials []map[string]interface{} `json:"materials"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "spanish-a1", resp.CourseID)
	require.Len(t, resp.Materials, 2)
	assert.Equal(t, "week1_greetings.pdf", resp.Materials[0]["filename"])
}

func TestListMaterialsLimit(t *testing.T) {
	docs := make([]map[string]interface{}, 60)
	for i := range docs {
		docs[i] = map[string]interface{}{"filename": "f.pdf"}
	}
	router := newTestRouter(&fakeStore{materials: map[string][]map[string]interface{}{"spanish-a1": docs}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/spanish-a1/materials?limit=3", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Materials []map[string]interface{} `json:"materials"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Materials, 3)
}

func TestListMaterialsLimitRejected(t *testing.T) {
	router := newTestRouter(&fakeStore{})

	for _, raw := range []string{"0", "-1", "101", "abc"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/spanish-a1/materials?limit="+raw, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", raw)
	}
}

func TestVerifyMaterials(t *testing.T) {
	docs := make([]map[string]interface{}, 7)
	for i := range docs {
		docs[i] = map[string]interface{}{
			"filename":   "w.pdf",
			"weekNumber": float64(i + 1),
			"tier":       "free",
		}
	}
	router := newTestRouter(&fakeStore{
		courses: []models.Course{
			{ID: "spanish-a1"},
			{ID: "german-a2"},
		},
		materials: map[string][]map[string]interface{}{"spanish-a1": docs},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/verify-materials", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Courses []models.CourseVerification `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Courses, 2)

	assert.Equal(t, "spanish-a1", resp.Courses[0].CourseID)
	assert.Equal(t, 7, resp.Courses[0].TotalMaterials)
	assert.Len(t, resp.Courses[0].Sample, 5)
	assert.Equal(t, float64(1), resp.Courses[0].Sample[0].WeekNumber)

	// Empty course still appears, with no sample
	assert.Equal(t, "german-a2", resp.Courses[1].CourseID)
	assert.Equal(t, 0, resp.Courses[1].TotalMaterials)
	assert.Empty(t, resp.Courses[1].Sample)
}

func TestVerifyMaterialsMissingFieldsRenderNone(t *testing.T) {
	router := newTestRouter(&fakeStore{
		courses:   []models.Course{{ID: "french-b1"}},
		materials: map[string][]map[string]interface{}{"french-b1": {{}}},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/verify-materials", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Courses []models.CourseVerification `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Courses, 1)
	require.Len(t, resp.Courses[0].Sample, 1)
	assert.Equal(t, "None", resp.Courses[0].Sample[0].Filename)
	assert.Equal(t, "None", resp.Courses[0].Sample[0].WeekNumber)
	assert.Equal(t, "None", resp.Courses[0].Sample[0].Tier)
}
