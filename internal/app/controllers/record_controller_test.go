package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/roster/internal/app/controllers"
	"github.com/campusware/roster/internal/app/models"
	"github.com/campusware/roster/internal/app/routes"
	"github.com/campusware/roster/internal/app/services"
	"github.com/campusware/roster/internal/app/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.New(t.TempDir(), store.FormatCSV, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, st.Ensure(models.Students, models.Courses))

	studentService := services.NewRosterService(st, models.Students, zerolog.Nop())
	courseService := services.NewRosterService(st, models.Courses, zerolog.Nop())

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewStudentController(studentService),
		controllers.NewCourseController(courseService),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const annJSON = `{"name":"Ann","sex":"Female","age":"20","institution":"X","major":"CS"}`
const bobJSON = `{"name":"Bob","sex":"Male","age":"21","institution":"Y","major":"EE"}`

func TestCreateStudent(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/students", annJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1", resp.Data["id"])
	assert.Equal(t, "Ann", resp.Data["name"])
}

func TestCreateStudentMissingField(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/students", `{"name":"Ann"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VAL_001", resp.Error.Code)
}

func TestListReturnsPositions(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/students", annJSON).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/students", bobJSON).Code)

	w := doJSON(t, router, http.MethodGet, "/api/v1/students", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Position int               `json:"position"`
			Record   map[string]string `json:"record"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 1, resp.Data[0].Position)
	assert.Equal(t, "Ann", resp.Data[0].Record["name"])
	assert.Equal(t, 2, resp.Data[1].Position)
	assert.Equal(t, "Bob", resp.Data[1].Record["name"])
}

func TestSearchWithoutQueryReturnsEverything(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/students", annJSON).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/students", bobJSON).Code)

	w := doJSON(t, router, http.MethodGet, "/api/v1/students/search", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Position int               `json:"position"`
			Record   map[string]string `json:"record"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestSearchQueryIsCaseInsensitive(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/students", annJSON).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/students", bobJSON).Code)

	w := doJSON(t, router, http.MethodGet, "/api/v1/students/search?q=BOB", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Position int               `json:"position"`
			Record   map[string]string `json:"record"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 2, resp.Data[0].Position)
	assert.Equal(t, "Bob", resp.Data[0].Record["name"])
}

func TestSortUnknownField(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/students/sort", `{"field":"gpa"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateKeepsEmptyValues(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/students", annJSON).Code)

	w := doJSON(t, router, http.MethodPut, "/api/v1/students/1", `{"fields":{"major":"Math","age":""}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Math", resp.Data["major"])
	assert.Equal(t, "20", resp.Data["age"])
	assert.Equal(t, "1", resp.Data["id"])
}

func TestDeleteOutOfRangeIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/students/5", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RES_001", resp.Error.Code)
}

func TestDeleteNonNumericPosition(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/students/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompact(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/students", annJSON).Code)

	w := doJSON(t, router, http.MethodPost, "/api/v1/students/compact", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExportSetsDownloadHeaders(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/courses", `{"name":"Algorithms","credit":"4","property":"Compulsory"}`).Code)

	w := doJSON(t, router, http.MethodGet, "/api/v1/courses/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=courses.xlsx", w.Header().Get("Content-Disposition"))
	assert.NotZero(t, w.Body.Len())
}

func TestCollectionsAreIndependent(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/students", annJSON).Code)

	w := doJSON(t, router, http.MethodGet, "/api/v1/courses", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}
