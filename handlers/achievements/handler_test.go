package achievements

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/fura-1993/totono/testutils"
	"github.com/fura-1993/totono/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)
	utils.Logger.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func newAchievementRequest(t *testing.T, method, target string, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("Erreur lors de l'écriture du champ %s: %s", key, err)
		}
	}
	writer.Close()

	req, _ := http.NewRequest(method, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestGetPublishedAchievements_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "achievements" WHERE is_published = \$1 ORDER BY work_date DESC, display_order ASC, created_at DESC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "is_published", "created_at", "updated_at"}).
			AddRow(1, "松の剪定", "桜川市内のお庭で松2本を剪定しました", true, now, now))

	r := testutils.SetupTestRouter()
	r.GET("/api/achievements", GetPublishedAchievements)

	req, _ := http.NewRequest(http.MethodGet, "/api/achievements", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var achievements []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &achievements)
	assert.Len(t, achievements, 1)
	assert.Equal(t, "松の剪定", achievements[0]["title"])
}

func TestGetAllAchievements_DatabaseError(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "achievements" ORDER BY work_date DESC, display_order ASC, created_at DESC`).
		WillReturnError(gorm.ErrInvalidDB)

	r := testutils.SetupTestRouter()
	r.GET("/api/admin/achievements", GetAllAchievements)

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/achievements", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestCreateAchievement_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "achievements" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/achievements", CreateAchievement)

	req := newAchievementRequest(t, http.MethodPost, "/api/admin/achievements", map[string]string{
		"title":        "庭のリフォーム",
		"description":  "草刈りと伐採を行いました",
		"location":     "茨城県桜川市",
		"serviceType":  "伐採",
		"displayOrder": "2",
		"isPublished":  "true",
	})
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, true, respBody["success"])
	assert.Equal(t, float64(1), respBody["id"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAchievement_MissingTitle(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/achievements", CreateAchievement)

	req := newAchievementRequest(t, http.MethodPost, "/api/admin/achievements", map[string]string{
		"description": "草刈りと伐採を行いました",
	})
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "タイトルと説明は必須です", respBody["error"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAchievement_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "achievements" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PATCH("/api/admin/achievements/:id", UpdateAchievement)

	req := newAchievementRequest(t, http.MethodPatch, "/api/admin/achievements/1", map[string]string{
		"title":       "庭のリフォーム",
		"description": "内容を更新しました",
		"isPublished": "false",
	})
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAchievement_InvalidID(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.PATCH("/api/admin/achievements/:id", UpdateAchievement)

	req := newAchievementRequest(t, http.MethodPatch, "/api/admin/achievements/abc", map[string]string{
		"title":       "庭のリフォーム",
		"description": "内容を更新しました",
	})
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDeleteAchievement_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "achievements" WHERE id = \$1 (.+)LIMIT (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "created_at", "updated_at"}).
			AddRow(1, "松の剪定", "説明", now, now))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "achievements" WHERE "achievements"."id" = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/api/admin/achievements/:id", DeleteAchievement)

	req, _ := http.NewRequest(http.MethodDelete, "/api/admin/achievements/1", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAchievement_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "achievements" WHERE id = \$1 (.+)LIMIT (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.DELETE("/api/admin/achievements/:id", DeleteAchievement)

	req, _ := http.NewRequest(http.MethodDelete, "/api/admin/achievements/99", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
