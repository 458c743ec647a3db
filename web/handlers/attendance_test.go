package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hrmslite.com/hrmslite/core"
	"hrmslite.com/hrmslite/model"
	"hrmslite.com/hrmslite/utils"
	"hrmslite.com/hrmslite/web/common"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Employee{}, &model.Attendance{}))

	store := core.NewWithDB(db)
	r := gin.New()
	api := r.Group("/api")
	RegisterEmployees(api, store)
	RegisterAttendance(api, store)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, common.Response) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp common.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func createEmployee(t *testing.T, r *gin.Engine, employeeID, fullName string) {
	t.Helper()
	w, resp := do(t, r, http.MethodPost, "/api/employees",
		`{"employeeId":"`+employeeID+`","fullName":"`+fullName+`","email":"`+
			strings.ToLower(employeeID)+`@example.com","department":"Engineering"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, resp.Success)
}

func TestEmployeeLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w, resp := do(t, r, http.MethodPost, "/api/employees",
		`{"employeeId":"E001","fullName":"Jane Doe","email":"jane@example.com","department":"Engineering"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Employee added successfully", resp.Message)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "E001", data["employeeId"])
	assert.Equal(t, "Employee", data["role"])
	assert.Equal(t, "Active", data["status"])

	// duplicate id
	w, resp = do(t, r, http.MethodPost, "/api/employees",
		`{"employeeId":"E001","fullName":"Jane Doe","email":"other@example.com","department":"Engineering"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, resp.Success)

	// fetch
	w, resp = do(t, r, http.MethodGet, "/api/employees/E001", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	// update strips immutable fields silently
	w, resp = do(t, r, http.MethodPut, "/api/employees/E001",
		`{"fullName":"Jane Smith","employeeId":"HACKED","email":"hacked@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data = resp.Data.(map[string]any)
	assert.Equal(t, "Jane Smith", data["fullName"])
	assert.Equal(t, "E001", data["employeeId"])
	assert.Equal(t, "jane@example.com", data["email"])

	// unknown id
	w, _ = do(t, r, http.MethodGet, "/api/employees/GHOST1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeValidationError(t *testing.T) {
	r := newTestRouter(t)

	w, resp := do(t, r, http.MethodPost, "/api/employees",
		`{"employeeId":"E1","fullName":"Jane Doe","email":"jane@example.com","department":"Engineering"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "employeeId")
}

func TestMarkAttendanceScenario(t *testing.T) {
	r := newTestRouter(t)
	createEmployee(t, r, "E001", "Jane Doe")

	today := utils.TodayUTC()
	w, resp := do(t, r, http.MethodPost, "/api/attendance?employeeId=E001",
		`{"attendanceDate":"`+today+`","isPresent":true,"checkInTime":"09:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Attendance marked successfully for today", resp.Message)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "Jane Doe", data["employeeName"])
	assert.Equal(t, today+"T09:00:00", data["checkInTime"])

	// immediate re-mark
	w, resp = do(t, r, http.MethodPost, "/api/attendance?employeeId=E001",
		`{"attendanceDate":"`+today+`"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, resp.Success)
}

func TestMarkAttendanceUnparseableClockTime(t *testing.T) {
	r := newTestRouter(t)
	createEmployee(t, r, "E001", "Jane Doe")

	w, resp := do(t, r, http.MethodPost, "/api/attendance?employeeId=E001",
		`{"attendanceDate":"`+utils.TodayUTC()+`","checkInTime":"25:99"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp.Data.(map[string]any)
	assert.Nil(t, data["checkInTime"])
}

func TestMarkAttendanceUnknownEmployee(t *testing.T) {
	r := newTestRouter(t)

	w, resp := do(t, r, http.MethodPost, "/api/attendance?employeeId=GHOST1",
		`{"attendanceDate":"`+utils.TodayUTC()+`"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
}

func TestMarkAttendanceMissingEmployeeIDParam(t *testing.T) {
	r := newTestRouter(t)

	w, resp := do(t, r, http.MethodPost, "/api/attendance",
		`{"attendanceDate":"`+utils.TodayUTC()+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Message, "employeeId")
}

func TestMarkAttendanceWrongDate(t *testing.T) {
	r := newTestRouter(t)
	createEmployee(t, r, "E001", "Jane Doe")

	w, resp := do(t, r, http.MethodPost, "/api/attendance?employeeId=E001",
		`{"attendanceDate":"2020-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Message, "2020-01-01")
}

func TestDeleteEmployeeRemovesAttendance(t *testing.T) {
	r := newTestRouter(t)
	createEmployee(t, r, "E001", "Jane Doe")

	w, _ := do(t, r, http.MethodPost, "/api/attendance?employeeId=E001",
		`{"attendanceDate":"`+utils.TodayUTC()+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = do(t, r, http.MethodDelete, "/api/employees/E001", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := do(t, r, http.MethodGet, "/api/attendance", "")
	require.Equal(t, http.StatusOK, w.Code)
	records := resp.Data.([]any)
	assert.Empty(t, records)
}

func TestCleanupEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, resp := do(t, r, http.MethodDelete, "/api/attendance/cleanup", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.EqualValues(t, 0, data["deletedRecords"])
}

func TestListByDateBadFormat(t *testing.T) {
	r := newTestRouter(t)

	w, resp := do(t, r, http.MethodGet, "/api/attendance/date/31-08-2026", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}
