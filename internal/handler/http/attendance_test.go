package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarky95/form-attendance/internal/repository/memory"
	attendanceService "github.com/zarky95/form-attendance/internal/service/attendance"
	employeeService "github.com/zarky95/form-attendance/internal/service/employee"
)

type testEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestRouter() http.Handler {
	employeeSvc := employeeService.NewEmployeeService(memory.NewEmployeeRepository())
	attendanceSvc := attendanceService.NewAttendanceService(memory.NewAttendanceRepository())

	employeeHandler := NewEmployeeHandler(employeeSvc)
	attendanceHandler := NewAttendanceHandler(attendanceSvc)

	return NewRouter(employeeHandler, attendanceHandler, "http://localhost:3000")
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, testEnvelope) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestCreateAttendance_Created(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/attendance", map[string]interface{}{
		"employeeId":     "emp1",
		"date":           "2024-03-11",
		"timeIn":         "09:00",
		"timeOut":        "17:30",
		"breakTimeStart": "12:00",
		"breakTimeEnd":   "13:00",
		"status":         "present",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, envelope.Success)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &created))
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "7.5", created["totalHours"])
	assert.Equal(t, "office", created["workLocation"])
}

func TestCreateAttendance_ValidationError(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/attendance", map[string]interface{}{
		"employeeId": "emp1",
		"date":       "2024-03-11",
		"status":     "on-leave",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Contains(t, envelope.Error.Details, "status")
}

func TestCreateAttendance_MalformedTime(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/attendance", map[string]interface{}{
		"employeeId": "emp1",
		"date":       "2024-03-11",
		"timeIn":     "nine sharp",
		"timeOut":    "17:30",
		"status":     "present",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Contains(t, envelope.Error.Details, "timeIn")
}

func TestGetAttendance_NotFound(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/attendance/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestDeleteAttendance_ReturnsConfirmation(t *testing.T) {
	router := newTestRouter()

	_, created := doJSON(t, router, http.MethodPost, "/api/attendance", map[string]interface{}{
		"employeeId": "emp1",
		"date":       "2024-03-11",
		"status":     "present",
	})
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(created.Data, &record))
	id := record["id"].(string)

	rec, envelope := doJSON(t, router, http.MethodDelete, "/api/attendance/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Attendance record deleted successfully", envelope.Message)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/attendance/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatsRoute_NotShadowedByIDRoute(t *testing.T) {
	router := newTestRouter()

	for _, body := range []map[string]interface{}{
		{"employeeId": "emp1", "date": "2024-03-11", "status": "present"},
		{"employeeId": "emp1", "date": "2024-03-12", "status": "late"},
		{"employeeId": "emp1", "date": "2024-03-13", "status": "absent"},
	} {
		rec, _ := doJSON(t, router, http.MethodPost, "/api/attendance", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/attendance/stats?employeeId=emp1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &stats))
	assert.Equal(t, float64(3), stats["totalDays"])
	assert.Equal(t, "66.7", stats["attendanceRate"])
}

func TestEmployeeCRUD(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/employees", map[string]interface{}{
		"employeeId": "EMP001",
		"name":       "John Smith",
		"email":      "john.smith@company.com",
		"department": "Engineering",
		"position":   "Senior Developer",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &created))
	id := created["id"].(string)

	rec, envelope = doJSON(t, router, http.MethodPut, "/api/employees/"+id, map[string]interface{}{
		"position": "Staff Engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &updated))
	assert.Equal(t, "Staff Engineer", updated["position"])
	assert.Equal(t, "John Smith", updated["name"])

	rec, _ = doJSON(t, router, http.MethodGet, "/api/employees", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/employees/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeeCreate_DuplicateEmailConflict(t *testing.T) {
	router := newTestRouter()

	body := map[string]interface{}{
		"employeeId": "EMP001",
		"name":       "John Smith",
		"email":      "john.smith@company.com",
		"department": "Engineering",
		"position":   "Senior Developer",
	}
	rec, _ := doJSON(t, router, http.MethodPost, "/api/employees", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	body["employeeId"] = "EMP002"
	rec, envelope := doJSON(t, router, http.MethodPost, "/api/employees", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}
