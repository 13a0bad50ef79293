package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"sobat/internal/app/server"
	"sobat/internal/domain/payroll"
	"sobat/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   any             `json:"error"`
}

func TestPayrollImportJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		DatabaseURL:       dbURL,
		JWTSecret:         "test-secret",
		Environment:       "test",
		TokenTTL:          time.Hour,
		SeedAdminEmail:    "admin@test.local",
		SeedAdminPassword: "ChangeMe123!",
		RunMigrations:     true,
		RunSeed:           true,
		MigrationsDir:     "../../../../migrations",
		MaxBodyBytes:      1048576,
		MaxUploadBytes:    16 << 20,
		DefaultPageSize:   50,
		MaxPageSize:       500,
	}

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()
	client := ts.Client()

	token := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	employeeName := fmt.Sprintf("Journey Tester %d", time.Now().UnixNano())
	createEmployee(t, client, ts.URL, token, employeeName)

	preview := importWorkbook(t, client, ts.URL, token, employeeName)
	if preview.RowsCount != 1 {
		t.Fatalf("expected 1 previewed row, got %d", preview.RowsCount)
	}

	result := commitRows(t, client, ts.URL, token, preview.Rows)
	if result.Saved != 1 {
		t.Fatalf("expected 1 saved, got %+v", result)
	}

	// a second commit of the same rows must hit the duplicate gate
	replay := commitRows(t, client, ts.URL, token, preview.Rows)
	if replay.Saved != 0 {
		t.Fatalf("expected 0 saved on replay, got %+v", replay)
	}
	if len(replay.Errors) != 1 || replay.Errors[0].Reason != payroll.ReasonAlreadyExists {
		t.Fatalf("expected already-exists error, got %+v", replay.Errors)
	}
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	res, err := client.Post(baseURL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login returned %d", res.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("login returned no token")
	}
	return data.Token
}

func createEmployee(t *testing.T, client *http.Client, baseURL, token, name string) {
	t.Helper()
	body, _ := json.Marshal(map[string]any{"name": name, "division": "fnb"})
	req, _ := http.NewRequest(http.MethodPost, baseURL+"/api/v1/employees", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("create employee failed: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create employee returned %d", res.StatusCode)
	}
}

func importWorkbook(t *testing.T, client *http.Client, baseURL, token, employeeName string) payroll.Preview {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetList()[0]
	cells := map[string]any{
		"B3": "NAMA KARYAWAN",
		"B5": employeeName,
		"D5": 26,
		"J5": 22,
		"K5": 3500000,
	}
	for axis, value := range cells {
		if err := f.SetCellValue(sheet, axis, value); err != nil {
			t.Fatalf("set cell %s: %v", axis, err)
		}
	}
	workbook, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "rekap.xlsx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(workbook.Bytes()); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.WriteField("period", "2024-05"); err != nil {
		t.Fatalf("write period field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPost, baseURL+"/api/v1/payroll/fnb/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("import returned %d", res.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode import response: %v", err)
	}
	var preview payroll.Preview
	if err := json.Unmarshal(env.Data, &preview); err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	return preview
}

func commitRows(t *testing.T, client *http.Client, baseURL, token string, rows []payroll.Row) payroll.CommitResult {
	t.Helper()
	body, _ := json.Marshal(map[string]any{"rows": rows})
	req, _ := http.NewRequest(http.MethodPost, baseURL+"/api/v1/payroll/fnb/import/commit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("commit returned %d", res.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode commit response: %v", err)
	}
	var result payroll.CommitResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode commit result: %v", err)
	}
	return result
}
