package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/studentrecords/internal/config"
	"github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/seed"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("DB_DRIVER", config.DriverMemory)
	t.Setenv("DB_SEED", "true")
	prev := config.DotEnvFile
	config.DotEnvFile = filepath.Join(t.TempDir(), ".env")
	t.Cleanup(func() { config.DotEnvFile = prev })

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	return cfg
}

func TestMemoryDriverServesSeededStudent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := memoryConfig(t)
	lgr := zerolog.Nop()

	storage, err := SetupDatabase(cfg, lgr)
	if err != nil {
		t.Fatalf("SetupDatabase: %v", err)
	}
	defer storage.Close()
	if storage.Postgres != nil {
		t.Fatal("memory driver opened a postgres pool")
	}

	deps, err := BuildDependencies(cfg, storage, lgr)
	if err != nil {
		t.Fatalf("BuildDependencies: %v", err)
	}
	router := SetupRouter(cfg, deps, lgr)

	req := httptest.NewRequest(http.MethodGet, "/students/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("request id header missing")
	}

	var students []struct {
		Email           string            `json:"email"`
		AcademicRecords []json.RawMessage `json:"academic_records"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &students); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(students) != 1 || students[0].Email != seed.DemoStudentEmail || len(students[0].AcademicRecords) != 1 {
		t.Fatalf("students = %+v", students)
	}
}

func TestBuildDependenciesRequiresStorage(t *testing.T) {
	if _, err := BuildDependencies(&config.Config{}, nil, zerolog.Nop()); err == nil {
		t.Fatal("expected error without storage")
	}
}
