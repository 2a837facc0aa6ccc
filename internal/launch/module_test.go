package launch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/shandysiswandi/golaunch/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkguid"
)

type mapConfig map[string]any

func (m mapConfig) GetInt(key string) int64 {
	v, _ := m[key].(int64)
	return v
}

func (m mapConfig) GetBool(key string) bool {
	v, _ := m[key].(bool)
	return v
}

func (m mapConfig) GetFloat(key string) float64 {
	v, _ := m[key].(float64)
	return v
}

func (m mapConfig) GetString(key string) string {
	v, _ := m[key].(string)
	return v
}

func (m mapConfig) GetArray(key string) []string {
	v, _ := m[key].([]string)
	return v
}

func (mapConfig) Close() error { return nil }

type fixedID int64

func (f fixedID) Generate() int64 { return int64(f) }

func TestNew_RegistersDashboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launches.csv")
	csv := "Launch Site,Payload Mass (kg),Booster Version Category,class\n" +
		"CCAFS LC-40,0,v1.0,0\n" +
		"KSC LC-39A,2490,FT,1\n"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatalf("WriteFile() err = %v", err)
	}

	router := pkgrouter.NewRouter(pkguid.NewUUID())
	_, err := New(Dependency{
		Config: mapConfig{
			"dataset.path":           path,
			"dataset.format":         "auto",
			"dashboard.slider_step":  float64(500),
			"dashboard.chart_width":  int64(320),
			"dashboard.chart_height": int64(240),
		},
		Router:   router,
		Context:  context.Background(),
		NumberID: fixedID(1),
	})
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}

	for _, target := range []string{"/", "/api/options", "/api/charts/success-pie", "/charts/payload-scatter.png"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", target, rec.Code)
		}
	}
}

func TestNew_MissingDataset(t *testing.T) {
	_, err := New(Dependency{
		Config:   mapConfig{"dataset.path": filepath.Join(t.TempDir(), "missing.csv")},
		Router:   pkgrouter.NewRouter(pkguid.NewUUID()),
		NumberID: fixedID(1),
	})
	if err == nil {
		t.Fatal("New() expected error, got nil")
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(Dependency{
		Config: mapConfig{"dataset.path": "x.csv", "dataset.format": "xlsx"},
		Router: pkgrouter.NewRouter(pkguid.NewUUID()),
	})
	if err == nil {
		t.Fatal("New() expected error, got nil")
	}
}
