package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/workhours-go/pkg/workhours/parser"
)

const sampleCatalog = `
shifts:
  A: {start: "07:00", end: "15:00"}
  N: {start: "19:00", end: "07:00"}
header_markers:
  - employeename
  - kommen
min_marker_matches: 1
fields:
  in_time: ["Kommen", "In Time"]
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "Calculated_Working_Hours.xlsx", cfg.Output)
	assert.Nil(t, cfg.Catalog)

	opts := cfg.Options()
	assert.Equal(t, parser.DefaultHeaderMatcher(), opts.Header)
	assert.Equal(t, parser.Shift{Start: "06:00", End: "14:00"}, opts.Shifts.Lookup("A"))
}

func TestLoadFromEnv(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)
	t.Setenv("WORKHOURS_OUTPUT", "out.xlsx")
	t.Setenv("WORKHOURS_LOGLEVEL", "debug")
	t.Setenv("WORKHOURS_CATALOG_FILE", path)
	t.Setenv("WORKHOURS_HEADER_MARKERS", "badge,punch in")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "out.xlsx", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.NotNil(t, cfg.Catalog)

	opts := cfg.Options()
	assert.Equal(t, []string{"badge", "punch in"}, opts.Header.Markers, "env markers win over the catalog")
	assert.Equal(t, parser.Shift{Start: "19:00", End: "07:00"}, opts.Shifts.Lookup("N"))
	assert.Equal(t, parser.Shift{}, opts.Shifts.Lookup("B"), "catalog replaces the default shifts")
	assert.Equal(t, []string{"Kommen", "In Time"}, opts.Fields[parser.FieldInTime])
	assert.Equal(t, []string{"Out Time", "Out-Time"}, opts.Fields[parser.FieldOutTime])
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog(writeCatalog(t, sampleCatalog))
	require.NoError(t, err)

	assert.Len(t, c.Shifts, 2)
	assert.Equal(t, []string{"employeename", "kommen"}, c.HeaderMarkers)

	cfg := &Config{Output: "x.xlsx", Catalog: c}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"employeename", "kommen"}, cfg.Options().Header.Markers)
}

func TestLoadCatalogErrors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadCatalog(writeCatalog(t, "shifts: [not, a, map"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{Output: "a.xlsx"}, false},
		{"empty output", Config{}, true},
		{"long shift code", Config{Output: "a.xlsx", Catalog: &Catalog{
			Shifts: map[string]parser.Shift{"AB": {}},
		}}, true},
		{"empty markers", Config{Output: "a.xlsx", Catalog: &Catalog{
			HeaderMarkers: []string{},
		}}, true},
		{"negative matches", Config{Output: "a.xlsx", Catalog: &Catalog{
			MinMarkerMatches: -1,
		}}, true},
		{"unknown field", Config{Output: "a.xlsx", Catalog: &Catalog{
			Fields: map[string][]string{"badge": {"Badge"}},
		}}, true},
		{"valid catalog", Config{Output: "a.xlsx", Catalog: &Catalog{
			Shifts: map[string]parser.Shift{"N": {Start: "19:00", End: "07:00"}},
			Fields: map[string][]string{"lunch": {"Break"}},
		}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
