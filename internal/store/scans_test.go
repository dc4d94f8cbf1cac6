package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/projlens/internal/analysis"
	"github.com/blackwell-systems/projlens/internal/msbuild"
	"github.com/blackwell-systems/projlens/internal/store"
)

func sampleProjects() []msbuild.Project {
	return []msbuild.Project{
		{
			Name: "Api", RelPath: "src/Api/Api.csproj",
			TargetFramework: "net8.0", OutputType: "Exe",
			Nullable: true, ImplicitUsings: true,
			Packages:          []msbuild.Package{{Name: "Serilog", Version: "3.1.1"}},
			ProjectReferences: 1,
		},
		{
			Name: "Broken", RelPath: "Broken.csproj", OutputType: "Library",
			ParseErrors: []string{"no root element"},
		},
	}
}

func TestSaveScan_RoundTrip(t *testing.T) {
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	projects := sampleProjects()
	id, err := db.SaveScan("/repo", "test", projects, analysis.Summarize(projects))
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	scans, err := db.ListScans(0)
	require.NoError(t, err)
	require.Len(t, scans, 1)

	s := scans[0]
	assert.Equal(t, "/repo", s.Root)
	assert.Equal(t, 2, s.TotalProjects)
	assert.Equal(t, 1, s.TotalPackages)
	assert.Equal(t, 1, s.NullableEnabled)
	assert.Equal(t, 1, s.ErrorCount)
	assert.False(t, s.TakenAt.IsZero())
}

func TestProjectsForScan(t *testing.T) {
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	projects := sampleProjects()
	id, err := db.SaveScan("/repo", "test", projects, analysis.Summarize(projects))
	require.NoError(t, err)

	rows, err := db.ProjectsForScan(id)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Api", rows[0].Name)
	assert.Equal(t, "net8.0", rows[0].Framework)
	assert.Equal(t, 1, rows[0].PackageCount)
	assert.True(t, rows[0].Nullable)
	assert.Empty(t, rows[0].ParseErrors)

	assert.Equal(t, "Broken", rows[1].Name)
	assert.Contains(t, rows[1].ParseErrors, "no root element")
}

func TestListScans_NewestFirstWithLimit(t *testing.T) {
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	for _, root := range []string{"/one", "/two", "/three"} {
		_, err := db.SaveScan(root, "test", nil, analysis.Summarize(nil))
		require.NoError(t, err)
	}

	scans, err := db.ListScans(2)
	require.NoError(t, err)
	require.Len(t, scans, 2)
	assert.Equal(t, "/three", scans[0].Root)
	assert.Equal(t, "/two", scans[1].Root)
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "projlens.db")

	db, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
