package scanner_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/projlens/internal/analysis"
	"github.com/blackwell-systems/projlens/internal/scanner"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const minimalProject = `<Project Sdk="Microsoft.NET.Sdk"></Project>`

func TestDiscover_FindsNestedProjects(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "App/App.csproj", minimalProject)
	writeFile(t, root, "src/deep/nested/Lib.csproj", minimalProject)
	writeFile(t, root, "README.md", "not a project")

	paths, err := scanner.Discover(root, nil)

	require.NoError(t, err)
	assert.Len(t, paths, 2)
	for _, p := range paths {
		assert.True(t, filepath.IsAbs(p), "paths should be absolute: %s", p)
	}
}

func TestDiscover_ExtensionIsCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Upper.CSPROJ", minimalProject)

	paths, err := scanner.Discover(root, nil)

	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestDiscover_SkipsConfiguredDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "App/App.csproj", minimalProject)
	writeFile(t, root, "App/obj/Generated.csproj", minimalProject)
	writeFile(t, root, "bin/Stale.csproj", minimalProject)

	paths, err := scanner.Discover(root, map[string]bool{"bin": true, "obj": true})

	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Contains(t, paths[0], "App.csproj")
}

func TestDiscover_NonExistentRoot(t *testing.T) {
	paths, err := scanner.Discover(filepath.Join(t.TempDir(), "nope"), nil)

	assert.Error(t, err)
	assert.Empty(t, paths)
}

func TestScan_RecordsFollowDiscoveryOrder(t *testing.T) {
	root := t.TempDir()
	// Enough files to make out-of-order completion likely if ordering
	// were not pinned to the discovery index.
	var names []string
	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("p%02d", i)
		writeFile(t, root, name+"/"+name+".csproj", minimalProject)
		names = append(names, name)
	}

	s := scanner.New()
	records := s.Scan(root)

	require.Len(t, records, 20)
	for i, r := range records {
		assert.Equal(t, names[i], r.Name)
	}
}

func TestScan_IsolatesBrokenFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Good/Good.csproj", minimalProject)
	writeFile(t, root, "Bad/Bad.csproj", "<Project><unclosed")

	s := scanner.New()
	records := s.Scan(root)

	require.Len(t, records, 2)
	var bad, good int
	for i, r := range records {
		if r.Name == "Bad" {
			bad = i
		} else {
			good = i
		}
	}
	assert.NotEmpty(t, records[bad].ParseErrors)
	assert.Empty(t, records[good].ParseErrors)
}

func TestScan_NonExistentRootLogsAndContinues(t *testing.T) {
	s := scanner.New()
	var logged []string
	s.Logf = func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	records := s.Scan(filepath.Join(t.TempDir(), "missing"))

	assert.Empty(t, records)
	assert.NotEmpty(t, logged, "enumeration failure should be logged")
}

func TestScan_ReturnsFreshSlice(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "A/A.csproj", minimalProject)

	s := scanner.New()
	first := s.Scan(root)
	require.Len(t, first, 1)
	first[0].Name = "mutated"

	second := s.Scan(root)
	require.Len(t, second, 1)
	assert.Equal(t, "A", second[0].Name, "callers must not share a mutable collection")
}

func TestScanAndReport_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "A.csproj", `<Project>
  <PropertyGroup>
    <TargetFramework>net10.0</TargetFramework>
    <OutputType>Exe</OutputType>
    <Nullable>enable</Nullable>
    <ImplicitUsings>enable</ImplicitUsings>
  </PropertyGroup>
  <ItemGroup>
    <PackageReference Include="X" Version="1" />
    <PackageReference Include="Y" Version="2" />
  </ItemGroup>
</Project>`)
	writeFile(t, root, "B.csproj", minimalProject)

	s := scanner.New()
	records := s.Scan(root)
	require.Len(t, records, 2)

	sum := analysis.Summarize(records)
	assert.Equal(t, 2, sum.TotalProjects)
	assert.Equal(t, 2, sum.TotalPackages)
	assert.Equal(t, 1, sum.NullableEnabled)

	doc := analysis.BuildReport(records)
	require.NotNil(t, doc)
	assert.NotEmpty(t, doc.Elements)
}

func TestScan_RelativePathsAgainstRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/Api/Api.csproj", minimalProject)

	s := scanner.New()
	records := s.Scan(root)

	require.Len(t, records, 1)
	assert.Equal(t, filepath.Join("src", "Api", "Api.csproj"), records[0].RelPath)
}
