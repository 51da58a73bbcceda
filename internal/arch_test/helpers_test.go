package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"testing"
)

const (
	modulePath  = "github.com/papapumpkin/mythoscape"
	internalPfx = modulePath + "/internal/"
)

var excludedPkgs = map[string]bool{
	"arch_test": true,
}

var (
	repoRootOnce sync.Once
	repoRootPath string
)

// repoRoot returns the absolute path to the repository root by walking up
// from this file until go.mod is found.
func repoRoot(t *testing.T) string {
	t.Helper()
	repoRootOnce.Do(func() {
		_, thisFile, _, ok := runtime.Caller(0)
		if !ok {
			return
		}
		for dir := filepath.Dir(thisFile); ; dir = filepath.Dir(dir) {
			if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
				repoRootPath = dir
				return
			}
			if filepath.Dir(dir) == dir {
				return
			}
		}
	})
	if repoRootPath == "" {
		t.Fatal("could not find go.mod in any parent directory")
	}
	return repoRootPath
}

func internalDirPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(repoRoot(t), "internal")
}

// internalPackages returns the package directories under internal/ that hold
// Go source, excluding arch_test.
func internalPackages(t *testing.T) []string {
	t.Helper()

	dir := internalDirPath(t)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}

	var pkgs []string
	for _, e := range entries {
		if !e.IsDir() || excludedPkgs[e.Name()] {
			continue
		}
		if len(goFilesIn(t, filepath.Join(dir, e.Name()))) > 0 {
			pkgs = append(pkgs, e.Name())
		}
	}
	sort.Strings(pkgs)
	return pkgs
}

// goFilesIn returns the non-test .go files in dir, sorted.
func goFilesIn(t *testing.T, dir string) []string {
	t.Helper()
	return listGoFiles(t, dir, false)
}

// allGoFilesIn returns every .go file in dir including tests, sorted.
func allGoFilesIn(t *testing.T, dir string) []string {
	t.Helper()
	return listGoFiles(t, dir, true)
}

func listGoFiles(t *testing.T, dir string, withTests bool) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading directory %s: %v", dir, err)
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if !withTests && strings.HasSuffix(name, "_test.go") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files
}

// parsePackage parses the non-test files of one internal package.
func parsePackage(t *testing.T, pkg string, mode parser.Mode) (*token.FileSet, []*ast.File) {
	t.Helper()

	fset := token.NewFileSet()
	var files []*ast.File
	for _, path := range goFilesIn(t, filepath.Join(internalDirPath(t), pkg)) {
		f, err := parser.ParseFile(fset, path, nil, mode)
		if err != nil {
			t.Fatalf("parsing %s: %v", path, err)
		}
		files = append(files, f)
	}
	return fset, files
}

// importsOf returns the deduplicated internal packages imported by pkg's
// non-test files, e.g. ["creature", "mood"].
func importsOf(t *testing.T, pkg string) []string {
	t.Helper()

	_, files := parsePackage(t, pkg, parser.ImportsOnly)
	seen := make(map[string]bool)
	for _, f := range files {
		for _, imp := range f.Imports {
			path := strings.Trim(imp.Path.Value, `"`)
			rel, ok := strings.CutPrefix(path, internalPfx)
			if !ok {
				continue
			}
			first, _, _ := strings.Cut(rel, "/")
			seen[first] = true
		}
	}

	result := make([]string, 0, len(seen))
	for p := range seen {
		result = append(result, p)
	}
	sort.Strings(result)
	return result
}

// lineCount returns the number of lines in the file at path. A final line
// without a trailing newline still counts.
func lineCount(t *testing.T, path string) int {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if len(data) == 0 {
		return 0
	}
	n := strings.Count(string(data), "\n")
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}

func TestInternalPackages(t *testing.T) {
	t.Parallel()

	pkgs := internalPackages(t)
	found := make(map[string]bool, len(pkgs))
	for _, p := range pkgs {
		found[p] = true
	}
	if found["arch_test"] {
		t.Error("internalPackages should exclude arch_test")
	}
	for _, want := range []string{"mood", "creature", "journal", "store", "tui"} {
		if !found[want] {
			t.Errorf("expected package %q in %v", want, pkgs)
		}
	}
}

func TestImportsOf(t *testing.T) {
	t.Parallel()

	got := strings.Join(importsOf(t, "journal"), ",")
	for _, want := range []string{"creature", "metaphor", "mood"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected internal/journal to import %q, got %s", want, got)
		}
	}
	if imports := importsOf(t, "mood"); len(imports) != 0 {
		t.Errorf("internal/mood should import no internal packages, got %v", imports)
	}
}

func TestLineCount(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cases := map[string]int{"": 0, "a\n": 1, "a\nb": 2, "a\nb\n\n": 3}
	i := 0
	for src, want := range cases {
		path := filepath.Join(dir, strings.Repeat("f", i+1)+".go")
		i++
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		if got := lineCount(t, path); got != want {
			t.Errorf("lineCount(%q) = %d, want %d", src, got, want)
		}
	}
}
