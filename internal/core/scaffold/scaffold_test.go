package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cppforge/genc/internal/template"
)

// --- Mock implementations for testing ---

type submoduleCall struct {
	dir  string
	url  string
	path string
}

type mockGit struct {
	initDir    string
	initBranch string
	initErr    error
	submodules []submoduleCall
	subErr     error
}

func (m *mockGit) InitRepository(_ context.Context, dir, branch string) error {
	m.initDir = dir
	m.initBranch = branch
	return m.initErr
}

func (m *mockGit) AddSubmodule(_ context.Context, dir, url, relPath string) error {
	if m.subErr != nil {
		return m.subErr
	}
	m.submodules = append(m.submodules, submoduleCall{dir: dir, url: url, path: relPath})
	return nil
}

type stepRecord struct {
	current int
	total   int
	title   string
}

type recordingReporter struct {
	steps []stepRecord
}

func (r *recordingReporter) Step(current, total int, title string) {
	r.steps = append(r.steps, stepRecord{current, total, title})
}

// --- helpers ---

func newTestGenerator(t *testing.T, g GitRunner) *generator {
	t.Helper()
	catalog, err := template.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	return NewGenerator(template.NewRenderer(catalog), g, nil)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to not exist", path)
	}
}

// --- Generate tests ---

func TestGenerate_FullScaffold(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x")
	mock := &mockGit{}
	gen := newTestGenerator(t, mock)
	reporter := &recordingReporter{}
	gen.SetReporter(reporter)

	result, err := gen.Generate(context.Background(), Options{
		Dir:              dir,
		Name:             "FooBar",
		IncludeTests:     true,
		IncludeBenchmark: true,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if result.Token != "foo_bar" {
		t.Errorf("Token = %q, want %q", result.Token, "foo_bar")
	}

	for _, rel := range []string{
		"include/foo_bar",
		"tests/unit",
		"tests/benchmark",
	} {
		info, err := os.Stat(filepath.Join(dir, rel))
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %s, err = %v", rel, err)
		}
	}

	assertFileExists(t, filepath.Join(dir, "app", "main.cpp"))
	assertFileExists(t, filepath.Join(dir, "include", "foo_bar", "message.h"))
	assertFileExists(t, filepath.Join(dir, "src", "message.cpp"))
	assertFileExists(t, filepath.Join(dir, "tests", "unit", "message_tests.cpp"))
	assertFileExists(t, filepath.Join(dir, "tests", "benchmark", "message_perf.cpp"))
	assertFileExists(t, filepath.Join(dir, "README.md"))
	assertFileExists(t, filepath.Join(dir, ".clang-format"))
	assertFileExists(t, filepath.Join(dir, ".gitignore"))

	// Root build descriptor carries the literal project name.
	rootCMake, err := os.ReadFile(filepath.Join(dir, "CMakeLists.txt"))
	if err != nil {
		t.Fatalf("read root CMakeLists.txt: %v", err)
	}
	if !strings.Contains(string(rootCMake), "project(FooBar") {
		t.Errorf("root CMakeLists.txt missing literal project name, got:\n%s", rootCMake)
	}

	// Sources reference the derived token, not the raw name.
	mainCpp, err := os.ReadFile(filepath.Join(dir, "app", "main.cpp"))
	if err != nil {
		t.Fatalf("read main.cpp: %v", err)
	}
	if !strings.Contains(string(mainCpp), "<foo_bar/message.h>") {
		t.Errorf("main.cpp missing token include path, got:\n%s", mainCpp)
	}

	// Repository initialized on main before submodules were added.
	if mock.initDir != dir || mock.initBranch != "main" {
		t.Errorf("InitRepository called with (%q, %q), want (%q, %q)", mock.initDir, mock.initBranch, dir, "main")
	}
	if len(mock.submodules) != 2 {
		t.Fatalf("submodule calls = %d, want 2", len(mock.submodules))
	}
	if mock.submodules[0].path != "extern/googletest" || mock.submodules[1].path != "extern/benchmark" {
		t.Errorf("submodule paths = %v", mock.submodules)
	}
	if got := result.Submodules; len(got) != 2 {
		t.Errorf("result.Submodules = %v, want 2 entries", got)
	}

	// All seven pipeline steps reported against the same total.
	if len(reporter.steps) != 7 {
		t.Fatalf("reported steps = %d, want 7", len(reporter.steps))
	}
	for i, s := range reporter.steps {
		if s.current != i+1 || s.total != 7 {
			t.Errorf("step %d reported as (%d/%d)", i+1, s.current, s.total)
		}
	}
}

func TestGenerate_ScaffoldsDisabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x")
	mock := &mockGit{}
	gen := newTestGenerator(t, mock)

	result, err := gen.Generate(context.Background(), Options{
		Dir:  dir,
		Name: "FooBar",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	assertNotExists(t, filepath.Join(dir, "tests", "unit", "message_tests.cpp"))
	assertNotExists(t, filepath.Join(dir, "tests", "benchmark", "message_perf.cpp"))

	if len(mock.submodules) != 0 {
		t.Errorf("submodule calls = %v, want none", mock.submodules)
	}
	if len(result.Submodules) != 0 {
		t.Errorf("result.Submodules = %v, want none", result.Submodules)
	}

	// The test directories themselves are part of the fixed tree.
	assertFileExists(t, filepath.Join(dir, "tests", "unit", "CMakeLists.txt"))
	assertFileExists(t, filepath.Join(dir, "tests", "benchmark", "CMakeLists.txt"))
}

func TestGenerate_TargetExists(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "precious.txt")
	if err := os.WriteFile(marker, []byte("keep me"), 0o644); err != nil {
		t.Fatal(err)
	}

	gen := newTestGenerator(t, &mockGit{})

	_, err := gen.Generate(context.Background(), Options{Dir: dir, Name: "FooBar"})
	if !errors.Is(err, ErrTargetExists) {
		t.Fatalf("Generate() error = %v, want ErrTargetExists", err)
	}

	// No mutation: the prior contents are untouched and nothing was written.
	data, err := os.ReadFile(marker)
	if err != nil || string(data) != "keep me" {
		t.Errorf("existing file modified: %v %q", err, data)
	}
	assertNotExists(t, filepath.Join(dir, "CMakeLists.txt"))
}

func TestGenerate_DeleteExisting(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "stale.txt")
	if err := os.WriteFile(marker, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	gen := newTestGenerator(t, &mockGit{})

	_, err := gen.Generate(context.Background(), Options{
		Dir:            dir,
		Name:           "FooBar",
		DeleteExisting: true,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	assertNotExists(t, marker)
	assertFileExists(t, filepath.Join(dir, "CMakeLists.txt"))
}

func TestGenerate_Deterministic(t *testing.T) {
	base := t.TempDir()
	gen := newTestGenerator(t, &mockGit{})
	opts := Options{Name: "FooBar", IncludeTests: true, IncludeBenchmark: true}

	dirA := filepath.Join(base, "a")
	dirB := filepath.Join(base, "b")

	opts.Dir = dirA
	resultA, err := gen.Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Generate() error = %v", err)
	}

	opts.Dir = dirB
	resultB, err := gen.Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}

	if len(resultA.CreatedFiles) != len(resultB.CreatedFiles) {
		t.Fatalf("file counts differ: %d vs %d", len(resultA.CreatedFiles), len(resultB.CreatedFiles))
	}

	for _, rel := range resultA.CreatedFiles {
		a, err := os.ReadFile(filepath.Join(dirA, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatalf("read %s: %v", rel, err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatalf("read %s: %v", rel, err)
		}
		if string(a) != string(b) {
			t.Errorf("file %s differs between runs", rel)
		}
	}
}

func TestGenerate_GitInitFailureAborts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x")
	mock := &mockGit{initErr: errors.New("git exploded")}
	gen := newTestGenerator(t, mock)

	_, err := gen.Generate(context.Background(), Options{Dir: dir, Name: "FooBar"})
	if err == nil {
		t.Fatal("Generate() expected error, got nil")
	}

	// Pipeline aborted before the tree was built; base dir is left on disk.
	assertNotExists(t, filepath.Join(dir, "src"))
}

func TestGenerate_SubmoduleFailureAborts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x")
	mock := &mockGit{subErr: errors.New("network unreachable")}
	gen := newTestGenerator(t, mock)

	_, err := gen.Generate(context.Background(), Options{
		Dir:          dir,
		Name:         "FooBar",
		IncludeTests: true,
	})
	if err == nil {
		t.Fatal("Generate() expected error, got nil")
	}

	// Support files come after submodules and must not have been written.
	assertNotExists(t, filepath.Join(dir, "README.md"))
}

func TestGenerate_EmptyInputs(t *testing.T) {
	gen := newTestGenerator(t, &mockGit{})

	if _, err := gen.Generate(context.Background(), Options{Dir: t.TempDir()}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("missing name: error = %v, want ErrEmptyName", err)
	}
	if _, err := gen.Generate(context.Background(), Options{Name: "FooBar"}); !errors.Is(err, ErrEmptyDir) {
		t.Errorf("missing dir: error = %v, want ErrEmptyDir", err)
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := filepath.Join(t.TempDir(), "x")
	gen := newTestGenerator(t, &mockGit{})

	_, err := gen.Generate(ctx, Options{Dir: dir, Name: "FooBar"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate() error = %v, want context.Canceled", err)
	}
	assertNotExists(t, dir)
}

func TestGenerate_CustomSubmoduleSources(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x")
	mock := &mockGit{}
	gen := newTestGenerator(t, mock)

	_, err := gen.Generate(context.Background(), Options{
		Dir:           dir,
		Name:          "FooBar",
		IncludeTests:  true,
		TestFramework: Submodule{URL: "https://example.com/gtest.git", Path: "extern/gt"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(mock.submodules) != 1 {
		t.Fatalf("submodule calls = %d, want 1", len(mock.submodules))
	}
	if mock.submodules[0].url != "https://example.com/gtest.git" || mock.submodules[0].path != "extern/gt" {
		t.Errorf("submodule call = %+v", mock.submodules[0])
	}
}
