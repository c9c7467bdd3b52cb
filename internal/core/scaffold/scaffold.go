package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cppforge/genc/internal/defs"
	"github.com/cppforge/genc/internal/template"
	"github.com/cppforge/genc/pkg/version"
)

// Submodule identifies an external repository registered under the project's
// extern/ directory.
type Submodule struct {
	URL  string
	Path string
}

// Options configures a single project generation run. Values are not mutated
// after Generate begins.
type Options struct {
	Dir              string // base directory of the new project
	Name             string // human-supplied project name (e.g., "FooBar")
	IncludeTests     bool   // emit the GoogleTest scaffold and submodule
	IncludeBenchmark bool   // emit the Google Benchmark scaffold and submodule
	DeleteExisting   bool   // recursively remove Dir if it already exists

	Branch         string    // initial branch name; defaults to "main"
	TestFramework  Submodule // defaults to the upstream googletest repository
	BenchFramework Submodule // defaults to the upstream benchmark repository
}

// Result summarizes the outcome of a generation run.
type Result struct {
	Token        string   // derived project token
	CreatedDirs  []string // directories created, relative to Options.Dir
	CreatedFiles []string // files written, relative to Options.Dir
	Submodules   []string // submodule paths registered
}

// GitRunner is the subset of git operations the scaffold pipeline needs.
// *git.Manager satisfies it; tests substitute a mock.
type GitRunner interface {
	InitRepository(ctx context.Context, dir, branch string) error
	AddSubmodule(ctx context.Context, dir, url, relPath string) error
}

// Reporter receives step-by-step progress during generation.
type Reporter interface {
	Step(current, total int, title string)
}

// nopReporter discards all progress events.
type nopReporter struct{}

func (nopReporter) Step(int, int, string) {}

// totalSteps is the fixed number of pipeline steps reported per run.
const totalSteps = 7

// Scaffolder generates a new C++ project on disk.
type Scaffolder interface {
	// Generate runs the full scaffold pipeline. The first failing step
	// aborts the run; whatever was written so far is left on disk.
	Generate(ctx context.Context, opts Options) (*Result, error)
}

// Compile-time interface compliance check.
var _ Scaffolder = (*generator)(nil)

// generator is the concrete implementation of Scaffolder.
type generator struct {
	renderer template.Renderer
	git      GitRunner
	reporter Reporter
	logger   *slog.Logger
}

// NewGenerator creates a Scaffolder with the given dependencies.
// A nil logger discards all log output.
func NewGenerator(renderer template.Renderer, git GitRunner, logger *slog.Logger) *generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &generator{
		renderer: renderer,
		git:      git,
		reporter: nopReporter{},
		logger:   logger,
	}
}

// SetReporter replaces the progress reporter. A nil reporter restores the
// discarding default.
func (g *generator) SetReporter(r Reporter) {
	if r == nil {
		g.reporter = nopReporter{}
		return
	}
	g.reporter = r
}

// Generate runs the scaffold pipeline: base directory, git repository,
// directory tree, source files, build files, submodules, support files.
func (g *generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	if opts.Name == "" {
		return nil, ErrEmptyName
	}
	if opts.Dir == "" {
		return nil, ErrEmptyDir
	}
	opts.Dir = filepath.Clean(opts.Dir)
	applyDefaults(&opts)

	token := DeriveToken(opts.Name)
	result := &Result{Token: token}

	tmplCtx := template.NewContext(
		template.WithProject(opts.Name, token),
		template.WithScaffolds(opts.IncludeTests, opts.IncludeBenchmark),
		template.WithVersion(version.GetVersion()),
	)

	g.logger.Info("scaffolding project",
		"dir", opts.Dir,
		"name", opts.Name,
		"token", token,
		"tests", opts.IncludeTests,
		"benchmark", opts.IncludeBenchmark,
	)

	// Step 1: Create the base directory, replacing an existing one only
	// when DeleteExisting is set.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.reporter.Step(1, totalSteps, "Creating project directory")
	if err := g.prepareBaseDir(opts); err != nil {
		return nil, err
	}

	// Step 2: Initialize the git repository on the configured branch.
	// Must run before submodule registration, which depends on it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.reporter.Step(2, totalSteps, "Initializing git repository")
	if err := g.git.InitRepository(ctx, opts.Dir, opts.Branch); err != nil {
		return nil, fmt.Errorf("initialize repository: %w", err)
	}

	// Step 3: Create the project subdirectory tree, parents first.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.reporter.Step(3, totalSteps, "Creating directory tree")
	for _, dir := range DirectoryPlan(token) {
		dirPath := filepath.Join(opts.Dir, filepath.FromSlash(dir))
		if err := os.Mkdir(dirPath, defs.DirPerm); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dirPath, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
	}

	// Step 4: Emit C++ sources.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.reporter.Step(4, totalSteps, "Writing source files")
	if err := g.emitFiles(opts.Dir, template.SourcePlan(token, opts.IncludeTests, opts.IncludeBenchmark), tmplCtx, result); err != nil {
		return nil, fmt.Errorf("write source files: %w", err)
	}

	// Step 5: Emit CMake build files.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.reporter.Step(5, totalSteps, "Writing build files")
	if err := g.emitFiles(opts.Dir, template.BuildPlan(), tmplCtx, result); err != nil {
		return nil, fmt.Errorf("write build files: %w", err)
	}

	// Step 6: Register framework submodules. Fetch failures are fatal and
	// leave partial submodule state on disk for inspection.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.reporter.Step(6, totalSteps, "Registering submodules")
	if err := g.addSubmodules(ctx, opts, result); err != nil {
		return nil, err
	}

	// Step 7: Emit supporting files (README, code style, gitignore).
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.reporter.Step(7, totalSteps, "Writing support files")
	if err := g.emitFiles(opts.Dir, template.SupportPlan(), tmplCtx, result); err != nil {
		return nil, fmt.Errorf("write support files: %w", err)
	}

	g.logger.Info("project scaffolded",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
		"submodules", len(result.Submodules),
	)

	return result, nil
}

// applyDefaults fills unset optional fields.
func applyDefaults(opts *Options) {
	if opts.Branch == "" {
		opts.Branch = defs.DefaultBranch
	}
	if opts.TestFramework.URL == "" {
		opts.TestFramework = Submodule{URL: defs.GoogleTestURL, Path: defs.GoogleTestPath}
	}
	if opts.BenchFramework.URL == "" {
		opts.BenchFramework = Submodule{URL: defs.BenchmarkURL, Path: defs.BenchmarkPath}
	}
}

// prepareBaseDir creates the base directory. An existing target aborts the
// run before any mutation unless DeleteExisting is set, in which case the
// prior contents are removed first.
func (g *generator) prepareBaseDir(opts Options) error {
	if _, err := os.Stat(opts.Dir); err == nil {
		if !opts.DeleteExisting {
			return fmt.Errorf("%s: %w", opts.Dir, ErrTargetExists)
		}
		g.logger.Info("removing existing directory", "dir", opts.Dir)
		if err := os.RemoveAll(opts.Dir); err != nil {
			return fmt.Errorf("remove existing directory %s: %w", opts.Dir, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", opts.Dir, err)
	}

	if err := os.MkdirAll(opts.Dir, defs.DirPerm); err != nil {
		return fmt.Errorf("create project directory %s: %w", opts.Dir, err)
	}
	return nil
}

// emitFiles renders each plan entry and writes it under baseDir. Writes are
// independent; the first failure aborts the remaining writes.
func (g *generator) emitFiles(baseDir string, plan []template.FileSpec, tmplCtx *template.Context, result *Result) error {
	for _, spec := range plan {
		content, err := g.renderer.Render(spec.Template, tmplCtx)
		if err != nil {
			return fmt.Errorf("render %s: %w", spec.Template, err)
		}

		destPath := filepath.Join(baseDir, filepath.FromSlash(spec.RelPath))
		if err := os.WriteFile(destPath, content, defs.FilePerm); err != nil {
			return fmt.Errorf("write %s: %w", spec.RelPath, err)
		}
		result.CreatedFiles = append(result.CreatedFiles, spec.RelPath)
	}
	return nil
}

// addSubmodules registers the framework submodules selected by the scaffold
// toggles. No retry is attempted and no partial state is cleaned up.
func (g *generator) addSubmodules(ctx context.Context, opts Options, result *Result) error {
	if opts.IncludeTests {
		if err := g.git.AddSubmodule(ctx, opts.Dir, opts.TestFramework.URL, opts.TestFramework.Path); err != nil {
			return fmt.Errorf("register test framework: %w", err)
		}
		result.Submodules = append(result.Submodules, opts.TestFramework.Path)
	}
	if opts.IncludeBenchmark {
		if err := g.git.AddSubmodule(ctx, opts.Dir, opts.BenchFramework.URL, opts.BenchFramework.Path); err != nil {
			return fmt.Errorf("register benchmark framework: %w", err)
		}
		result.Submodules = append(result.Submodules, opts.BenchFramework.Path)
	}
	return nil
}
