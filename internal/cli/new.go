package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cppforge/genc/internal/cli/wizard"
	"github.com/cppforge/genc/internal/config"
	"github.com/cppforge/genc/internal/core/git"
	"github.com/cppforge/genc/internal/core/scaffold"
	"github.com/cppforge/genc/internal/template"
	"github.com/cppforge/genc/internal/ui"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new C++ project",
	Long: `Scaffold a new C++ project at the given directory.

The project name is converted to a snake_case token used for folder names and
include paths (MyProject -> my_project). The generated tree contains a
hello-world library, a CLI entry point, CMake build files, and optional
GoogleTest / Google Benchmark scaffolds wired in as git submodules.

Examples:
  genc new -d ./my-app -n MyApp
  genc new -d /tmp/x -n FooBar --benchmark=false
  genc new -d ./my-app -n MyApp -D            Replace an existing directory
  genc new                                    Interactive wizard (TTY only)`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringP("dir", "d", "", "New project's base directory (created if missing)")
	newCmd.Flags().StringP("name", "n", "", "Name of the new project")
	newCmd.Flags().BoolP("tests", "t", true, "Include the GoogleTest scaffold and submodule")
	newCmd.Flags().BoolP("benchmark", "b", true, "Include the Google Benchmark scaffold and submodule")
	newCmd.Flags().BoolP("delete", "D", false, "Delete the target directory first if it exists")
	newCmd.Flags().String("config", "", "Path to a genc defaults file (default: ~/.config/genc/config.yaml)")
}

// runNew executes the project scaffold workflow.
func runNew(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(getStringFlag(cmd, "config"))
	if err != nil {
		return fmt.Errorf("load defaults: %w", err)
	}

	opts, err := buildOptions(cmd, cfg)
	if err != nil {
		return err
	}

	printPreSummary(cmd, opts)

	// Build dependencies
	catalog, err := template.Catalog()
	if err != nil {
		return fmt.Errorf("load template catalog: %w", err)
	}
	renderer := template.NewRenderer(catalog)
	gitMgr := git.NewManager(nil)

	gen := scaffold.NewGenerator(renderer, gitMgr, nil)

	reporter := newProgressReporter(ui.NewProgress(ui.DefaultTheme(), ui.NewHeadlessManager()))
	gen.SetReporter(reporter)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := gen.Generate(ctx, opts)
	reporter.close()
	if err != nil {
		return fmt.Errorf("scaffold failed: %w", err)
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Token", result.Token},
			{"Directories", fmt.Sprintf("%d created", len(result.CreatedDirs))},
			{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
			{"Submodules", fmt.Sprintf("%d registered", len(result.Submodules))},
		}),
	}
	_, _ = fmt.Fprintln(out, renderSuccessCard("Project "+opts.Name+" created", details...))

	printNextSteps(cmd, opts.Dir)
	return nil
}

// buildOptions assembles scaffold options from the defaults file, flags, and
// (when required values are missing on a TTY) the interactive wizard.
func buildOptions(cmd *cobra.Command, cfg *config.Config) (scaffold.Options, error) {
	tests := cfg.Defaults.Tests
	if cmd.Flags().Changed("tests") {
		tests = getBoolFlag(cmd, "tests")
	}
	benchmark := cfg.Defaults.Benchmark
	if cmd.Flags().Changed("benchmark") {
		benchmark = getBoolFlag(cmd, "benchmark")
	}

	opts := scaffold.Options{
		Dir:              getStringFlag(cmd, "dir"),
		Name:             getStringFlag(cmd, "name"),
		IncludeTests:     tests,
		IncludeBenchmark: benchmark,
		DeleteExisting:   getBoolFlag(cmd, "delete"),
		Branch:           cfg.Git.Branch,
		TestFramework: scaffold.Submodule{
			URL:  cfg.Submodules.GoogleTest.URL,
			Path: cfg.Submodules.GoogleTest.Path,
		},
		BenchFramework: scaffold.Submodule{
			URL:  cfg.Submodules.Benchmark.URL,
			Path: cfg.Submodules.Benchmark.Path,
		},
	}

	if opts.Dir != "" && opts.Name != "" {
		return opts, nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return opts, errors.New(`required flags "dir" and "name" not set (or run interactively from a terminal)`)
	}

	result, err := wizard.Run(wizard.Result{
		Name:      opts.Name,
		Dir:       opts.Dir,
		Tests:     opts.IncludeTests,
		Benchmark: opts.IncludeBenchmark,
		Delete:    opts.DeleteExisting,
	})
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			return opts, err
		}
		return opts, fmt.Errorf("wizard failed: %w", err)
	}

	opts.Name = result.Name
	opts.Dir = result.Dir
	opts.IncludeTests = result.Tests
	opts.IncludeBenchmark = result.Benchmark
	opts.DeleteExisting = result.Delete
	return opts, nil
}

// printPreSummary prints the pre-action summary of the requested
// configuration. It is printed before any work so that a failed run still
// shows what was attempted.
func printPreSummary(cmd *cobra.Command, opts scaffold.Options) {
	absDir := opts.Dir
	if a, err := filepath.Abs(opts.Dir); err == nil {
		absDir = a
	}

	body := renderKeyValueLines([]kvPair{
		{"Project name", opts.Name},
		{"Base directory", absDir},
		{"GoogleTest scaffold", fmt.Sprintf("%t", opts.IncludeTests)},
		{"Benchmark scaffold", fmt.Sprintf("%t", opts.IncludeBenchmark)},
		{"Delete existing", fmt.Sprintf("%t", opts.DeleteExisting)},
	})
	if opts.DeleteExisting {
		body += "\n\n" + symWarning() + " An existing directory at the target path will be removed."
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderCard("Scaffold configuration", body))
}

// nextStepsMarkdown is the post-scaffold guidance rendered after success.
const nextStepsMarkdown = "## Next steps\n\n" +
	"```sh\n" +
	"cd %s\n" +
	"git submodule update --init --recursive\n" +
	"cmake -S . -B build\n" +
	"cmake --build build\n" +
	"```\n"

// printNextSteps renders the next-steps guidance, using glamour on TTYs and
// plain markdown otherwise.
func printNextSteps(cmd *cobra.Command, dir string) {
	out := cmd.OutOrStdout()
	md := fmt.Sprintf(nextStepsMarkdown, dir)

	if isatty.IsTerminal(os.Stdout.Fd()) {
		if rendered, err := glamour.Render(md, "auto"); err == nil {
			_, _ = fmt.Fprint(out, rendered)
			return
		}
	}
	_, _ = fmt.Fprint(out, md)
}

// progressReporter adapts ui.Progress to the scaffold.Reporter interface,
// creating the step bar lazily once the total step count is known.
type progressReporter struct {
	progress ui.Progress
	bar      ui.StepBar
}

func newProgressReporter(p ui.Progress) *progressReporter {
	return &progressReporter{progress: p}
}

// Step implements scaffold.Reporter.
func (r *progressReporter) Step(current, total int, title string) {
	if r.bar == nil {
		r.bar = r.progress.Steps(total)
	}
	r.bar.Step(current, title)
}

// close completes the underlying bar, if one was started.
func (r *progressReporter) close() {
	if r.bar != nil {
		r.bar.Done()
	}
}
