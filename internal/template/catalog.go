package template

import (
	"embed"
	"io/fs"
	"path"

	"github.com/cppforge/genc/internal/defs"
)

//go:embed templates
var embeddedFS embed.FS

// Catalog returns the embedded template filesystem, rooted at the templates
// directory so template names match the paths used by the file plans.
func Catalog() (fs.FS, error) {
	return fs.Sub(embeddedFS, "templates")
}

// FileSpec pairs a destination path (relative to the project base directory)
// with the catalog template that produces its content.
type FileSpec struct {
	RelPath  string
	Template string
}

// SourcePlan returns the C++ source files to emit, in write order. The
// library header lives under the per-project include directory named after
// the derived token.
func SourcePlan(token string, tests, benchmark bool) []FileSpec {
	plan := []FileSpec{
		{RelPath: path.Join(defs.AppDir, defs.MainCpp), Template: "app/main.cpp.tmpl"},
		{RelPath: path.Join(defs.IncludeDir, token, defs.MessageHeader), Template: "include/message.h.tmpl"},
		{RelPath: path.Join(defs.SrcDir, defs.MessageCpp), Template: "src/message.cpp.tmpl"},
	}
	if tests {
		plan = append(plan, FileSpec{
			RelPath:  path.Join(defs.TestsDir, defs.UnitDir, defs.MessageTestsCpp),
			Template: "tests/message_tests.cpp.tmpl",
		})
	}
	if benchmark {
		plan = append(plan, FileSpec{
			RelPath:  path.Join(defs.TestsDir, defs.BenchmarkDir, defs.MessagePerfCpp),
			Template: "tests/message_perf.cpp.tmpl",
		})
	}
	return plan
}

// BuildPlan returns the CMake files to emit: the top-level build descriptor
// plus one CMakeLists.txt per created subdirectory that carries targets.
func BuildPlan() []FileSpec {
	return []FileSpec{
		{RelPath: defs.CMakeListsFile, Template: "cmake/root.tmpl"},
		{RelPath: path.Join(defs.AppDir, defs.CMakeListsFile), Template: "cmake/app.tmpl"},
		{RelPath: path.Join(defs.IncludeDir, defs.CMakeListsFile), Template: "cmake/include.tmpl"},
		{RelPath: path.Join(defs.SrcDir, defs.CMakeListsFile), Template: "cmake/src.tmpl"},
		{RelPath: path.Join(defs.TestsDir, defs.CMakeListsFile), Template: "cmake/tests.tmpl"},
		{RelPath: path.Join(defs.ExternDir, defs.CMakeListsFile), Template: "cmake/extern.tmpl"},
		{RelPath: path.Join(defs.TestsDir, defs.UnitDir, defs.CMakeListsFile), Template: "cmake/unit.tmpl"},
		{RelPath: path.Join(defs.TestsDir, defs.BenchmarkDir, defs.CMakeListsFile), Template: "cmake/benchmark.tmpl"},
	}
}

// SupportPlan returns the supporting files to emit after the project tree
// and build files exist.
func SupportPlan() []FileSpec {
	return []FileSpec{
		{RelPath: defs.ReadmeMD, Template: "support/README.md.tmpl"},
		{RelPath: defs.ClangFormatFile, Template: "support/clang-format.tmpl"},
		{RelPath: defs.GitignoreFile, Template: "support/gitignore.tmpl"},
	}
}
