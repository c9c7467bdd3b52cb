package scaffold

import (
	"path"

	"github.com/cppforge/genc/internal/defs"
)

// DirectoryPlan returns the ordered list of directories to create under the
// project base directory, relative to it. Parents always precede their
// children so the list can be created with plain os.Mkdir calls.
func DirectoryPlan(token string) []string {
	return []string{
		defs.AppDir,
		defs.DocsDir,
		defs.ExternDir,
		defs.IncludeDir,
		path.Join(defs.IncludeDir, token),
		defs.SrcDir,
		defs.TestsDir,
		path.Join(defs.TestsDir, defs.BenchmarkDir),
		path.Join(defs.TestsDir, defs.UnitDir),
	}
}
