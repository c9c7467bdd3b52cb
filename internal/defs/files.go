// Package defs holds shared constants for generated project layout:
// directory names, file names, and filesystem permissions.
package defs

import "os"

// Filesystem permissions for generated directories and files.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// Top-level directories created inside every generated project.
const (
	AppDir     = "app"
	DocsDir    = "docs"
	ExternDir  = "extern"
	IncludeDir = "include"
	SrcDir     = "src"
	TestsDir   = "tests"
)

// Test subdirectories under TestsDir.
const (
	UnitDir      = "unit"
	BenchmarkDir = "benchmark"
)

// Names of generated files.
const (
	CMakeListsFile  = "CMakeLists.txt"
	MainCpp         = "main.cpp"
	MessageHeader   = "message.h"
	MessageCpp      = "message.cpp"
	MessageTestsCpp = "message_tests.cpp"
	MessagePerfCpp  = "message_perf.cpp"
	ReadmeMD        = "README.md"
	ClangFormatFile = ".clang-format"
	GitignoreFile   = ".gitignore"
)

// DefaultBranch is the branch checked out after repository initialization.
const DefaultBranch = "main"

// Default submodule sources registered under ExternDir.
const (
	GoogleTestURL  = "https://github.com/google/googletest.git"
	GoogleTestPath = "extern/googletest"
	BenchmarkURL   = "https://github.com/google/benchmark.git"
	BenchmarkPath  = "extern/benchmark"
)
