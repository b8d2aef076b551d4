// Package testutil provides shared coefficient fixtures and import-boundary
// guard helpers for the repository's test suites.
package testutil

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// AssertNoDirectImports scans all non-test .go files in dir (typically "."
// from within the package under test) and fails if any import path
// satisfies the forbidden predicate. The reason string is appended to the
// failure for clarity. Build tags are not followed.
func AssertNoDirectImports(t testing.TB, dir string, forbidden func(importPath string) bool, reason string) {
	t.Helper()
	violations, err := directImportViolations(dir, forbidden)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, v := range violations {
		t.Errorf("forbidden import %s in %s: %s", v.importPath, v.file, reason)
	}
}

// ImportForbidden returns a predicate matching any of the given import
// paths exactly.
func ImportForbidden(paths ...string) func(importPath string) bool {
	return func(importPath string) bool {
		for _, p := range paths {
			if importPath == p {
				return true
			}
		}
		return false
	}
}

// InternalImportForbidden matches any import path under this module's
// internal tree.
func InternalImportForbidden(importPath string) bool {
	return strings.HasPrefix(importPath, "standbiomass/internal/")
}

type importViolation struct {
	file       string
	importPath string
}

func directImportViolations(dir string, forbidden func(string) bool) ([]importViolation, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var violations []importViolation
	fset := token.NewFileSet()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		path := filepath.Join(dir, name)
		file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return nil, err
		}
		for _, imp := range file.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if forbidden(importPath) {
				violations = append(violations, importViolation{file: name, importPath: importPath})
			}
		}
	}
	return violations, nil
}
