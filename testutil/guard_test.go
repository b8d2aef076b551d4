package testutil

import "testing"

func TestImportForbiddenMatchesExactPathsOnly(t *testing.T) {
	forbidden := ImportForbidden("standbiomass/internal/tables")
	if !forbidden("standbiomass/internal/tables") {
		t.Fatal("exact path not matched")
	}
	if forbidden("standbiomass/internal/tables/extra") || forbidden("standbiomass/pkg/domain") {
		t.Fatal("unrelated path matched")
	}
}

func TestInternalImportForbidden(t *testing.T) {
	if !InternalImportForbidden("standbiomass/internal/metrics") {
		t.Fatal("internal path not matched")
	}
	if InternalImportForbidden("standbiomass/pkg/domain") || InternalImportForbidden("math") {
		t.Fatal("non-internal path matched")
	}
}

func TestDirectImportViolationsFindsKnownImport(t *testing.T) {
	// fixtures.go imports the tables package; scanning this very directory
	// must surface it.
	violations, err := directImportViolations(".", ImportForbidden("standbiomass/internal/tables"))
	if err != nil {
		t.Fatalf("directImportViolations: %v", err)
	}
	if len(violations) == 0 {
		t.Fatal("expected a violation for fixtures.go")
	}
	if violations[0].importPath != "standbiomass/internal/tables" {
		t.Fatalf("violation: got %+v", violations[0])
	}
}
