package domain_test

import (
	"testing"

	"standbiomass/testutil"
)

// The domain package holds pure value types shared by every layer; it must
// never reach back into the internal tree.
func TestDomainHasNoInternalImports(t *testing.T) {
	testutil.AssertNoDirectImports(t, ".", testutil.InternalImportForbidden,
		"pkg/domain is consumed by internal packages and must not import them")
}
