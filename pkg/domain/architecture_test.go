package domain

import (
	"testing"

	"sanctuary/testutil"
)

// TestDomainDoesNotImportInternal keeps the taxonomy free of infrastructure:
// no internal packages and nothing outside the standard library.
func TestDomainDoesNotImportInternal(t *testing.T) {
	testutil.AssertNoDirectImports(t, ".", testutil.InternalImportForbidden, "domain must not depend on internal packages")
	testutil.AssertNoTransitiveDependency(t, ".", testutil.ThirdPartyImport, "domain depends on the standard library only")
}
