// Package testutil holds small test-only helpers shared across this
// module's packages.
package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// DumpOnFail calls t.Logf with a deep dump of got and want, for use from
// a deferred or failure-path call when a plain %+v isn't informative
// enough to debug a mismatched tree (an rlp.Value or an eip712.Json, for
// instance, both of which nest pointers and slices that %v prints as
// addresses).
func DumpOnFail(t *testing.T, label string, got, want any) {
	t.Helper()
	t.Logf("%s mismatch:\ngot:  %s\nwant: %s", label, dumpConfig.Sdump(got), dumpConfig.Sdump(want))
}
