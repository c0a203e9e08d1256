package dbg

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a deep, deterministic dump of the values, for pipeline results
// and other nested structures.
func Dump(w io.Writer, values ...interface{}) {
	dumpConfig.Fdump(w, values...)
}

func Sdump(values ...interface{}) string {
	return dumpConfig.Sdump(values...)
}
