// SPDX-License-Identifier: MIT
package format_test

import (
	"os"
	"strings"

	"github.com/katalvlaran/lvlsym/format"
)

func ExampleWriteDIMACS() {
	g, _ := format.ReadDIMACS(strings.NewReader("p edge 3 2\nn 2 7\ne 1 2\ne 3 2\n"), "example")
	_ = format.WriteDIMACS(os.Stdout, g)
	// Output:
	// p edge 3 2
	// n 1 0
	// n 2 7
	// n 3 0
	// e 1 2
	// e 2 3
}
