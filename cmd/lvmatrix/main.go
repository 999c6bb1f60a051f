// Command lvmatrix fills, edits and prints small bounds-checked matrices.
//
//	lvmatrix demo
//	lvmatrix fill --rows 3 --cols 3 --base 1 --inc 1 --set 1,1=5.2
//	LVMATRIX_LAYOUT=grid lvmatrix fill --row 1
package main

import (
	"os"

	"github.com/katalvlaran/lvmatrix/cmd/lvmatrix/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
