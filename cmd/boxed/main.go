// Command boxed imports and queries the BoxED box-packing dataset.
package main

import (
	"os"

	"github.com/vislab-robotics/boxed-cli/internal/adapters/driving/cli"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
