// Command apidex serves and queries the public API directory.
//
//	@title			apidex API
//	@version		1.0
//	@description	Directory of public APIs: search, filter, categories and related APIs.
//	@BasePath		/api/v1
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
