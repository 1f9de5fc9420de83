// Command memmacro drives configurable memory-macro models from the
// command line.
package main

import "github.com/moaz-kh/MEM-lib/cmd/memmacro/cmd"

func main() {
	cmd.Execute()
}
