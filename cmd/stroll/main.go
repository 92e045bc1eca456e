// Command stroll walks checkpoint courses across a street grid.
package main

import "github.com/mesh-intelligence/flaneur/internal/cli"

func main() {
	cli.Execute()
}
