// Command clarus works with lists from the command line.
package main

import "github.com/sarchlab/clarus/clarus/cmd"

func main() {
	cmd.Execute()
}
