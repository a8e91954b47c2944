// Command graphina is a thin command-line front end over the graphina
// library: it loads a graph from one of the ioformat codecs and runs a
// single traversal, centrality, or community kernel against it,
// printing the result or writing it back out in another format.
package main

import "github.com/katalvlaran/graphina/cmd/graphina/cmd"

func main() {
	cmd.Execute()
}
