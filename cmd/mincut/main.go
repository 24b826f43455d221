// Command mincut estimates minimum cuts of undirected multigraphs with
// Karger's randomized contraction algorithm.
//
//	mincut run graph.txt --trials 200 --concurrent
//	mincut run --edge "a -- b" --edge "b -- c" --edge "c -- a"
//	mincut demo
//	mincut bounds --vertices 10 --confidence 0.99
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
