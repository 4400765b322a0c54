// Package main demonstrates width-aware wrapping with the console library.
package main

import (
	"fmt"

	"github.com/nao1215/console"
)

func main() {
	c := console.New()
	defer c.Close()

	fmt.Println("Text Wrapping Example")
	fmt.Printf("Current width: %d columns\n\n", c.Width())

	// Normal mode: the leading spaces of the input become a hanging
	// indent on every continuation line.
	c.WriteWrapped("  1. The first list item has enough text to wrap at "+
		"least once on a typical terminal, and the continuation lines keep "+
		"the list indentation.", console.WrapNormal)
	c.WriteWrapped("  2. Resize the window and run again; the wrap points "+
		"follow the window width.", console.WrapNormal)
	fmt.Println()

	// Table mode: continuation lines align to the last double-space run,
	// which keeps flag descriptions in their own column.
	c.WriteWrapped("--verbose      Print every file the tool touches while "+
		"it runs, which is useful when a build behaves differently on "+
		"another machine.", console.WrapTable)
	c.WriteWrapped("--jobs <n>     Number of parallel workers to start. "+
		"Defaults to the machine's logical CPU count.", console.WrapTable)

	// Piped output wraps to the fallback width instead of a window width.
	if c.IsOutputRedirected() {
		fmt.Println()
		fmt.Println("(output is redirected; wrapped at the fallback width)")
	}
}
