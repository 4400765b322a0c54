// Package main demonstrates classified and colorized output.
package main

import (
	"fmt"
	"log"

	"github.com/nao1215/console"
)

func main() {
	c := console.New()
	defer c.Close()

	fmt.Println("Colorize Example")
	fmt.Println()

	// Highlight digits and drop the marker characters entirely. The
	// foreground in force before the call is restored afterward.
	err := c.WriteFormatted("build #1042 finished in _3.7s_ with 0 warnings\n",
		func(r rune) console.CharDecision {
			switch {
			case r == '_':
				return console.CharDecision{}
			case r >= '0' && r <= '9':
				return console.CharDecision{Emit: true, Foreground: &console.Cyan}
			default:
				return console.CharDecision{Emit: true}
			}
		})
	if err != nil {
		log.Fatal(err)
	}

	// A scoped color change restores the previous color on every path.
	if err := c.WithColor(console.Green, func() error {
		return c.Println("all checks passed")
	}); err != nil {
		log.Fatal(err)
	}

	// Errors go to the error stream in red when it is a terminal.
	if err := c.Errorf("example failure: %s", "nothing is actually wrong"); err != nil {
		log.Fatal(err)
	}

	if !c.ColorEnabled() {
		fmt.Println("(color is disabled for this stream)")
	}
}
