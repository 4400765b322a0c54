// Package main demonstrates the wait and countdown interactions.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/nao1215/console"
)

func main() {
	c := console.New()
	defer c.Close()

	fmt.Println("Countdown Example")

	if c.IsInputRedirected() {
		fmt.Println("Input is redirected; the waits below return immediately.")
	}

	// Count five seconds down as a row of dots. Press any key to skip.
	if err := c.WaitTimeout("Starting in ", 5*time.Second, true); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Started.")

	// Block until a key press. Terminal reports and modifier noise do not
	// count; a bare Escape does.
	if err := c.Wait(console.DefaultWaitMessage); err != nil {
		log.Fatal(err)
	}
	fmt.Println()
	fmt.Println("Goodbye!")
}
