// Package main is the entry point for the hai3 CLI.
package main

import "github.com/beyond-event-horizon/HAI3-sub001/cmd"

func main() {
	cmd.Execute()
}
