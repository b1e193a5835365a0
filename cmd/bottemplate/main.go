package main

import (
	"fmt"
	"os"

	"github.com/small-frappuccino/bottemplate/pkg/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

// main is the entry point of the Discord bot.
func main() {
	app.SetAppVersion(version)
	if err := app.Run("bottemplate", "DISCORD_TOKEN"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
