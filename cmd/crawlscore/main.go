// main is the entry point for the crawlscore CLI.
package main

import (
	"github.com/crawlscore/crawlscore/cmd"
	"github.com/crawlscore/crawlscore/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
