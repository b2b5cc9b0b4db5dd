package main

import (
	"context"
	"os"

	"github.com/nikswap/nikswap/app"
	"github.com/nikswap/nikswap/cmd/nikswapd/cmd"
)

func main() {
	app.SetConfig()

	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
