package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"playground/internal/cli"
)

func main() {
	// PLAYGROUND_SERVER may live in .env alongside the server settings
	_ = godotenv.Load()

	root := cli.NewRootCmd(cli.Options{})
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
