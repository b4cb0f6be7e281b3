package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/bjulian5/prget/cmd"
)

func main() {
	// Pick up GITHUB_TOKEN etc. from a local .env if one exists
	godotenv.Load(".env")

	ctx := context.Background()
	cmd.Execute(ctx)
}
