package main

import (
	"context"
	"log"

	"github.com/memokeep/memobook/internal/cli"
	"github.com/memokeep/memobook/internal/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close(ctx)

	app.Run(ctx)
}
