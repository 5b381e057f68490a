package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/envcheck/cli"
	"github.com/ardnew/envcheck/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
