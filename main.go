package main

import (
	"fmt"
	"os"

	"mascotas-shop/config"
	"mascotas-shop/server"

	"github.com/joho/godotenv"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "error loading .env:", err)
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Println("Usage: go run main.go --command <command-name> [... other options]")
		os.Exit(2)
	}

	switch cfg.Command {
	case "start":
		if err := server.StartServer(cfg); err != nil {
			logger.Error("Server stopped", zap.Error(err))
			os.Exit(1)
		}
	default:
		fmt.Printf("unknown command %q\n", cfg.Command)
		os.Exit(1)
	}
}
