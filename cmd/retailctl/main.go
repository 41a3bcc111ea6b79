package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/kleverretail/retail-cloud/cmd/retailctl/commands"
)

var (
	version = "dev" // set during build
)

func main() {
	commands.Version = version

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
