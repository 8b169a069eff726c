package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/FACorreiaa/karnataka-trip-planner/cmd/tripctl/commands"
)

func main() {
	_ = godotenv.Load()

	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
