package main

import (
	"github.com/joho/godotenv"

	"github.com/sokastore/soka/internal/cmd"
)

func main() {
	// A missing .env is fine; config has defaults for everything
	_ = godotenv.Load()

	cmd.Execute()
}
