package main

import (
	"os"

	"github.com/ForageFantasy/ForageFantasy/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
