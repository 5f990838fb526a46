package main

import (
	"fmt"
	"os"

	"github.com/barelyhuman/batchpipe/commands"
	"github.com/joho/godotenv"
)

func bail(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "[batchpipe]: "+err.Error())
	os.Exit(1)
}

func main() {
	// optional, plugins read it through os.getenv
	_ = godotenv.Load()

	bail(commands.NewApp().Run(os.Args))
}
