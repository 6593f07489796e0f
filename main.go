package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jobforge/jobforge/cmd"
)

var errRequestFail = errors.New("🔥 unable to complete request successfully")

func main() {
	command := cmd.New()
	if err := command.Execute(); err != nil {
		fmt.Println(errRequestFail)
		os.Exit(1)
	}
}
