package main

import (
	"fmt"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if closeErr := closeStore(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
