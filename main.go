package main

import (
	"fmt"
	"os"

	"github.com/xuning888/safedict/cmd"
)

func main() {
	if err := cmd.Run(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
