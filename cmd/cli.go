package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
)

var stdout io.Writer = os.Stdout

var stdin io.Reader = os.Stdin

// Run is the entry point for the CLI, kept out of package main so tests can drive it.
func Run(args []string) error {
	opts := &Options{}
	opts.Init(firstCommand(args))
	current = opts

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(stdout, flagsErr.Message)
			return nil
		}
		return err
	}
	return nil
}

// firstCommand skips global options so Init sees the sub-command name
func firstCommand(args []string) string {
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "-f", "--config", "-d", "--data":
			i++
		default:
			if len(a) > 0 && a[0] == '-' {
				continue
			}
			return a
		}
	}
	return ""
}
