package cmd

import (
	"context"
	"fmt"

	"github.com/xuning888/safedict/pkg/shell"
)

type ExecCmd struct{}

// Execute runs args as one shell command, e.g. `safedict -d data.yaml exec get key`
func (c *ExecCmd) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("exec: command is required")
	}
	d, err := current.setUp(context.Background())
	if err != nil {
		return err
	}
	reply, err := shell.New(d).ExecArgs(args...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, reply)
	return err
}
