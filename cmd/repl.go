package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/xuning888/safedict/config"
	"github.com/xuning888/safedict/pkg/shell"
)

type ReplCmd struct {
	NoPrompt bool `long:"no-prompt" description:"Do not print a prompt, useful when piping commands"`
}

func (c *ReplCmd) Execute(_ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d, err := current.setUp(ctx)
	if err != nil {
		return err
	}
	sh := shell.New(d)
	if !c.NoPrompt {
		sh.WithPrompt(config.Current.Prompt)
	}
	return sh.Run(ctx, stdin, stdout)
}
