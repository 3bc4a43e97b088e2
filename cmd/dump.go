package cmd

import (
	"context"
	"encoding/json"
	"fmt"
)

type DumpCmd struct {
	JSON bool `long:"json" description:"Print as a JSON object"`
}

func (c *DumpCmd) Execute(_ []string) error {
	d, err := current.setUp(context.Background())
	if err != nil {
		return err
	}
	if !c.JSON {
		_, err = fmt.Fprintln(stdout, d.String())
		return err
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}
