package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuning888/safedict/config"
	"github.com/xuning888/safedict/pkg/datastruct/dict"
	"github.com/xuning888/safedict/pkg/loader"
	"github.com/xuning888/safedict/pkg/logger"
	"github.com/xuning888/safedict/pkg/shell"
)

// setUp loads config, configures logging and builds the dict the sub-commands work on
func (o *Options) setUp(ctx context.Context) (*dict.SafeDict, error) {
	if err := config.SetUpConfig(o.Config); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	props := config.Current
	err := logger.Configure(&logger.Configuration{
		Level:         logger.ParseLevel(props.LogLevel),
		TimeFormat:    props.TimeFormat,
		LogPath:       props.LogDir,
		EnableFileLog: props.FileLog,
	})
	if err != nil {
		return nil, fmt.Errorf("configure logger: %w", err)
	}
	logger.DebugF("run %s, config %q", props.RunID, props.CfPath)

	source := o.Data
	if source == "" {
		source = props.Data
	}
	d := dict.MakeSafeDict()
	if source != "" {
		if d, err = loader.Load(ctx, source); err != nil {
			return nil, err
		}
	}

	sh := shell.New(d)
	for _, pair := range props.Preload {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("preload %q: %w", pair, dict.ErrInvalidArgument)
		}
		if _, err := sh.ExecArgs("set", key, value); err != nil {
			return nil, fmt.Errorf("preload %q: %w", pair, err)
		}
	}
	logger.InfoF("dict ready with %d entries", d.Len())
	return d, nil
}
