package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/cli/config"
)

func configureLogger(t *testing.T, args ...string) error {
	t.Helper()

	var loggerCfg config.Logger
	var configureErr error

	cmd := &cli.Command{
		Name:  "test",
		Flags: loggerCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			closer, err := loggerCfg.Configure()
			if err != nil {
				configureErr = err
				return nil
			}
			closer()
			return nil
		},
	}

	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return configureErr
}

func TestLogger_Configure(t *testing.T) {
	gt.NoError(t, configureLogger(t, "--log-level", "debug", "--log-format", "json", "--log-output", "stderr"))
	gt.NoError(t, configureLogger(t))
}

func TestLogger_Configure_Invalid(t *testing.T) {
	gt.Error(t, configureLogger(t, "--log-level", "verbose"))
	gt.Error(t, configureLogger(t, "--log-format", "xml"))
}
