package main

import (
	"fmt"

	"github.com/hochfrequenz/jules-tools/internal/config"
	"github.com/hochfrequenz/jules-tools/internal/jules"
	"github.com/hochfrequenz/jules-tools/internal/output"
	"github.com/spf13/cobra"
)

func loadConfig() (*config.Config, error) {
	return config.LoadWithLocalFallback(configPath)
}

// newClient loads config and credentials. A missing API key stops the command
// before any request is made.
func newClient() (*config.Config, *jules.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	if err := config.LoadEnv(cfg.General.EnvFile); err != nil {
		return nil, nil, err
	}
	apiKey, err := config.APIKey()
	if err != nil {
		return nil, nil, err
	}

	client := jules.NewClient(apiKey,
		jules.WithBaseURL(cfg.API.BaseURL),
		jules.WithTimeout(cfg.Timeout()),
		jules.WithLogger(logger),
	)
	return cfg, client, nil
}

// resultFormat validates --output for pass-through commands, which print
// JSON or YAML only.
func resultFormat() (output.Format, error) {
	format, err := output.ParseFormat(outputFlag, output.FormatJSON)
	if err != nil {
		return "", err
	}
	if format == output.FormatText {
		return "", fmt.Errorf("text output is not supported here (want json or yaml)")
	}
	return format, nil
}

// passthrough wires a command that makes one API call and prints the result.
// The output format is checked before the call so a bad -o never follows a
// create or delete that already happened.
func passthrough(call func(cmd *cobra.Command, client *jules.Client, args []string) (jules.Object, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		format, err := resultFormat()
		if err != nil {
			return err
		}
		_, client, err := newClient()
		if err != nil {
			return err
		}
		data, err := call(cmd, client, args)
		if err != nil {
			return err
		}
		return output.Write(cmd.OutOrStdout(), format, data)
	}
}
