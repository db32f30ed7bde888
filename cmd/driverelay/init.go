package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/driverelay"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Create a config.yaml interactively.

You will be prompted for:
  - Server port
  - Alternate auth header name
  - Default upload content type

Existing files are only overwritten after confirmation.`,
	RunE: runInit,
}

var initOutput string

func init() {
	initCmd.Flags().StringVar(&initOutput, "output", "config.yaml", "path of the config file to write")
	rootCmd.AddCommand(initCmd)
}

// initFileConfig is the subset of configuration the init command writes.
// Keys match what config.Load reads.
type initFileConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Auth struct {
		AltHeader string `yaml:"alt_header"`
	} `yaml:"auth"`
	Upload struct {
		DefaultMimeType string `yaml:"default_mime_type"`
	} `yaml:"upload"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func runInit(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(initOutput); err == nil {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("File '%s' already exists. Overwrite it", initOutput),
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			fmt.Println("Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: "3000",
		Validate: func(input string) error {
			p, convErr := strconv.Atoi(input)
			if convErr != nil || p < 1 || p > 65535 {
				return errors.New("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}
	port, _ := strconv.Atoi(portStr)

	altHeaderPrompt := promptui.Prompt{
		Label:   "Alternate auth header",
		Default: driverelay.DefaultAltAuthHeader,
		Validate: func(input string) error {
			if input == "" {
				return errors.New("header name is required")
			}
			return nil
		},
	}
	altHeader, err := altHeaderPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	mimePrompt := promptui.Prompt{
		Label:   "Default upload content type",
		Default: driverelay.DefaultMimeType,
	}
	mimeType, err := mimePrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	levelPrompt := promptui.Select{
		Label: "Log level",
		Items: []string{"debug", "info", "warn", "error"},
	}
	_, level, err := levelPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	var cfg initFileConfig
	cfg.Server.Port = port
	cfg.Auth.AltHeader = altHeader
	cfg.Upload.DefaultMimeType = mimeType
	cfg.Log.Level = level

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(initOutput, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Wrote %s.\n", initOutput)
	return nil
}

// handlePromptError handles promptui errors.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nCancelled.")
		os.Exit(0)
	}
	if errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
