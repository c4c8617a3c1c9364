package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .aidetect.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to aidetect! Let's configure your client.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Backend URL.
	basePrompt := promptui.Prompt{
		Label: "Detection backend URL (e.g. https://detector.example.com)",
		Validate: func(s string) error {
			tmp := Config{APIBase: strings.TrimSpace(s), TimeoutSeconds: 1, ReportsDir: "r"}
			return tmp.Validate()
		},
	}
	apiBase, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend URL: %w", err)
	}

	// 2. Reports directory.
	reportsPrompt := promptui.Prompt{
		Label:   "Output directory for exported reports",
		Default: defaults.ReportsDir,
	}
	reportsDir, err := reportsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("reports dir: %w", err)
	}

	// 3. Request timeout.
	timeoutPrompt := promptui.Prompt{
		Label:   "Request timeout in seconds",
		Default: strconv.Itoa(defaults.TimeoutSeconds),
		Validate: func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n <= 0 {
				return fmt.Errorf("enter a positive number")
			}
			return nil
		},
	}
	timeoutStr, err := timeoutPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("timeout: %w", err)
	}
	timeout, _ := strconv.Atoi(strings.TrimSpace(timeoutStr))

	cfg := &Config{
		APIBase:        strings.TrimRight(strings.TrimSpace(apiBase), "/"),
		TimeoutSeconds: timeout,
		ReportsDir:     reportsDir,
		HistoryLimit:   defaults.HistoryLimit,
	}

	configPath := ".aidetect.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("Run `aidetect login` to sign in.")
	return cfg, nil
}
