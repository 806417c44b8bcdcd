package config_test

import (
	"fmt"

	"github.com/wonny/sentiq/pkg/config"
)

// Example demonstrates how to use the config package
func Example() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}

	// Access configuration values
	fmt.Printf("Environment: %s\n", cfg.Env)
	fmt.Printf("News dir: %s\n", cfg.Data.NewsDir)
	fmt.Printf("Prices dir: %s\n", cfg.Data.PricesDir)
	fmt.Printf("Store enabled: %v\n", cfg.StoreEnabled())
}
