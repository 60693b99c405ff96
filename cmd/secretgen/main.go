// Package main implements secretgen, the one-shot bootstrap command
// that provisions the Sentra server's secret salt.
package main

import (
	"os"

	"github.com/sentra/secretgen/internal/bootstrap"
	"github.com/sentra/secretgen/internal/config"
	"github.com/sentra/secretgen/internal/utils"
)

func main() {
	// Initialize the RFC 5424 compliant logger
	if err := utils.InitDefaultLogger(); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	cfg, err := config.Load()
	if err != nil {
		utils.LogError("Invalid command line options", map[string]string{"error": err.Error()})
		os.Exit(2)
	}

	if err := bootstrap.Run(cfg, os.Stdout); err != nil {
		utils.LogError("Bootstrap failed", map[string]string{"error": err.Error()})
		os.Exit(1)
	}
}
