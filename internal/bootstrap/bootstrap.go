// Package bootstrap runs the secretgen workflow end to end: generate
// the salt, persist it, and prepare the server deployment around it.
package bootstrap

import (
	"fmt"
	"io"

	"github.com/sentra/secretgen/internal/config"
	"github.com/sentra/secretgen/internal/secret"
	"github.com/sentra/secretgen/internal/secretfile"
	"github.com/sentra/secretgen/internal/serverconfig"
	"github.com/sentra/secretgen/internal/storage"
	"github.com/sentra/secretgen/internal/utils"
)

// Run executes the workflow described by cfg. Operator-facing output
// goes to out; diagnostics go through the logger. On error nothing is
// printed to out.
func Run(cfg *config.Config, out io.Writer) error {
	if cfg.CheckOnly {
		return check(cfg.ConfigPath)
	}

	salt := secret.Generate()

	if err := secretfile.EnsureDir(cfg.OutputPath); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if cfg.DryRun {
		utils.LogInfo("Dry run, skipping all writes", map[string]string{"output": cfg.OutputPath})
	} else {
		if err := secretfile.Write(cfg.OutputPath, salt); err != nil {
			return err
		}

		if cfg.ConfigPath != "" {
			sc, err := serverconfig.Seed(cfg.ConfigPath, salt)
			if err != nil {
				return err
			}
			utils.LogInfo("Server secret seeded", map[string]string{"config": cfg.ConfigPath})

			if cfg.InitDB {
				if err := storage.Init(sc.Database.Path); err != nil {
					return err
				}
				utils.LogInfo("Metrics database initialized", map[string]string{"path": sc.Database.Path})
			}
		}
	}

	fmt.Fprintf(out, "Secret Generated -> %s\n", salt)
	fmt.Fprintf(out, "Secret UUID4 generated and written to %s\n", cfg.OutputPath)
	return nil
}

func check(path string) error {
	sc, err := serverconfig.Load(path)
	if err != nil {
		return err
	}
	if err := sc.Validate(); err != nil {
		return fmt.Errorf("invalid server config %s: %w", path, err)
	}
	utils.LogInfo("Server configuration is valid", map[string]string{"path": path})
	return nil
}
