package icon

import (
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Generate writes one icon per configured size, in order, into cfg.OutputDir.
// It stops at the first failure; icons already written are left in place.
func Generate(cfg Config, logger hclog.Logger, reporter *Reporter) error {
	logger = loggerOrNull(logger)

	if err := cfg.Validate(logger); err != nil {
		return err
	}

	gen := NewGenerator(cfg, logger, reporter)
	for _, size := range cfg.Sizes {
		filename := Filename(size)
		if cfg.OutputDir != "" && cfg.OutputDir != DefaultOutputDir {
			filename = filepath.Join(cfg.OutputDir, filename)
		}

		if err := gen.CreateIcon(size, filename); err != nil {
			return err
		}
	}

	reporter.Done()
	return nil
}
