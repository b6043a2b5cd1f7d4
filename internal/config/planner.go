package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"myguide/internal/planner"
)

// LoadPlannerConfig overlays the YAML tuning file at path on the built-in
// engine defaults. Keys missing from the file keep their default; map
// entries are merged, lists are replaced. An empty path means defaults.
func LoadPlannerConfig(path string) (planner.Config, error) {
	cfg := planner.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return planner.Config{}, errors.Wrapf(err, "read planner tuning file %s", path)
	}
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return planner.Config{}, errors.Wrapf(err, "parse planner tuning file %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return planner.Config{}, errors.Wrapf(err, "planner tuning file %s", path)
	}
	return cfg, nil
}
