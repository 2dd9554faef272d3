package seed

import (
	"fmt"
	"os"

	"github.com/dhruvpatel/atoz-storefront/pkg/models"
	"gopkg.in/yaml.v3"
)

// Fixtures bundles the demo data every registry starts from.
type Fixtures struct {
	Products   []models.Product `yaml:"products"`
	Categories []string         `yaml:"categories"`
	Orders     []models.Order   `yaml:"orders"`
	Accounts   []models.Account `yaml:"accounts"`
	Banners    []models.Banner  `yaml:"banners"`
}

// Load returns the fixtures from the YAML file at path, or the built-in
// defaults when path is empty.
func Load(path string) (Fixtures, error) {
	if path == "" {
		return Defaults(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("reading seed file: %w", err)
	}

	var fixtures Fixtures
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return Fixtures{}, fmt.Errorf("parsing seed file: %w", err)
	}
	if len(fixtures.Categories) == 0 {
		return Fixtures{}, fmt.Errorf("seed file %s declares no categories", path)
	}
	return fixtures, nil
}
