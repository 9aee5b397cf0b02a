// Package recommend holds the static lifestyle recommendation bundles served
// alongside predictions. Bundles are plain lookup data keyed by PCOS severity
// tier or menopause stage; the defaults ship embedded in the binary and can
// be overridden with an external YAML file.
package recommend

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTables []byte

// Bundle is one recommendation record: fixed diet/exercise/lifestyle lists
// plus a doctor-referral flag.
type Bundle struct {
	Diet        []string `json:"diet" yaml:"diet"`
	Exercise    []string `json:"exercise" yaml:"exercise"`
	Lifestyle   []string `json:"lifestyle" yaml:"lifestyle"`
	NeedsDoctor bool     `json:"needsDoctor" yaml:"needsDoctor"`
}

// Table maps severity tiers and stages to their bundles. Loaded once at
// startup and read-only afterwards.
type Table struct {
	PCOS      map[string]Bundle `yaml:"pcos"`
	Menopause map[string]Bundle `yaml:"menopause"`
}

var (
	pcosKeys      = []string{"None", "Low", "Medium", "High"}
	menopauseKeys = []string{"Pre-Menopause", "Peri-Menopause", "Post-Menopause"}
)

// Default returns the embedded table.
func Default() (*Table, error) {
	return parse(defaultTables)
}

// FromFile loads a table from an external YAML file.
func FromFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recommendation table: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse recommendation table: %w", err)
	}
	for _, k := range pcosKeys {
		if _, ok := t.PCOS[k]; !ok {
			return nil, fmt.Errorf("recommendation table missing pcos severity %q", k)
		}
	}
	for _, k := range menopauseKeys {
		if _, ok := t.Menopause[k]; !ok {
			return nil, fmt.Errorf("recommendation table missing menopause stage %q", k)
		}
	}
	return &t, nil
}

// ForSeverity returns the PCOS bundle for a severity tier.
func (t *Table) ForSeverity(severity string) (Bundle, error) {
	b, ok := t.PCOS[severity]
	if !ok {
		return Bundle{}, fmt.Errorf("no recommendation bundle for severity %q", severity)
	}
	return b, nil
}

// ForStage returns the menopause bundle for a stage label.
func (t *Table) ForStage(stage string) (Bundle, error) {
	b, ok := t.Menopause[stage]
	if !ok {
		return Bundle{}, fmt.Errorf("no recommendation bundle for stage %q", stage)
	}
	return b, nil
}
