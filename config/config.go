package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/packtherm/core/metrics"
	"github.com/kilianp07/packtherm/infra/advisor"
	"github.com/kilianp07/packtherm/infra/mqtt"
)

type Config struct {
	Simulation Simulation     `json:"simulation"`
	Metrics    metrics.Config `json:"metrics"`
	MQTT       mqtt.Config    `json:"mqtt"`
	Advisor    advisor.Config `json:"advisor"`
	Export     ExportConfig   `json:"export"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("PT_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "pt_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Advisor.SetDefaults()
	cfg.MQTT.SetDefaults()
	cfg.Export.SetDefaults()
	if err := cfg.Export.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
