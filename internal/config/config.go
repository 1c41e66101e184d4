// Package config loads engine configuration and the skill taxonomy from a
// TOML file, with env-var overrides applied by the entrypoints.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/agenthands/skillgraph/internal/core/model"
)

type AnalysisConfig struct {
	// Weighted switches betweenness/closeness to inverse co-occurrence
	// distances and weights the eigenvector adjacency.
	Weighted      bool  `toml:"weighted"`
	MaxIterations int   `toml:"max_iterations"` // eigenvector cap
	TopN          int   `toml:"top_n"`          // ideal-profile / bridge-skill size
	Seed          int64 `toml:"seed"`           // community detection seed
}

type ClusteringConfig struct {
	K             int   `toml:"k"`
	Seed          int64 `toml:"seed"`
	Restarts      int   `toml:"restarts"`
	MaxIterations int   `toml:"max_iterations"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type Config struct {
	Analysis   AnalysisConfig        `toml:"analysis"`
	Clustering ClusteringConfig      `toml:"clustering"`
	Memgraph   MemgraphConfig        `toml:"memgraph"`
	Server     ServerConfig          `toml:"server"`
	Taxonomy   []model.TaxonomySkill `toml:"taxonomy"`
}

// Default returns the configuration used when no file is supplied. The
// built-in taxonomy covers the default data-analytics skill set.
func Default() *Config {
	cfg := &Config{
		Taxonomy: defaultTaxonomy(),
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses a TOML config file, filling defaults for anything
// left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if len(cfg.Taxonomy) == 0 {
		cfg.Taxonomy = defaultTaxonomy()
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Analysis.MaxIterations <= 0 {
		c.Analysis.MaxIterations = 1000
	}
	if c.Analysis.TopN <= 0 {
		c.Analysis.TopN = 10
	}
	if c.Clustering.K <= 0 {
		c.Clustering.K = 4
	}
	if c.Clustering.Restarts <= 0 {
		c.Clustering.Restarts = 10
	}
	if c.Clustering.MaxIterations <= 0 {
		c.Clustering.MaxIterations = 300
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
}

// BuildTaxonomy materializes the canonical vocabulary from the config entries.
func (c *Config) BuildTaxonomy() *model.Taxonomy {
	return model.NewTaxonomy(c.Taxonomy)
}

func defaultTaxonomy() []model.TaxonomySkill {
	return []model.TaxonomySkill{
		{Name: "Python", Category: "programming"},
		{Name: "SQL", Category: "programming"},
		{Name: "R", Category: "programming"},
		{Name: "Pandas", Category: "programming"},
		{Name: "Numpy", Category: "programming"},
		{Name: "Excel", Category: "analytics"},
		{Name: "Power BI", Category: "analytics"},
		{Name: "Tableau", Category: "analytics"},
		{Name: "Machine Learning", Category: "ml"},
		{Name: "Statistics", Category: "ml"},
		{Name: "Git", Category: "tools"},
		{Name: "AWS", Category: "cloud"},
		{Name: "Azure", Category: "cloud"},
		{Name: "Spark", Category: "bigdata"},
		{Name: "Hadoop", Category: "bigdata"},
		{Name: "Communication", Category: "soft"},
		{Name: "Teamwork", Category: "soft"},
	}
}
