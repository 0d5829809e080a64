package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/recordlink"
	"github.com/hupe1980/recordlink/cluster"
	"github.com/hupe1980/recordlink/feature"
	"github.com/hupe1980/recordlink/minhash"
)

// Config is the YAML configuration of the resolve command. Flags override
// file values.
type Config struct {
	Blocking    string        `yaml:"blocking"`
	Linkage     string        `yaml:"linkage"`
	Threshold   float64       `yaml:"threshold"`
	Weights     WeightsConfig `yaml:"weights"`
	Canopy      CanopyConfig  `yaml:"canopy"`
	Lego        LegoConfig    `yaml:"lego"`
	S3          S3Config      `yaml:"s3"`
	MinIO       MinIOConfig   `yaml:"minio"`
	Log         LogConfig     `yaml:"log"`
	MetricsFile string        `yaml:"metrics_file,omitempty"`
}

// WeightsConfig mirrors feature.Weights.
type WeightsConfig struct {
	TFIDF    float64 `yaml:"tfidf"`
	Category float64 `yaml:"category"`
	Entities float64 `yaml:"entities"`
}

// CanopyConfig configures canopy blocking. Tight names a policy
// (inverse, inversesqrt, inverselog) unless TightValue fixes the threshold.
type CanopyConfig struct {
	Tight      string   `yaml:"tight"`
	Loose      float64  `yaml:"loose"`
	TightValue *float64 `yaml:"tight_value,omitempty"`
	Workers    int      `yaml:"workers"`
	Randomize  *int64   `yaml:"randomize,omitempty"`
}

// LegoConfig configures Lego blocking.
type LegoConfig struct {
	Seed          uint32 `yaml:"seed"`
	Hasher        string `yaml:"hasher"`
	Criteria      int    `yaml:"criteria"`
	BlockingMask  uint32 `yaml:"blocking_mask"`
	CategoryMask  uint32 `yaml:"category_mask"`
	ByCategory    bool   `yaml:"by_category"`
	MaxIterations int    `yaml:"max_iterations"`
}

// S3Config configures s3:// locations.
type S3Config struct {
	Region   string `yaml:"region,omitempty"`
	PartSize int64  `yaml:"part_size,omitempty"`
}

// MinIOConfig configures minio:// locations.
type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Region    string `yaml:"region,omitempty"`
	Secure    bool   `yaml:"secure"`
}

// LogConfig selects the log level and format (text or json).
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the reference experiment settings.
func DefaultConfig() Config {
	return Config{
		Blocking:  recordlink.None.String(),
		Linkage:   cluster.Mean.String(),
		Threshold: recordlink.DefaultThreshold,
		Weights: WeightsConfig{
			TFIDF:    feature.DefaultWeights.TFIDF,
			Category: feature.DefaultWeights.Category,
			Entities: feature.DefaultWeights.Entities,
		},
		Canopy: CanopyConfig{
			Tight:   recordlink.Inverse.String(),
			Workers: 1,
		},
		Lego: LegoConfig{
			Hasher:       minhash.Jenkins.String(),
			Criteria:     recordlink.DefaultCriteria,
			BlockingMask: recordlink.DefaultBlockingMask,
			CategoryMask: recordlink.DefaultCategoryMask,
			ByCategory:   true,
		},
		MinIO: MinIOConfig{
			Endpoint: "localhost:9000",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing YAML: %w", err)
	}
	return cfg, nil
}

// Options converts the configuration into resolver options.
func (c Config) Options() ([]recordlink.Option, error) {
	blocking, err := recordlink.ParseBlockingMethod(c.Blocking)
	if err != nil {
		return nil, err
	}
	linkage, err := cluster.ParseLinkage(c.Linkage)
	if err != nil {
		return nil, err
	}
	tight, err := recordlink.ParseTightThreshold(c.Canopy.Tight)
	if err != nil {
		return nil, err
	}
	hasher, err := minhash.ParseHasher(c.Lego.Hasher)
	if err != nil {
		return nil, err
	}

	opts := []recordlink.Option{
		recordlink.WithBlocking(blocking),
		recordlink.WithLinkage(linkage),
		recordlink.WithThreshold(c.Threshold),
		recordlink.WithWeights(feature.Weights{
			TFIDF:    c.Weights.TFIDF,
			Category: c.Weights.Category,
			Entities: c.Weights.Entities,
		}),
		recordlink.WithTightThreshold(tight),
		recordlink.WithCanopyWorkers(c.Canopy.Workers),
		recordlink.WithSeed(c.Lego.Seed),
		recordlink.WithHasher(hasher),
		recordlink.WithCriteria(c.Lego.Criteria),
		recordlink.WithMasks(c.Lego.BlockingMask, c.Lego.CategoryMask),
		recordlink.WithCategoryCriterion(c.Lego.ByCategory),
		recordlink.WithMaxIterations(c.Lego.MaxIterations),
	}
	if c.Canopy.TightValue != nil {
		opts = append(opts, recordlink.WithCanopyThresholds(c.Canopy.Loose, *c.Canopy.TightValue))
	}
	if c.Canopy.Randomize != nil {
		opts = append(opts, recordlink.WithCanopyRandomize(*c.Canopy.Randomize))
	}
	return opts, nil
}
