package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default thresholds and bounds applied when the file omits them.
const (
	DefaultSimilarityThreshold = 0.45
	DefaultMinArticleLength    = 200
	DefaultMinChunkLength      = 40
	DefaultMaxChunkLength      = 1500
	DefaultCohesionThreshold   = 0.65
	DefaultVectorSize          = 384
	DefaultEmbeddingHost       = "http://localhost:11434/v1"
	DefaultEmbeddingModel      = "embeddinggemma"
	DefaultChunkStrategy       = "semantic"
	DefaultIndexBackend        = "file"
)

// Config is the run configuration loaded from a YAML file.
type Config struct {
	// Feeds are the RSS/Atom source URLs to poll.
	Feeds []string `yaml:"feeds"`

	// Topic is the free-text description articles are scored against.
	Topic string `yaml:"topic"`

	// SimilarityThreshold is the minimum topic similarity for acceptance.
	SimilarityThreshold float32 `yaml:"similarity_threshold"`

	// MinArticleLength is the minimum extracted text length in characters.
	MinArticleLength int `yaml:"min_article_length"`

	Chunking  Chunking  `yaml:"chunking"`
	Embedding Embedding `yaml:"embedding"`
	Registry  Registry  `yaml:"registry"`
	Index     Index     `yaml:"index"`

	// PoolSize bounds parallel article extraction. 0 means automatic.
	PoolSize int `yaml:"pool_size"`
}

// Chunking selects and parameterizes the splitter strategy.
type Chunking struct {
	// Strategy is "semantic" or "window".
	Strategy          string  `yaml:"strategy"`
	MinChunkLength    int     `yaml:"min_chunk_length"`
	MaxChunkLength    int     `yaml:"max_chunk_length"`
	CohesionThreshold float32 `yaml:"cohesion_threshold"` // semantic only
	Overlap           int     `yaml:"overlap"`            // window only
}

// Embedding configures the OpenAI-compatible embedding endpoint.
type Embedding struct {
	Host       string `yaml:"host"`
	Model      string `yaml:"model"`
	APIKey     string `yaml:"api_key"`
	VectorSize int    `yaml:"vector_size"`
}

// Registry configures the article registry.
type Registry struct {
	Path string `yaml:"path"`
}

// Index configures the embedding index backend.
type Index struct {
	// Backend is "file" or "pgvector".
	Backend string `yaml:"backend"`

	// Path is the index file location (file backend).
	Path string `yaml:"path"`

	// DSN is the Postgres connection string (pgvector backend).
	DSN string `yaml:"dsn"`

	// Table is the chunk table name (pgvector backend, optional).
	Table string `yaml:"table"`
}

// Load reads and validates a configuration file, filling defaults for
// omitted optional fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SimilarityThreshold == 0 {
		c.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if c.MinArticleLength == 0 {
		c.MinArticleLength = DefaultMinArticleLength
	}
	if c.Chunking.Strategy == "" {
		c.Chunking.Strategy = DefaultChunkStrategy
	}
	if c.Chunking.MinChunkLength == 0 {
		c.Chunking.MinChunkLength = DefaultMinChunkLength
	}
	if c.Chunking.MaxChunkLength == 0 {
		c.Chunking.MaxChunkLength = DefaultMaxChunkLength
	}
	if c.Chunking.CohesionThreshold == 0 {
		c.Chunking.CohesionThreshold = DefaultCohesionThreshold
	}
	if c.Embedding.Host == "" {
		c.Embedding.Host = DefaultEmbeddingHost
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = DefaultEmbeddingModel
	}
	if c.Embedding.VectorSize == 0 {
		c.Embedding.VectorSize = DefaultVectorSize
	}
	if c.Index.Backend == "" {
		c.Index.Backend = DefaultIndexBackend
	}
}

// Validate checks the configuration before any processing starts.
// Missing feeds or topic is fatal; nothing should be fetched with an
// unusable configuration.
func (c *Config) Validate() error {
	if len(c.Feeds) == 0 {
		return ErrNoFeeds
	}
	if c.Topic == "" {
		return ErrNoTopic
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("%w: similarity_threshold %v outside [0, 1]",
			ErrInvalidThreshold, c.SimilarityThreshold)
	}
	if c.MinArticleLength < 0 {
		return fmt.Errorf("%w: min_article_length %d", ErrInvalidBounds, c.MinArticleLength)
	}
	if c.Chunking.MinChunkLength <= 0 || c.Chunking.MaxChunkLength <= c.Chunking.MinChunkLength {
		return fmt.Errorf("%w: chunk bounds [%d, %d]",
			ErrInvalidBounds, c.Chunking.MinChunkLength, c.Chunking.MaxChunkLength)
	}

	switch c.Chunking.Strategy {
	case "semantic":
		if c.Chunking.CohesionThreshold < 0 || c.Chunking.CohesionThreshold > 1 {
			return fmt.Errorf("%w: cohesion_threshold %v outside [0, 1]",
				ErrInvalidThreshold, c.Chunking.CohesionThreshold)
		}
	case "window":
		if c.Chunking.Overlap < 0 || c.Chunking.Overlap >= c.Chunking.MaxChunkLength {
			return fmt.Errorf("%w: overlap %d", ErrInvalidBounds, c.Chunking.Overlap)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, c.Chunking.Strategy)
	}

	if c.Embedding.VectorSize <= 0 {
		return fmt.Errorf("%w: vector_size %d", ErrInvalidBounds, c.Embedding.VectorSize)
	}
	if c.Registry.Path == "" {
		return ErrNoRegistryPath
	}

	switch c.Index.Backend {
	case "file":
		if c.Index.Path == "" {
			return ErrNoIndexPath
		}
	case "pgvector":
		if c.Index.DSN == "" {
			return ErrNoIndexDSN
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownIndexBackend, c.Index.Backend)
	}

	return nil
}
