package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/quill-dev/quill/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "quill.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultTimeoutMS is the default dynamic render timeout.
	DefaultTimeoutMS = 10000

	// DefaultMaxInFlight is the default cap on concurrent render
	// children.
	DefaultMaxInFlight = 8

	// DefaultCacheTTL is the default age after which cached renders
	// are pruned.
	DefaultCacheTTL = "1h"
)

// Config represents the complete quill.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Dynamic contains child render process configuration.
	Dynamic DynamicConfig `json:"dynamic,omitempty"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Publish contains object storage configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// Cache contains render cache configuration.
	Cache CacheConfig `json:"cache,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DynamicConfig configures how render children are spawned.
type DynamicConfig struct {
	// Child is the path to a dedicated renderer binary. Empty means
	// self mode unless Self is explicitly false.
	Child string `json:"child,omitempty"`

	// Self re-executes the current binary as the render child.
	Self bool `json:"self,omitempty"`

	// TimeoutMS bounds one render call in milliseconds.
	TimeoutMS int `json:"timeoutMs,omitempty"`

	// MaxInFlight caps concurrently alive render children.
	MaxInFlight int `json:"maxInFlight,omitempty"`
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Watch contains paths to watch for changes.
	Watch []string `json:"watch,omitempty"`

	// Ignore contains glob patterns excluded from watching.
	Ignore []string `json:"ignore,omitempty"`
}

// PublishConfig contains object storage settings.
type PublishConfig struct {
	// Bucket is the destination bucket name.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every published key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket's region.
	Region string `json:"region,omitempty"`
}

// CacheConfig contains render cache settings.
type CacheConfig struct {
	// Path is the cache database file. Empty disables caching,
	// ":memory:" keeps it process-local.
	Path string `json:"path,omitempty"`

	// TTL is the retention duration for cached renders (e.g. "1h").
	TTL string `json:"ttl,omitempty"`
}

// New returns a Config with defaults applied.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads quill.json from the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("Q040").
				WithDetail("No quill.json found in " + filepath.Dir(path)).
				WithSuggestion("Create quill.json or pass flags explicitly")
		}
		return nil, errors.New("Q040").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("Q040").
			WithDetail("Failed to parse quill.json: " + err.Error()).
			WithSuggestion("Check that quill.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Dynamic.TimeoutMS == 0 {
		c.Dynamic.TimeoutMS = DefaultTimeoutMS
	}
	if c.Dynamic.MaxInFlight == 0 {
		c.Dynamic.MaxInFlight = DefaultMaxInFlight
	}
	if c.Dynamic.Child == "" {
		c.Dynamic.Self = true
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if len(c.Preview.Watch) == 0 {
		c.Preview.Watch = []string{"."}
	}
	if c.Cache.TTL == "" {
		c.Cache.TTL = DefaultCacheTTL
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Dynamic.Child != "" && c.Dynamic.Self {
		return errors.New("Q040").
			WithDetail("dynamic.child and dynamic.self are mutually exclusive")
	}
	if c.Dynamic.TimeoutMS < 0 {
		return errors.New("Q040").
			WithDetail("dynamic.timeoutMs must not be negative")
	}
	if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
		return errors.New("Q040").
			WithDetail("cache.ttl is not a valid duration: " + c.Cache.TTL)
	}
	return nil
}

// Timeout returns the dynamic render timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Dynamic.TimeoutMS) * time.Millisecond
}

// CacheTTL returns the cache retention as a duration.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return time.Hour
	}
	return d
}

// PreviewAddress returns the host:port the preview server binds to.
func (c *Config) PreviewAddress() string {
	return c.Preview.Host + ":" + itoa(c.Preview.Port)
}

// Exists reports whether a quill.json exists in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [12]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
