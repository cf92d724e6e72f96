package common

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/boundaries/out"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/domain"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/pkg/logger"
)

type Config struct {
	General GeneralConfig `yaml:"general"`
	Http    HttpConfig    `yaml:"http"`
	Render  RenderConfig  `yaml:"render"`
	Build   BuildConfig   `yaml:"-"`
}

type BuildConfig struct {
	RunEnv       string `yaml:"-"` // come from env
	BuildVersion string `yaml:"-"` // come from build ldflags
	BuildCommit  string `yaml:"-"` // come from build ldflags
	BuildDate    string `yaml:"-"` // come from build ldflags
}

type GeneralConfig struct {
	LogLevel string `yaml:"logLevel"`
}

type HttpConfig struct {
	Host                string   `yaml:"host"`
	Port                int      `yaml:"port"`
	ReadTimeout         int      `yaml:"readTimeout"`         // seconds
	WriteTimeout        int      `yaml:"writeTimeout"`        // seconds
	ShutdownGracePeriod int      `yaml:"shutdownGracePeriod"` // seconds
	RateLimit           float64  `yaml:"rateLimit"`           // requests per second per client, 0 disables
	TrustedProxies      []string `yaml:"trustedProxies"`      // CIDRs allowed to set X-Forwarded-For
}

type RenderConfig struct {
	Mode string `yaml:"mode"`
}

// Default values
var (
	defaultHost                = "0.0.0.0"
	defaultPort                = 5000
	defaultReadTimeout         = 10 // seconds
	defaultWriteTimeout        = 10 // seconds
	defaultShutdownGracePeriod = 5  // seconds
	defaultLogLevel            = "info"
	defaultRenderMode          = string(domain.RenderVerbatim)
)

// ConfigFileName is looked up in the working directory before the user config directory.
const ConfigFileName = "webapp.yml"

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaultsToConfig(config)
	return config
}

// applyDefaultsToConfig applies default values to any fields that have zero values
func applyDefaultsToConfig(config *Config) {
	if config.General.LogLevel == "" {
		config.General.LogLevel = defaultLogLevel
	}
	if config.Http.Host == "" {
		config.Http.Host = defaultHost
	}
	if config.Http.Port == 0 {
		config.Http.Port = defaultPort
	}
	if config.Http.ReadTimeout == 0 {
		config.Http.ReadTimeout = defaultReadTimeout
	}
	if config.Http.WriteTimeout == 0 {
		config.Http.WriteTimeout = defaultWriteTimeout
	}
	if config.Http.ShutdownGracePeriod == 0 {
		config.Http.ShutdownGracePeriod = defaultShutdownGracePeriod
	}
	if config.Render.Mode == "" {
		config.Render.Mode = defaultRenderMode
	}
}

// LoadConfig builds the configuration. Precedence, highest first: WEBAPP_*
// variables reported by env, the file at path, defaults. An empty path
// searches ConfigPaths. A missing file is not an error; an unreadable or
// malformed one is.
func LoadConfig(path string, env out.EnvLookup) (*Config, error) {
	config := &Config{}

	file, err := resolveConfigFile(path)
	if err != nil {
		return nil, err
	}
	if file != "" {
		if err := readAndUnmarshalConfig(os.DirFS(filepath.Dir(file)), filepath.Base(file), config); err != nil {
			return nil, err
		}
		logger.Debug("Loaded configuration file", "path", file)
	}

	applyDefaultsToConfig(config)

	if err := loadConfigFromEnv(config, env); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ConfigPaths returns the candidate config files searched when no path is given.
func ConfigPaths() []string {
	paths := []string{ConfigFileName}
	if dir, err := getConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "config.yml"))
	}
	return paths
}

func resolveConfigFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrConfigLoadFailed, err)
		}
		return path, nil
	}
	for _, candidate := range ConfigPaths() {
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

func getConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "webapp"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "webapp"), nil
}

func readAndUnmarshalConfig(fsys fs.FS, name string, config *Config) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfigLoadFailed, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("%w: error unmarshaling %s: %w", domain.ErrConfigLoadFailed, name, err)
	}
	return nil
}

// loadConfigFromEnv overrides config with WEBAPP_* variables reported by env.
func loadConfigFromEnv(config *Config, env out.EnvLookup) error {
	if env == nil {
		return nil
	}

	if val, ok := env.Lookup("WEBAPP_HOST"); ok && val != "" {
		config.Http.Host = val
		logger.Debug("Using environment variable WEBAPP_HOST", "value", val)
	}
	if val, ok := env.Lookup("WEBAPP_PORT"); ok && val != "" {
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%w: WEBAPP_PORT=%q", domain.ErrInvalidPort, val)
		}
		config.Http.Port = port
		logger.Debug("Using environment variable WEBAPP_PORT", "value", port)
	}
	if val, ok := env.Lookup("WEBAPP_LOG_LEVEL"); ok && val != "" {
		config.General.LogLevel = val
		logger.Debug("Using environment variable WEBAPP_LOG_LEVEL", "value", val)
	}
	if val, ok := env.Lookup("WEBAPP_RENDER_MODE"); ok && val != "" {
		config.Render.Mode = val
		logger.Debug("Using environment variable WEBAPP_RENDER_MODE", "value", val)
	}
	if val, ok := env.Lookup("WEBAPP_RATE_LIMIT"); ok && val != "" {
		limit, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("%w: WEBAPP_RATE_LIMIT=%q", domain.ErrInvalidRateLimit, val)
		}
		config.Http.RateLimit = limit
		logger.Debug("Using environment variable WEBAPP_RATE_LIMIT", "value", limit)
	}
	if val, ok := env.Lookup("ENV"); ok {
		config.Build.RunEnv = val
	}
	return nil
}

// Validate reports every invalid setting, wrapped in domain.ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	if c.Http.Port < 1 || c.Http.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: %d is outside 1-65535", domain.ErrInvalidPort, c.Http.Port))
	}
	if _, err := domain.ParseRenderMode(c.Render.Mode); err != nil {
		errs = append(errs, err)
	}
	if c.Http.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("%w: %v must not be negative", domain.ErrInvalidRateLimit, c.Http.RateLimit))
	}
	if _, err := c.TrustedProxyRanges(); err != nil {
		errs = append(errs, err)
	}
	if c.Http.ReadTimeout < 0 || c.Http.WriteTimeout < 0 || c.Http.ShutdownGracePeriod < 0 {
		errs = append(errs, errors.New("timeouts must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Http.Host, strconv.Itoa(c.Http.Port))
}

// TrustedProxyRanges parses http.trustedProxies. A bare IP is treated as a
// single-host range.
func (c *Config) TrustedProxyRanges() ([]*net.IPNet, error) {
	ranges := make([]*net.IPNet, 0, len(c.Http.TrustedProxies))
	for _, raw := range c.Http.TrustedProxies {
		cidr := strings.TrimSpace(raw)
		if !strings.Contains(cidr, "/") {
			ip := net.ParseIP(cidr)
			if ip == nil {
				return nil, fmt.Errorf("%w: %q", domain.ErrInvalidProxyRange, raw)
			}
			if ip.To4() != nil {
				cidr += "/32"
			} else {
				cidr += "/128"
			}
		}
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidProxyRange, raw)
		}
		ranges = append(ranges, ipNet)
	}
	return ranges, nil
}

// RenderMode returns the validated render mode, falling back to verbatim.
func (c *Config) RenderMode() domain.RenderMode {
	mode, err := domain.ParseRenderMode(c.Render.Mode)
	if err != nil {
		return domain.RenderVerbatim
	}
	return mode
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Http.ReadTimeout) * time.Second
}

func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Http.WriteTimeout) * time.Second
}

func (c *Config) ShutdownGracePeriod() time.Duration {
	return time.Duration(c.Http.ShutdownGracePeriod) * time.Second
}

// IsDevEnvironment reports whether ENV=dev was set at load time.
func (c *Config) IsDevEnvironment() bool {
	return c.Build.RunEnv == "dev"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
