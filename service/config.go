package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/policybin/logging"
	"github.com/viant/policybin/matching/option"
	"github.com/viant/policybin/metadata"
	"github.com/viant/scy/cred/secret"
	"gopkg.in/yaml.v3"
)

const (
	// EnvAuthUser overrides auth.username
	EnvAuthUser = "BASIC_AUTH_USER"
	// EnvAuthPass overrides auth.password
	EnvAuthPass = "BASIC_AUTH_PASS"
	// EnvStoreURL overrides store.baseURL
	EnvStoreURL = "POLICYBIN_STORE_URL"
	// DefaultCredentialEnv names the store write credential checked by batch commands
	DefaultCredentialEnv = "BLOB_READ_WRITE_TOKEN"
	// DefaultRealm is the HTTP Basic realm
	DefaultRealm = "APEx Policies"
)

// Config defines policybin settings.
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Auth      AuthConfig      `yaml:"auth"`
	HTTP      HTTPConfig      `yaml:"http"`
	MCPServer MCPServerConfig `yaml:"mcpServer"`
	Reindex   ReindexConfig   `yaml:"reindex"`
	Upload    UploadConfig    `yaml:"upload"`
	Log       logging.Config  `yaml:"log"`
}

// StoreConfig defines object store settings.
type StoreConfig struct {
	BaseURL        string `yaml:"baseURL"`
	MetadataPath   string `yaml:"metadataPath"`
	CredentialEnv  string `yaml:"credentialEnv"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
	GuardRetries   *int   `yaml:"guardRetries"`
}

// AuthConfig defines HTTP Basic credentials; empty username or password disables the gate.
type AuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Secret   string `yaml:"secret,omitempty"`
	Realm    string `yaml:"realm"`
}

// HTTPConfig defines HTTP server settings.
type HTTPConfig struct {
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"staticDir"`
}

// MCPServerConfig defines MCP server settings.
type MCPServerConfig struct {
	Addr string `yaml:"addr"`
	Port int    `yaml:"port"`
}

// ReindexConfig defines content reindex settings.
type ReindexConfig struct {
	Workers                int     `yaml:"workers"`
	DocumentTimeoutSeconds int     `yaml:"documentTimeoutSeconds"`
	FetchRate              float64 `yaml:"fetchRate"`
}

// UploadConfig defines upload acceptance rules.
type UploadConfig struct {
	Extensions   []string `yaml:"extensions"`
	MaxSizeBytes *int     `yaml:"maxSizeBytes"`
}

// DefaultConfig returns a config with every default set.
func DefaultConfig() *Config {
	retries := metadata.DefaultGuardRetries
	maxSize := option.DefaultMaxFileSize
	return &Config{
		Store: StoreConfig{
			BaseURL:        "file://~/policybin",
			MetadataPath:   metadata.DefaultPath,
			CredentialEnv:  DefaultCredentialEnv,
			TimeoutSeconds: 30,
			GuardRetries:   &retries,
		},
		Auth:    AuthConfig{Realm: DefaultRealm},
		HTTP:    HTTPConfig{Addr: ":3000"},
		Reindex: ReindexConfig{Workers: 4, DocumentTimeoutSeconds: 60},
		Upload:  UploadConfig{Extensions: option.DefaultExtensions(), MaxSizeBytes: &maxSize},
		Log:     logging.DefaultConfig(),
	}
}

// LoadConfig reads a YAML config over the defaults; an empty path yields the defaults.
// Environment overrides, ~ expansion and secrets are applied to the result.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) != "" {
		path, err := expandUserPath(path)
		if err != nil {
			return nil, err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	if err := cfg.Init(context.Background()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Init applies environment overrides, fills empty fields with defaults and expands paths and secrets.
func (c *Config) Init(ctx context.Context) error {
	defaults := DefaultConfig()
	if v := strings.TrimSpace(os.Getenv(EnvStoreURL)); v != "" {
		c.Store.BaseURL = v
	}
	if v := os.Getenv(EnvAuthUser); v != "" {
		c.Auth.Username = v
	}
	if v := os.Getenv(EnvAuthPass); v != "" {
		c.Auth.Password = v
	}
	if c.Store.BaseURL == "" {
		c.Store.BaseURL = defaults.Store.BaseURL
	}
	if c.Store.MetadataPath == "" {
		c.Store.MetadataPath = defaults.Store.MetadataPath
	}
	if c.Store.CredentialEnv == "" {
		c.Store.CredentialEnv = defaults.Store.CredentialEnv
	}
	if c.Store.TimeoutSeconds <= 0 {
		c.Store.TimeoutSeconds = defaults.Store.TimeoutSeconds
	}
	if c.Store.GuardRetries == nil {
		c.Store.GuardRetries = defaults.Store.GuardRetries
	}
	if c.Auth.Realm == "" {
		c.Auth.Realm = defaults.Auth.Realm
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = defaults.HTTP.Addr
	}
	if c.Reindex.Workers <= 0 {
		c.Reindex.Workers = defaults.Reindex.Workers
	}
	if c.Reindex.DocumentTimeoutSeconds <= 0 {
		c.Reindex.DocumentTimeoutSeconds = defaults.Reindex.DocumentTimeoutSeconds
	}
	if c.Upload.Extensions == nil {
		c.Upload.Extensions = defaults.Upload.Extensions
	}
	if c.Upload.MaxSizeBytes == nil {
		c.Upload.MaxSizeBytes = defaults.Upload.MaxSizeBytes
	}
	var err error
	if c.Store.BaseURL, err = expandUserPath(c.Store.BaseURL); err != nil {
		return err
	}
	if c.HTTP.StaticDir, err = expandUserPath(c.HTTP.StaticDir); err != nil {
		return err
	}
	if strings.TrimSpace(c.Auth.Secret) != "" {
		if err = c.Auth.expandSecret(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Enabled returns true when both credentials are set
func (a *AuthConfig) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

func (a *AuthConfig) expandSecret(ctx context.Context) error {
	username, password := a.Username, a.Password
	if username == "" {
		username = "${Username}"
	}
	if password == "" {
		password = "${Password}"
	}
	var err error
	if a.Username, err = ExpandWithSecret(ctx, username, a.Secret); err != nil {
		return err
	}
	if a.Password, err = ExpandWithSecret(ctx, password, a.Secret); err != nil {
		return err
	}
	return nil
}

// MCPAddr returns MCP server listen address, empty when disabled
func (c *Config) MCPAddr() string {
	if c.MCPServer.Addr != "" {
		return c.MCPServer.Addr
	}
	if c.MCPServer.Port > 0 {
		return fmt.Sprintf(":%d", c.MCPServer.Port)
	}
	return ""
}

func expandUserPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	// Direct ~/path use
	if strings.HasPrefix(trimmed, "~/") || trimmed == "~" {
		return filepath.Join(home, strings.TrimPrefix(trimmed, "~")), nil
	}
	// file: URI forms
	if strings.HasPrefix(trimmed, "file:") {
		prefix := "file://localhost"
		rest := strings.TrimPrefix(trimmed, prefix)
		if rest == trimmed {
			prefix = "file://"
			rest = strings.TrimPrefix(trimmed, prefix)
		}
		if rest == trimmed {
			prefix = "file:"
			rest = strings.TrimPrefix(trimmed, prefix)
		}
		if rest == "" {
			return path, nil
		}
		rest = strings.TrimLeft(rest, "/")
		if strings.HasPrefix(rest, "~") {
			abs := filepath.ToSlash(filepath.Join(home, strings.TrimPrefix(rest, "~")))
			return prefix + "/" + strings.TrimLeft(abs, "/"), nil
		}
		return path, nil
	}
	if trimmed[0] != '~' {
		return path, nil
	}
	return "", fmt.Errorf("config: unsupported ~user path: %s", path)
}

// ExpandWithSecret loads a secret and expands its placeholders in text.
func ExpandWithSecret(ctx context.Context, text, secretRef string) (string, error) {
	secretRef = strings.TrimSpace(secretRef)
	if secretRef == "" {
		return text, nil
	}
	svc := secret.New()
	sec, err := svc.Lookup(ctx, secret.Resource(secretRef))
	if err != nil {
		return "", fmt.Errorf("failed to lookup secret %q: %w", secretRef, err)
	}
	return sec.Expand(text), nil
}
