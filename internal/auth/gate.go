package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// Config is the persisted master-credential record. Only the SHA-256 digest
// of the master password is stored, never the password itself.
type Config struct {
	MasterHash string    `json:"master_hash"`
	CreatedAt  time.Time `json:"created_at"`
}

// Registered reports whether a master credential has been set.
func (c *Config) Registered() bool {
	return c.MasterHash != ""
}

// Gate guards access to the vault behind the master credential.
type Gate struct {
	path string
}

// NewGate returns a gate bound to the given config file path.
func NewGate(path string) *Gate {
	return &Gate{path: path}
}

// Path returns the config file location.
func (g *Gate) Path() string {
	return g.path
}

// Digest returns the SHA-256 hex digest of a master password.
func Digest(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Load reads the master-credential config. A file that is absent, empty or
// unparsable yields a zero Config, which reads as "not registered"; the next
// registration rewrites it.
func (g *Gate) Load() (*Config, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return &Config{}, nil
	}

	return &cfg, nil
}

// Save writes the config with secure permissions.
func (g *Gate) Save(cfg *Config) error {
	dir := filepath.Dir(g.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(g.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Register stores the digest of the given secret. Once a credential exists
// the call is a no-op; an existing hash is never overwritten.
func (g *Gate) Register(secret string) error {
	cfg, err := g.Load()
	if err != nil {
		return err
	}
	if cfg.Registered() {
		return nil
	}

	return g.Save(&Config{
		MasterHash: Digest(secret),
		CreatedAt:  time.Now(),
	})
}

// Verify compares a candidate secret against the stored digest.
func (g *Gate) Verify(secret string) (bool, error) {
	cfg, err := g.Load()
	if err != nil {
		return false, err
	}
	if !cfg.Registered() {
		return false, nil
	}
	return Digest(secret) == cfg.MasterHash, nil
}
