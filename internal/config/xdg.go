package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths locates the two files the program owns: the master-credential
// config and the credential store.
type Paths struct {
	ConfigFile string
	StoreFile  string
}

// Resolve returns the file locations. With dir set, both files live side by
// side in that directory; otherwise the config goes to the XDG config home
// and the store to the XDG data home.
func Resolve(dir string) Paths {
	if dir != "" {
		return Paths{
			ConfigFile: filepath.Join(dir, "config.json"),
			StoreFile:  filepath.Join(dir, "passwords.json"),
		}
	}
	return Paths{
		ConfigFile: filepath.Join(ConfigDir(), "config.json"),
		StoreFile:  filepath.Join(DataDir(), "passwords.json"),
	}
}

// ConfigDir returns the XDG-compliant config directory for strongbox
// Typically ~/.config/strongbox/ on Linux
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "strongbox")
}

// DataDir returns the XDG-compliant data directory for strongbox
// Typically ~/.local/share/strongbox/ on Linux
func DataDir() string {
	return filepath.Join(xdg.DataHome, "strongbox")
}
