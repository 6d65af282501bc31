package configs

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SaveTOML encodes data into a TOML file at filePath, creating parent
// directories as needed. The config store holds bootstrap settings, so
// directories are created user-only.
func SaveTOML(filePath string, data any) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(data)
}

// LoadTOML decodes the TOML file at filePath into data.
func LoadTOML(filePath string, data any) error {
	_, err := toml.DecodeFile(filePath, data)
	return err
}
