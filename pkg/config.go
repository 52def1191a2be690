package release

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config file names, in lookup order.
const (
	JSONConfigFile = ".version.json"
	TOMLConfigFile = ".version.toml"
)

// Config lists the manifest files whose version field is rewritten on
// release. A nil slice disables that manifest kind.
type Config struct {
	Helm     []string
	Npm      []string
	Composer []string

	// Source is the config file the values came from; empty for defaults.
	Source string
}

// DefaultConfig is used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Helm:     []string{".helm/Chart.yaml"},
		Npm:      []string{"package.json"},
		Composer: []string{"composer.json"},
	}
}

// rawConfig holds undecoded values; each may be absent, a string or a list.
type rawConfig struct {
	Helm     any `json:"helm" toml:"helm"`
	Npm      any `json:"npm" toml:"npm"`
	Composer any `json:"composer" toml:"composer"`
}

// LoadConfig reads .version.json or, failing that, .version.toml from dir.
// Without either file DefaultConfig is returned. A present file with a
// field left out disables that manifest kind.
func LoadConfig(dir string) (Config, error) {
	var raw rawConfig

	jsonPath := filepath.Join(dir, JSONConfigFile)
	tomlPath := filepath.Join(dir, TOMLConfigFile)

	var source string
	switch data, err := os.ReadFile(jsonPath); {
	case err == nil:
		if err := json.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", jsonPath, err)
		}
		source = jsonPath
	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("reading %s: %w", jsonPath, err)
	default:
		if _, err := toml.DecodeFile(tomlPath, &raw); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return DefaultConfig(), nil
			}
			return Config{}, fmt.Errorf("parsing %s: %w", tomlPath, err)
		}
		source = tomlPath
	}

	cfg := Config{Source: source}
	var err error
	if cfg.Helm, err = manifestPaths("helm", raw.Helm); err != nil {
		return Config{}, err
	}
	if cfg.Npm, err = manifestPaths("npm", raw.Npm); err != nil {
		return Config{}, err
	}
	if cfg.Composer, err = manifestPaths("composer", raw.Composer); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// manifestPaths accepts nil, a string, or a list made only of strings.
func manifestPaths(kind string, v any) ([]string, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		paths := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &InvalidManifestPathError{Kind: kind, Value: v}
			}
			paths = append(paths, s)
		}
		return paths, nil
	default:
		return nil, &InvalidManifestPathError{Kind: kind, Value: v}
	}
}
