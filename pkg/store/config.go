package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	// DefaultNamespace is the single key the whole state snapshot lives under.
	DefaultNamespace = "daily-recall"
	DefaultPath      = "~/.recall.db"
	DefaultLogLevel  = "warn"
)

// Config locates the durable storage.
type Config interface {
	BasePath() string
	Backend() string
	Namespace() string
	LogLevel() string
}

// LoadConfig reads .recall.{yaml,toml,json} from $RECALL_CONFIG_PATH, the
// working directory or $HOME, with RECALL_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("namespace", DefaultNamespace)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetConfigName(".recall")
	v.SetEnvPrefix("RECALL")
	v.AutomaticEnv()

	if override := os.Getenv("RECALL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &FileConfig{
		Path:     filepath.Clean(path),
		Kind:     strings.ToLower(strings.TrimSpace(v.GetString("backend"))),
		Key:      v.GetString("namespace"),
		Level:    v.GetString("log_level"),
		Location: v.ConfigFileUsed(),
	}, nil
}

// FileConfig is the resolved configuration.
type FileConfig struct {
	Path     string `json:"path"`
	Kind     string `json:"backend"`
	Key      string `json:"namespace"`
	Level    string `json:"log_level"`
	Location string `json:"config_file,omitempty"`
}

func (f *FileConfig) BasePath() string { return f.Path }

func (f *FileConfig) Backend() string {
	if f.Kind == "" {
		return BackendDiskv
	}
	return f.Kind
}

func (f *FileConfig) Namespace() string {
	if strings.TrimSpace(f.Key) == "" {
		return DefaultNamespace
	}
	return f.Key
}

func (f *FileConfig) LogLevel() string {
	if f.Level == "" {
		return DefaultLogLevel
	}
	return f.Level
}
