package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the store's base path and the identity allow-list.
type Config interface {
	BasePath() string
	Domains() []string
}

// LoadConfig resolves configuration from a .jmap file (walked from the
// working directory), JMAP_* environment variables, and defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.jmap.db")
	viper.SetConfigName(".jmap") // .yaml is implicit
	viper.SetEnvPrefix("JMAP")
	viper.AutomaticEnv()

	if override := os.Getenv("JMAP_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{
		Path:        path,
		AuthDomains: viper.GetStringSlice("domains"),
	}, nil
}

type fileConfig struct {
	Path        string   `json:"path"`
	AuthDomains []string `json:"domains"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Domains() []string {
	return f.AuthDomains
}
