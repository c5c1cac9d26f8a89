package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Keys understood in config.toml. Nested keys map to PGSVC_DNS_TIMEOUT etc.
const (
	KeyPsql        = "psql"
	KeyTitle       = "title"
	KeyServiceFile = "service_file"
	KeyDNSTimeout  = "dns.timeout"
	KeyLogFile     = "log.file"
	KeyLogLevel    = "log.level"
)

const envPrefix = "PGSVC"

// SetDefaults registers the built-in values.
func SetDefaults() {
	viper.SetDefault(KeyPsql, "psql")
	viper.SetDefault(KeyTitle, "Select service to connect to")
	viper.SetDefault(KeyServiceFile, "")
	viper.SetDefault(KeyDNSTimeout, 2*time.Second)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyLogLevel, "warn")
}

// InitConfig initializes Viper to read the pgsvc configuration file.
// It should be called once when the application starts.
func InitConfig() {
	SetDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not find home directory. Using built-in settings.")
		return
	}

	// Set the path for the config file: ~/.config/pgsvc/
	viper.AddConfigPath(filepath.Join(home, ".config", "pgsvc"))
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	// It's okay if the file doesn't exist; defaults apply.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Could not read %s: %v\n", viper.ConfigFileUsed(), err)
		}
	}
}

func Psql() string {
	return viper.GetString(KeyPsql)
}

func Title() string {
	return viper.GetString(KeyTitle)
}

// ServiceFile is the configured service file, with a leading ~ expanded.
func ServiceFile() string {
	return expandHome(viper.GetString(KeyServiceFile))
}

func DNSTimeout() time.Duration {
	return viper.GetDuration(KeyDNSTimeout)
}

func LogFile() string {
	return expandHome(viper.GetString(KeyLogFile))
}

func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
