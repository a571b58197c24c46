// file: internal/config/config.go
// version: 1.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	CatalogPath      string
	ExportPath       string
	ResultLimit      int
	GoodMatchCutoff  float64
	ResolveThreshold float64
	ScalarThreshold  float64
	Weights          map[string]float64
	LogLevel         string
	LogFile          string
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	// Set defaults
	viper.SetDefault("catalog_path", "inventory.json")
	viper.SetDefault("export_path", "recommendations.json")
	viper.SetDefault("result_limit", 3)
	viper.SetDefault("good_match_cutoff", 0.5)
	viper.SetDefault("resolve_threshold", 0.6)
	viper.SetDefault("scalar_threshold", 0.7)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_file", "thriftpick.log")

	AppConfig = Config{
		CatalogPath:      viper.GetString("catalog_path"),
		ExportPath:       viper.GetString("export_path"),
		ResultLimit:      viper.GetInt("result_limit"),
		GoodMatchCutoff:  viper.GetFloat64("good_match_cutoff"),
		ResolveThreshold: viper.GetFloat64("resolve_threshold"),
		ScalarThreshold:  viper.GetFloat64("scalar_threshold"),
		Weights:          weightOverrides(),
		LogLevel:         viper.GetString("log_level"),
		LogFile:          viper.GetString("log_file"),
	}

	// Normalize values that would otherwise break the session
	if AppConfig.CatalogPath == "" {
		AppConfig.CatalogPath = "inventory.json"
	}
	if AppConfig.ExportPath == "" {
		AppConfig.ExportPath = "recommendations.json"
	}
	if AppConfig.ResultLimit <= 0 {
		AppConfig.ResultLimit = 3
	}
}

// weightOverrides reads the optional attribute weight table. Only
// numeric values pass through; anything else is skipped with a warning.
func weightOverrides() map[string]float64 {
	raw := viper.GetStringMap("weights")
	if len(raw) == 0 {
		return nil
	}
	weights := make(map[string]float64, len(raw))
	for name, value := range raw {
		switch n := value.(type) {
		case float64:
			weights[name] = n
		case float32:
			weights[name] = float64(n)
		case int:
			weights[name] = float64(n)
		case int64:
			weights[name] = float64(n)
		default:
			log.Warn().Str("weight", name).Interface("value", value).
				Msg("ignoring non-numeric weight override")
		}
	}
	return weights
}
