// Copyright 2025 Antfly, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is set by main from the build-time version
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "marker",
	Short:   "Chunked named-entity annotation for large texts",
	Long:    `Marker splits large texts into chunks, annotates each chunk with named entities, and merges the results into a single HTML visualization.`,
	Version: Version,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.marker.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-style", "json", "log style (json, console)")
	rootCmd.PersistentFlags().Int("max-chunk-size", 0, "maximum chunk size in characters (0 = default)")
	rootCmd.PersistentFlags().Bool("transliterate", false, "transliterate Cyrillic input to Latin")
	rootCmd.PersistentFlags().String("lang", "sr", "transliteration language code")

	mustBindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	mustBindPFlag("log.style", rootCmd.PersistentFlags().Lookup("log-style"))
	mustBindPFlag("max_chunk_size", rootCmd.PersistentFlags().Lookup("max-chunk-size"))
	mustBindPFlag("transliterate", rootCmd.PersistentFlags().Lookup("transliterate"))
	mustBindPFlag("transliterate_lang", rootCmd.PersistentFlags().Lookup("lang"))
}

// initConfig reads in the config file and environment variables
func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".marker")
		}
	}

	viper.SetEnvPrefix("MARKER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}

// newLogger builds a zap logger from the log.level and log.style config
func newLogger() *zap.Logger {
	var cfg zap.Config
	if viper.GetString("log.style") == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if level, err := zap.ParseAtomicLevel(viper.GetString("log.level")); err == nil {
		cfg.Level = level
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("building logger: %v", err))
	}
	return logger
}

// Execute runs the root command
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
