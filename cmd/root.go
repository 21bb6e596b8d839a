/*
Copyright © 2026 Viktor Kozar <vkozar.dev@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "redraft",
	Short: "Translate or rephrase text in place, with review",
	Long: `redraft sends a span of text to DeepL and lets you review, edit,
and apply the result back in place.

Configure your language pair once (e.g. DE and EN-US); redraft detects which
one the input is written in and translates to the other. A round trip
translates there and back to surface alternative phrasings.

Use "redraft translate --help" for translation options.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $HOME/.redraft.yaml)")
	rootCmd.PersistentFlags().String("auth-key", "", "DeepL API authentication key")
	rootCmd.PersistentFlags().String("server-url", "", "API server URL (default chosen from the key type)")
	rootCmd.PersistentFlags().StringSlice("languages", []string{"DE", "EN-US"}, "Configured language pair, two codes")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (trace, debug, info, warn, error)")

	viper.BindPFlag("auth_key", rootCmd.PersistentFlags().Lookup("auth-key"))
	viper.BindPFlag("server_url", rootCmd.PersistentFlags().Lookup("server-url"))
	viper.BindPFlag("languages", rootCmd.PersistentFlags().Lookup("languages"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".redraft")
	}

	viper.SetEnvPrefix("REDRAFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}
