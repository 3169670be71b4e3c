/*
Copyright © 2025 Veilworks

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
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/veilworks/cipher/cryptors"
)

var (
	cfgFile        string
	inputFileName  string
	outputFileName string
	verbose        bool
	logger         *slog.Logger
	Version        string = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cipher",
	Short: "A historical cipher toolbox",
	Long: `cipher encrypts and decrypts text files with historical ciphers: a Caesar
shift, a running-key polyalphabetic cipher, and an Enigma-style rotor
machine.  Input is uppercased and restricted to the session alphabet before
encryption.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cipher.yaml)")
	rootCmd.PersistentFlags().StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the plaintext file to encrypt/decrypt.")
	rootCmd.PersistentFlags().StringVarP(&outputFileName, "outputFile", "o", "-", "Name of the file receiving the result.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log rotor stepping and other detail")
	rootCmd.PersistentFlags().String("alphabet", cryptors.Latin, "session alphabet shared by all cipher components")
	cobra.CheckErr(viper.BindPFlag("alphabet", rootCmd.PersistentFlags().Lookup("alphabet")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".cipher" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cipher")
	}

	viper.SetEnvPrefix("cipher")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// sessionAlphabet builds the Alphabet shared by every component of this run.
func sessionAlphabet() *cryptors.Alphabet {
	alphabet, err := cryptors.NewAlphabet(viper.GetString("alphabet"))
	cobra.CheckErr(err)
	return alphabet
}

// readText returns the raw input buffer.  The input file name "-" selects
// stdin; a terminal on stdin gets a hint so the wait is not mistaken for a
// hang.
func readText() string {
	if inputFileName == "" || inputFileName == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Reading text from the terminal; finish with Ctrl-D.")
		}
		data, err := io.ReadAll(os.Stdin)
		cobra.CheckErr(err)
		return string(data)
	}
	data, err := os.ReadFile(inputFileName)
	cobra.CheckErr(err)
	return string(data)
}

// writeText writes the final output buffer.  The output file name "-"
// selects stdout.
func writeText(text string) {
	if outputFileName == "" || outputFileName == "-" {
		fmt.Println(text)
		return
	}
	cobra.CheckErr(os.WriteFile(outputFileName, []byte(text), 0o644))
}
