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
	"github.com/spf13/cobra"

	"github.com/veilworks/cipher/cryptors/caesar"
)

var caesarShift int

// caesarCmd represents the caesar command
var caesarCmd = &cobra.Command{
	Use:   "caesar",
	Short: "Encrypt text with a fixed alphabet shift",
	Long: `caesar shifts every symbol of the input by a fixed offset around the
session alphabet.  Decrypt by running the ciphertext back through with the
negated shift; shifts wrap, so -25 over the 26-letter alphabet equals +1.`,
	Run: func(cmd *cobra.Command, args []string) {
		alphabet := sessionAlphabet()
		c := caesar.New(alphabet, caesarShift)
		writeText(c.Encrypt(alphabet.Normalize(readText())))
	},
}

func init() {
	rootCmd.AddCommand(caesarCmd)
	caesarCmd.Flags().IntVarP(&caesarShift, "shift", "s", 3, "offset to shift each symbol by")
}
