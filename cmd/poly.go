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

	"github.com/veilworks/cipher/cryptors/poly"
)

var (
	polyKeyword string
	polyDecrypt bool
)

// polyCmd represents the poly command
var polyCmd = &cobra.Command{
	Use:   "poly",
	Short: "Encrypt text with a repeating-keyword substitution",
	Long: `poly shifts symbol i of the input by an offset taken from a repeating
keyword: the keyword symbol's alphabet index plus one.  Pass --decrypt to
reverse a previous run with the same keyword.`,
	Run: func(cmd *cobra.Command, args []string) {
		runPoly()
	},
}

func init() {
	rootCmd.AddCommand(polyCmd)
	polyCmd.Flags().StringVarP(&polyKeyword, "keyword", "k", "", "keyword supplying the repeating offsets")
	polyCmd.Flags().BoolVarP(&polyDecrypt, "decrypt", "d", false, "decrypt instead of encrypt")
	cobra.CheckErr(polyCmd.MarkFlagRequired("keyword"))
}

func runPoly() {
	alphabet := sessionAlphabet()
	c, err := poly.New(alphabet, polyKeyword)
	cobra.CheckErr(err)

	text := alphabet.Normalize(readText())
	if polyDecrypt {
		writeText(c.Decrypt(text))
	} else {
		writeText(c.Encrypt(text))
	}
}
