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
	"github.com/spf13/viper"

	"github.com/veilworks/cipher/cryptors/enigma"
)

// enigmaCmd represents the enigma command
var enigmaCmd = &cobra.Command{
	Use:   "enigma",
	Short: "Encrypt or decrypt text with the rotor machine",
	Long: `enigma runs text through a rotor machine: plugboard, a forward pass over
the rotor bank, a reflector, a reverse pass, and the plugboard again,
stepping the rotors odometer-style after every symbol.

The transform is its own inverse: decrypt by running the ciphertext through
a machine loaded with the same key material.  Reflector and rotor material
can each be generated fresh (and persisted for later runs) or loaded from
the files of an earlier run; the plugboard file is always authored by hand
and loaded.`,
	Run: func(cmd *cobra.Command, args []string) {
		runEnigma()
	},
}

func init() {
	rootCmd.AddCommand(enigmaCmd)
	enigmaCmd.Flags().IntP("rotors", "n", 3, "number of rotors in the bank")
	enigmaCmd.Flags().String("reflectorFile", "reflector.txt", "reflector key material file")
	enigmaCmd.Flags().String("wiringFile", "passwords.txt", "rotor wiring key material file")
	enigmaCmd.Flags().String("cursorFile", "rotors_cursor.txt", "rotor cursor key material file")
	enigmaCmd.Flags().String("plugboardFile", "plugboard.txt", "plugboard pair file")
	enigmaCmd.Flags().String("reflectorMode", string(enigma.ModeLoad), "reflector key material mode: generate or load")
	enigmaCmd.Flags().String("rotorMode", string(enigma.ModeLoad), "rotor key material mode: generate or load")
	for _, name := range []string{"rotors", "reflectorFile", "wiringFile",
		"cursorFile", "plugboardFile", "reflectorMode", "rotorMode"} {
		cobra.CheckErr(viper.BindPFlag(name, enigmaCmd.Flags().Lookup(name)))
	}
}

func runEnigma() {
	alphabet := sessionAlphabet()
	reflectorMode, err := enigma.ParseMode(viper.GetString("reflectorMode"))
	cobra.CheckErr(err)
	rotorMode, err := enigma.ParseMode(viper.GetString("rotorMode"))
	cobra.CheckErr(err)

	machine, err := enigma.New(enigma.Config{
		Alphabet:      alphabet,
		RotorCount:    viper.GetInt("rotors"),
		ReflectorFile: viper.GetString("reflectorFile"),
		WiringFile:    viper.GetString("wiringFile"),
		CursorFile:    viper.GetString("cursorFile"),
		PlugboardFile: viper.GetString("plugboardFile"),
		ReflectorMode: reflectorMode,
		RotorMode:     rotorMode,
		Logger:        logger,
	})
	cobra.CheckErr(err)

	logger.Info("encrypting text")
	writeText(machine.Encrypt(alphabet.Normalize(readText())))
}
