/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pbrady/shoccs/logging"
)

var rootCmd = &cobra.Command{
	Use:   "shocc",
	Short: "Cut-cell finite-difference mesh/operator assembly",
	Long: `
shocc builds a cut-cell mesh and its boundary-aware derivative operators
from a YAML spec, for inspection or as a smoke test of an assembly.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Log.WithError(err).Error("shocc failed")
		os.Exit(1)
	}
}
