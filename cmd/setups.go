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
package cmd

import (
	"fmt"

	"github.com/notargets/gosailfish/setup"
	"github.com/spf13/cobra"
)

// SetupsCmd lists the registered setups
var SetupsCmd = &cobra.Command{
	Use:   "setups",
	Short: "List the available setups",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), setup.PossibleSetupsInfo().Error())
	},
}

func init() {
	rootCmd.AddCommand(SetupsCmd)
}
