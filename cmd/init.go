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
	"io"
	"os"
	"time"

	"github.com/ghodss/yaml"
	"github.com/notargets/gosailfish/InputParameters"
	"github.com/notargets/gosailfish/mesh"
	"github.com/notargets/gosailfish/setup"
	"github.com/notargets/gosailfish/types"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitialData is the document written by init: everything a solver needs to
// start from the setup's initial state.
type InitialData struct {
	Title           string               `json:"Title,omitempty"`
	Setup           string               `json:"Setup"`
	Solver          string               `json:"Solver"`
	EquationOfState string               `json:"EquationOfState"`
	Coordinates     string               `json:"Coordinates"`
	Time            float64              `json:"Time"`
	EndTime         *float64             `json:"EndTime,omitempty"`
	Viscosity       *float64             `json:"Viscosity,omitempty"`
	Structured      *mesh.StructuredMesh `json:"Structured,omitempty"`
	Faces           mesh.FacePositions1D `json:"Faces,omitempty"`
	Primitive       []float64            `json:"Primitive,omitempty"`
	Patches         []*mesh.Patch        `json:"Patches,omitempty"`
	Masses          []types.PointMass    `json:"Masses,omitempty"`
}

// InitCmd writes the initial data of a setup
var InitCmd = &cobra.Command{
	Use:   "init [setup[:name=value[:name=value...]]]",
	Short: "Generate the initial primitive data of a setup and write it as YAML",
	Long: `
Generates the initial primitive data (guard zones included) and the point
masses at the initial time for a setup named on the command line or in a run
file (-I). With --patches > 1 the 2D data is split into row bands that are
filled concurrently.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			rp *InputParameters.RunParameters
		)
		if rp, err = processInput(cmd, args); err != nil {
			return
		}
		verbose := viper.GetBool("verbose")
		if verbose {
			rp.Print(cmd.OutOrStdout())
		}
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		start := time.Now()
		var data *InitialData
		if data, err = BuildInitialData(rp); err != nil {
			return
		}
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "generated initial data in %v\n", time.Since(start))
		}
		if len(rp.Output) == 0 {
			return WriteInitialData(cmd.OutOrStdout(), data)
		}
		var f *os.File
		if f, err = os.Create(rp.Output); err != nil {
			return
		}
		defer f.Close()
		if err = WriteInitialData(f, data); err != nil {
			return
		}
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", rp.Output)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(InitCmd)
	InitCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML run file naming the Setup, Parameters, Resolution, Patches and Output")
	InitCmd.Flags().StringP("output", "o", "", "file to write, stdout when empty")
	InitCmd.Flags().Int("patches", 1, "number of row bands filled concurrently (2D setups)")
	InitCmd.Flags().Bool("profile", false, "write a CPU profile of the run to the current directory")
	_ = viper.BindPFlag("patches", InitCmd.Flags().Lookup("patches"))
}

// processInput takes the run description from the run file when one is
// given, otherwise from the command line.
func processInput(cmd *cobra.Command, args []string) (rp *InputParameters.RunParameters, err error) {
	var (
		icFile, _ = cmd.Flags().GetString("inputConditionsFile")
		output, _ = cmd.Flags().GetString("output")
	)
	rp = &InputParameters.RunParameters{
		Resolution: viper.GetInt("resolution"),
		Patches:    viper.GetInt("patches"),
		Output:     output,
	}
	switch {
	case len(icFile) != 0:
		var data []byte
		if data, err = os.ReadFile(icFile); err != nil {
			return
		}
		if err = rp.Parse(data); err != nil {
			return nil, fmt.Errorf("reading %s: %w", icFile, err)
		}
	case len(args) == 1:
		if err = rp.ParseSetupString(args[0]); err != nil {
			return
		}
	default:
		return nil, fmt.Errorf("must supply a setup or a run file (-I, --inputConditionsFile), example file:%s%s",
			InputParameters.ExampleFile, setup.PossibleSetupsInfo())
	}
	if err = rp.Validate(); err != nil {
		return nil, err
	}
	return
}

// BuildInitialData constructs the setup described by rp and evaluates its
// initial state.
func BuildInitialData(rp *InputParameters.RunParameters) (data *InitialData, err error) {
	var (
		s setup.Setup
	)
	if s, err = setup.MakeSetupFromString(rp.SetupString()); err != nil {
		return
	}
	t0 := s.InitialTime()
	data = &InitialData{
		Title:           rp.Title,
		Setup:           rp.SetupString(),
		Solver:          s.SolverName(),
		EquationOfState: s.EquationOfState().String(),
		Coordinates:     s.CoordinateSystem().String(),
		Time:            t0,
		Masses:          s.Masses(t0),
	}
	if tEnd, ok := s.EndTime(); ok {
		data.EndTime = &tEnd
	}
	if nu, ok := s.Viscosity(); ok {
		data.Viscosity = &nu
	}
	switch m := s.Mesh(rp.Resolution).(type) {
	case *mesh.StructuredMesh:
		data.Structured = m
		if rp.Patches > 1 {
			data.Patches = setup.InitialPrimitivePatches(s, m, rp.Patches)
		} else {
			data.Primitive = setup.InitialPrimitiveVec(s, m)
		}
	case mesh.FacePositions1D:
		data.Faces = m
		data.Primitive = setup.InitialPrimitiveVec(s, m)
	default:
		panic(fmt.Errorf("unknown mesh type %T", m))
	}
	return
}

func WriteInitialData(w io.Writer, data *InitialData) (err error) {
	var out []byte
	if out, err = yaml.Marshal(data); err != nil {
		return
	}
	_, err = w.Write(out)
	return
}
