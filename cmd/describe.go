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

	"github.com/guptarohit/asciigraph"
	"github.com/notargets/gosailfish/mesh"
	"github.com/notargets/gosailfish/setup"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DescribeCmd prints the static description of a setup
var DescribeCmd = &cobra.Command{
	Use:   "describe setup[:name=value[:name=value...]]",
	Short: "Describe a setup: solver, equation of state, mesh, masses and parameters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plot, _ := cmd.Flags().GetBool("plot")
		return DescribeSetup(cmd.OutOrStdout(), args[0], viper.GetInt("resolution"), plot)
	},
}

func init() {
	rootCmd.AddCommand(DescribeCmd)
	DescribeCmd.Flags().BoolP("plot", "p", false, "plot the initial density profile in the terminal")
}

func DescribeSetup(w io.Writer, setupString string, resolution int, plot bool) (err error) {
	var (
		s setup.Setup
	)
	if s, err = setup.MakeSetupFromString(setupString); err != nil {
		return
	}
	setup.Describe(w, s, resolution)
	if plot {
		data, caption := densityProfile(s, resolution)
		exact, isExact := s.(setup.ExactSolution)
		tEnd, hasEnd := s.EndTime()
		faces, is1D := s.Mesh(resolution).(mesh.FacePositions1D)
		if !(isExact && hasEnd && is1D) {
			fmt.Fprintln(w, asciigraph.Plot(data,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(caption),
			))
			return
		}
		final := make([]float64, faces.NumCells())
		prim := make([]float64, setup.NumPrimitive)
		for i := range final {
			exact.ExactPrimitive(faces.CellCenter(i), tEnd, prim)
			final[i] = prim[0]
		}
		fmt.Fprintln(w, asciigraph.PlotMany([][]float64{data, final},
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s at t = %g and exact at t = %g", caption, s.InitialTime(), tEnd)),
		))
	}
	return
}

// densityProfile samples the initial density through the middle row of a
// structured mesh, or over every cell of a face mesh.
func densityProfile(s setup.Setup, resolution int) (data []float64, caption string) {
	prim := make([]float64, setup.NumPrimitive)
	switch m := s.Mesh(resolution).(type) {
	case *mesh.StructuredMesh:
		j := m.NJ / 2
		data = make([]float64, m.NI)
		for i := range data {
			x, y := m.CellCoordinates(i, j)
			s.InitialPrimitive(x, y, prim)
			data[i] = prim[0]
		}
		_, y := m.CellCoordinates(0, j)
		caption = fmt.Sprintf("density along y = %g", y)
	case mesh.FacePositions1D:
		data = make([]float64, m.NumCells())
		for i := range data {
			s.InitialPrimitive(m.CellCenter(i), 0, prim)
			data[i] = prim[0]
		}
		caption = "density"
	default:
		panic(fmt.Errorf("unknown mesh type %T", m))
	}
	return
}
