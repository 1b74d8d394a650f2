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
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/pbrady/shoccs/config"
	"github.com/pbrady/shoccs/field"
	"github.com/pbrady/shoccs/logging"
	"github.com/pbrady/shoccs/matrix"
	"github.com/pbrady/shoccs/mesh"
	"github.com/pbrady/shoccs/operators"
	"github.com/pbrady/shoccs/shapes"
	"github.com/pbrady/shoccs/stencils"
	"github.com/pbrady/shoccs/types"
)

var buildCmd = &cobra.Command{
	Use:   "build <spec.yaml>",
	Short: "Build a mesh and derivative operator from a YAML spec",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

var probe bool

func init() {
	buildCmd.Flags().BoolVar(&probe, "probe", false, "apply the derivative to a constant field and report the max residual")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	spec, err := config.LoadSpec(args[0])
	if err != nil {
		return err
	}

	shapeList := make([]shapes.Shape, len(spec.Shapes))
	for i, sh := range spec.Shapes {
		if sh.Type != "" && sh.Type != "sphere" {
			return fmt.Errorf("shocc: unsupported shape type %q", sh.Type)
		}
		shapeList[i] = shapes.NewSphere(i, types.Real3{sh.Center[0], sh.Center[1], sh.Center[2]}, sh.Radius)
	}

	msh, err := mesh.NewMeshWithShapes(spec.ExtentsInt3(), spec.MinReal3(), spec.MaxReal3(), shapeList, true)
	if err != nil {
		return err
	}

	var st stencils.Stencil
	switch spec.Stencil {
	case "", "E2":
		st = stencils.E2{}
	case "Identity":
		st = stencils.Identity{}
	default:
		return fmt.Errorf("shocc: unknown stencil %q", spec.Stencil)
	}

	d, err := operators.NewDerivative(spec.Direction, msh, st, spec.GridBCsGrid(), spec.ObjectBCs())
	if err != nil {
		return err
	}

	log := logging.WithDirection(spec.Direction)
	log.Infof("lines: %d", len(msh.Lines(spec.Direction)))
	log.Infof("mesh size: %d", msh.Size())
	log.Infof("object boundary intersections: %d", len(msh.Geometry.R(spec.Direction)))

	if probe {
		u := field.NewScalar(msh.Size(), len(msh.Geometry.Rx()), len(msh.Geometry.Ry()), len(msh.Geometry.Rz()))
		for _, c := range [][]types.Real{u.D, u.Rx, u.Ry, u.Rz} {
			for i := range c {
				c[i] = 1
			}
		}
		du := field.NewScalar(msh.Size(), len(msh.Geometry.Rx()), len(msh.Geometry.Ry()), len(msh.Geometry.Rz()))
		d.Apply(u, du, matrix.Assign)
		maxResidual := floats.Norm(du.D, math.Inf(1))
		log.Infof("probe max residual: %g", maxResidual)
	}
	return nil
}
