/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/idfkit/pkg/surface"
)

func newGeometryCmd(params *idfkitParams) *cobra.Command {
	return &cobra.Command{
		Use:   "geometry idf-file",
		Short: "print area, tilt and azimuth of detailed surfaces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, params, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range s.store.AllClasses() {
				if !surface.IsSurfaceClass(c) {
					continue
				}
				for _, obj := range s.editor.Objects(c) {
					area, err := surface.Area(obj)
					if err != nil {
						fmt.Fprintln(out, obj, red(err))
						continue
					}
					tilt, _ := surface.Tilt(obj)
					azimuth, _ := surface.Azimuth(obj)
					fmt.Fprintf(out, "%s\tarea %.2f m2\ttilt %.1f\tazimuth %.1f\n", obj, area, tilt, azimuth)
				}
			}
			return nil
		},
	}
}
