/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newClassesCmd(params *idfkitParams) *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "classes [prefix]",
		Short: "list schema classes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := openRegistry(cmd, params)
			if err != nil {
				return err
			}
			prefix := ""
			if len(args) > 0 {
				prefix = strings.ToUpper(args[0])
			}
			out := cmd.OutOrStdout()
			for _, c := range reg.Classes() {
				if !strings.HasPrefix(c.Key(), prefix) {
					continue
				}
				if group != "" && !strings.EqualFold(c.Group(), group) {
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", c.Name(), c.Group())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "", "list only classes of group")
	return cmd
}
