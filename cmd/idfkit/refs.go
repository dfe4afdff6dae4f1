/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/idfkit/pkg/idd"
)

func newRefsCmd(params *idfkitParams) *cobra.Command {
	return &cobra.Command{
		Use:   "refs idf-file class name",
		Short: "list fields which refer to object",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, params, args[0])
			if err != nil {
				return err
			}
			holders, err := s.editor.ReferencesTo(args[1], args[2])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, h := range holders {
				fmt.Fprintln(out, h)
			}
			return nil
		},
	}
}

func newDanglingCmd(params *idfkitParams) *cobra.Command {
	return &cobra.Command{
		Use:   "dangling idf-file",
		Short: "list references to absent objects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, params, args[0])
			if err != nil {
				return err
			}
			dangling := s.editor.Index().Dangling(s.store)
			out := cmd.OutOrStdout()
			if len(dangling) == 0 {
				fmt.Fprintln(out, green("no dangling references"))
				return nil
			}
			for _, h := range dangling {
				fmt.Fprintln(out, red(h))
			}
			return idd.EnrichError(errDanglingReferences, "%d found", len(dangling))
		},
	}
}
