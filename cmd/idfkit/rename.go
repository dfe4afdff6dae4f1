/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenameCmd(params *idfkitParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename idf-file class old-name new-name",
		Short: "rename object and update every reference to it",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, params, args[0])
			if err != nil {
				return err
			}
			obj, refs, err := s.editor.RenameWithReferences(args[1], args[2], args[3])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s, %d references updated\n", green("renamed"), obj, len(refs))
			return s.save(cmd, params.Out)
		},
	}
	addOutFlag(cmd, params)
	return cmd
}
