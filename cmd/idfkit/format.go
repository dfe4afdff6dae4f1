/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/voedger/idfkit/pkg/idfio"
)

func newFormatCmd(params *idfkitParams) *cobra.Command {
	var checkVersion bool
	cmd := &cobra.Command{
		Use:   "format idf-file",
		Short: "rewrite data file with field comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, params, args[0])
			if err != nil {
				return err
			}
			if checkVersion {
				if err := idfio.CheckVersion(s.reg, s.store); err != nil {
					return err
				}
			}
			return s.save(cmd, params.Out)
		},
	}
	cmd.Flags().BoolVar(&checkVersion, "check-version", false, "fail if data file version does not match schema version")
	addOutFlag(cmd, params)
	return cmd
}
