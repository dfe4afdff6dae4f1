/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package main

import (
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/idfkit/pkg/editor"
	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/idfio"
	"github.com/voedger/idfkit/pkg/objstore"
)

// Loaded schema and data file
type session struct {
	reg     *idd.Registry
	store   *objstore.Store
	editor  *editor.Editor
	idfPath string
}

func openRegistry(cmd *cobra.Command, params *idfkitParams) (*idd.Registry, settings, error) {
	st, err := resolveSettings(cmd, params)
	if err != nil {
		return nil, st, err
	}
	st.applyLogLevel(cmd)
	reg, err := idfio.LoadRegistry(st.iddPath, st.schemaOpts...)
	return reg, st, err
}

// Loads schema and data file. Version mismatch is reported as warning
func openSession(cmd *cobra.Command, params *idfkitParams, idfPath string) (*session, error) {
	reg, st, err := openRegistry(cmd, params)
	if err != nil {
		return nil, err
	}
	s, err := idfio.LoadStore(reg, idfPath)
	if err != nil {
		return nil, err
	}
	_ = idfio.CheckVersion(reg, s)
	return &session{
		reg:     reg,
		store:   s,
		editor:  editor.New(reg, s, st.editorOpts...),
		idfPath: idfPath,
	}, nil
}

// Writes data file to --out path, or to command output if path is empty
func (s *session) save(cmd *cobra.Command, out string) error {
	if out == "" {
		return idfio.Write(cmd.OutOrStdout(), s.store)
	}
	if err := idfio.WriteFile(out, s.store); err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose(s.store.Count(), "objects written to", out)
	}
	return nil
}

func addOutFlag(cmd *cobra.Command, params *idfkitParams) {
	cmd.Flags().StringVarP(&params.Out, outputFlag, "o", "", "path to write result data file, standard output if omitted")
}
