/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package main

const (
	defaultConfigFileName = "idfkit.yaml"
	defaultIDDFileName    = "Energy+.idd"
	iddPathEnv            = "IDFKIT_IDD"
	fieldAssignSep        = "="
	outputFlag            = "out"
)
