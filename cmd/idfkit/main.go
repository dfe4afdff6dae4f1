/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/cobrau"

	"github.com/voedger/idfkit/pkg/idd"
)

//go:embed version
var version string

var red func(a ...interface{}) string
var green func(a ...interface{}) string

func init() {
	red = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
}

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Fprintln(os.Stderr, red(err))
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	return cobrau.ExecCommandAndCatchInterrupt(newRootCmd(args, ver))
}

func newRootCmd(args []string, ver string) *cobra.Command {
	params := &idfkitParams{}
	rootCmd := cobrau.PrepareRootCmd(
		"idfkit",
		"EnergyPlus input files toolkit",
		args,
		strings.TrimSpace(ver),
		newClassesCmd(params),
		newListCmd(params),
		newShowCmd(params),
		newAddCmd(params),
		newRemoveCmd(params),
		newRenameCmd(params),
		newRefsCmd(params),
		newDanglingCmd(params),
		newGeometryCmd(params),
		newFormatCmd(params),
	)
	rootCmd.PersistentFlags().StringVarP(&params.ConfigFile, "config", "c", "", "path to yaml configuration file")
	rootCmd.PersistentFlags().StringVar(&params.IDD, "idd", "", "path to Energy+.idd schema file")
	rootCmd.PersistentFlags().StringSliceVar(&params.Skip, "skip", nil, "classes to skip by standard gaps repair")
	rootCmd.PersistentFlags().BoolVar(&params.AllowDuplicateNames, "allow-duplicate-names", false, "allow objects of same class with equal names")
	rootCmd.PersistentFlags().IntVar(&params.NameCacheSize, "name-cache", idd.DefaultNameCacheSize, "extensible field names cache size per class, 0 disables cache")
	return rootCmd
}
