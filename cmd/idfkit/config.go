/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"gopkg.in/yaml.v2"

	"github.com/voedger/idfkit/pkg/editor"
	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/objcache"
)

// Reads yaml configuration file. If path is empty then idfkit.yaml from
// current directory is read if exists
func readConfig(path string) (cfg config, err error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFileName
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if logger.IsVerbose() {
		logger.Verbose("configuration read from", path)
	}
	return cfg, nil
}

// Resolved settings. Flags take precedence over configuration file
type settings struct {
	iddPath       string
	schemaOpts    []idd.Option
	editorOpts    []editor.Option
	logLevel      logger.TLogLevel
	logLevelIsSet bool
}

func resolveSettings(cmd *cobra.Command, params *idfkitParams) (st settings, err error) {
	cfg, err := readConfig(params.ConfigFile)
	if err != nil {
		return st, err
	}
	flags := cmd.Flags()

	st.iddPath = cfg.IDD
	if flags.Changed("idd") || st.iddPath == "" {
		st.iddPath = params.IDD
	}
	if st.iddPath == "" {
		st.iddPath = os.Getenv(iddPathEnv)
	}
	if st.iddPath == "" {
		st.iddPath = defaultIDDFileName
	}

	switch {
	case flags.Changed("skip"):
		st.schemaOpts = append(st.schemaOpts, idd.WithSkipList(params.Skip...))
	case cfg.Skip != nil:
		st.schemaOpts = append(st.schemaOpts, idd.WithSkipList(cfg.Skip...))
	}

	kind, err := cacheKind(cfg.NameCache.Kind)
	if err != nil {
		return st, err
	}
	size := params.NameCacheSize
	if !flags.Changed("name-cache") && cfg.NameCache.Size != nil {
		size = *cfg.NameCache.Size
	}
	st.schemaOpts = append(st.schemaOpts, idd.WithNameCache(kind, size))

	if params.AllowDuplicateNames || (!flags.Changed("allow-duplicate-names") && cfg.AllowDuplicateNames) {
		st.editorOpts = append(st.editorOpts, editor.AllowDuplicateNames())
	}

	if cfg.LogLevel != "" {
		if st.logLevel, err = logLevel(cfg.LogLevel); err != nil {
			return st, err
		}
		st.logLevelIsSet = true
	}
	return st, nil
}

// Applies configured log level unless --verbose or --trace flag is used
func (st settings) applyLogLevel(cmd *cobra.Command) {
	if !st.logLevelIsSet {
		return
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		return
	}
	if t, _ := cmd.Flags().GetBool("trace"); t {
		return
	}
	logger.SetLogLevel(st.logLevel)
}

func cacheKind(s string) (objcache.Kind, error) {
	switch strings.ToLower(s) {
	case "", "lru":
		return objcache.Kind_LRU, nil
	case "imcache":
		return objcache.Kind_imcache, nil
	}
	return objcache.Kind_LRU, fmt.Errorf("unknown name cache kind «%s»", s)
}

func logLevel(s string) (logger.TLogLevel, error) {
	switch strings.ToLower(s) {
	case "none":
		return logger.LogLevelNone, nil
	case "error":
		return logger.LogLevelError, nil
	case "warning":
		return logger.LogLevelWarning, nil
	case "info":
		return logger.LogLevelInfo, nil
	case "verbose":
		return logger.LogLevelVerbose, nil
	case "trace":
		return logger.LogLevelTrace, nil
	}
	return logger.LogLevelInfo, fmt.Errorf("unknown log level «%s»", s)
}
