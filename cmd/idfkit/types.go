/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package main

type idfkitParams struct {
	ConfigFile          string
	IDD                 string
	Skip                []string
	AllowDuplicateNames bool
	NameCacheSize       int
	Out                 string
}

// Content of idfkit.yaml
type config struct {
	IDD                 string          `yaml:"idd"`
	Skip                []string        `yaml:"skip"`
	AllowDuplicateNames bool            `yaml:"allowDuplicateNames"`
	NameCache           nameCacheConfig `yaml:"nameCache"`
	LogLevel            string          `yaml:"logLevel"`
}

type nameCacheConfig struct {
	Kind string `yaml:"kind"`
	Size *int   `yaml:"size"`
}
