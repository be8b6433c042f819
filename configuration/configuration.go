// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - Lua-based configuration file handling
//
// the file is a Lua program that returns a table; executable
// configuration keeps endpoint lists and watched address sets short
// to write while allowing local overrides without a custom syntax
package configuration

import (
	"os"
	"path/filepath"
)

// directories and files are relative to DataDirectory
const (
	defaultDataDirectory = "."

	defaultLogDirectory = "log"
	defaultLogFile      = "coinkit-cli.log"
	defaultLogCount     = 10
	defaultLogSize      = 1024 * 1024

	defaultProtocol = "xtz"
)

var defaultLogLevels = map[string]string{
	"DEFAULT": "critical",
	"main":    "info",
	"gateway": "info",
}

// NodeType - one chain node endpoint
type NodeType struct {
	URL string `gluamapper:"url"`
}

// LoggerType - log file rotation and level settings
type LoggerType struct {
	Directory string            `gluamapper:"directory"`
	File      string            `gluamapper:"file"`
	Size      int               `gluamapper:"size"`
	Count     int               `gluamapper:"count"`
	Levels    map[string]string `gluamapper:"levels"`
	Console   bool              `gluamapper:"console"`
}

// Configuration - configuration file data format
type Configuration struct {
	DataDirectory   string              `gluamapper:"data_directory"`
	DefaultProtocol string              `gluamapper:"default_protocol"`
	Nodes           map[string]NodeType `gluamapper:"nodes"`
	Watched         map[string][]string `gluamapper:"watched"`
	Logging         LoggerType          `gluamapper:"logging"`
}

// GetConfiguration - read, execute and verify a configuration file
func GetConfiguration(fileName string) (*Configuration, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	options := &Configuration{
		DataDirectory:   defaultDataDirectory,
		DefaultProtocol: defaultProtocol,
		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	err = ParseConfigurationFile(fileName, options)
	if nil != err {
		return nil, err
	}

	// relative paths hang off the configuration file's directory
	if "." == options.DataDirectory {
		options.DataDirectory = filepath.Dir(fileName)
	}
	options.DataDirectory, err = filepath.Abs(options.DataDirectory)
	if nil != err {
		return nil, err
	}
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(
			options.DataDirectory, options.Logging.Directory)
	}
	if nil == options.Logging.Levels {
		options.Logging.Levels = defaultLogLevels
	}

	return options, nil
}

// EnsureDirectory - create the data and log directories if missing
func (c *Configuration) EnsureDirectory() error {
	return os.MkdirAll(c.Logging.Directory, 0700)
}

// NodeURL - endpoint for a protocol identifier, empty when not
// configured
func (c *Configuration) NodeURL(identifier string) string {
	node, ok := c.Nodes[identifier]
	if !ok {
		return ""
	}
	return node.URL
}
