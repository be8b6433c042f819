// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airgap-inc/coinkit/configuration"
	"github.com/airgap-inc/coinkit/fault"
)

const sampleConfiguration = `
local M = {}

M.data_directory = "."
M.default_protocol = "ae"

M.nodes = {
    xtz = { url = "https://mainnet.example.org" },
    ae = { url = "https://node.example.org" },
}

M.watched = {
    xtz = { "tz1abc", "tz1def" },
}

M.logging = {
    size = 2048,
    count = 5,
    console = true,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func writeConfiguration(t *testing.T, content string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "coinkit-cli.conf")
	err := os.WriteFile(fileName, []byte(content), 0600)
	require.NoError(t, err)
	return fileName
}

func TestGetConfiguration(t *testing.T) {

	fileName := writeConfiguration(t, sampleConfiguration)

	config, err := configuration.GetConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, "ae", config.DefaultProtocol)
	assert.Equal(t, "https://mainnet.example.org", config.NodeURL("xtz"))
	assert.Equal(t, "https://node.example.org", config.NodeURL("ae"))
	assert.Equal(t, "", config.NodeURL("btc"))
	assert.Equal(t, []string{"tz1abc", "tz1def"}, config.Watched["xtz"])

	assert.Equal(t, filepath.Dir(fileName), config.DataDirectory)
	assert.Equal(t, filepath.Join(config.DataDirectory, "log"), config.Logging.Directory)
	assert.Equal(t, 2048, config.Logging.Size)
	assert.Equal(t, 5, config.Logging.Count)
	assert.True(t, config.Logging.Console)
	assert.Equal(t, "info", config.Logging.Levels["DEFAULT"])
}

// missing keys keep their defaults
func TestGetConfigurationDefaults(t *testing.T) {

	fileName := writeConfiguration(t, "return {}\n")

	config, err := configuration.GetConfiguration(fileName)
	require.NoError(t, err)
	assert.Equal(t, "xtz", config.DefaultProtocol)
	assert.Equal(t, "coinkit-cli.log", config.Logging.File)
	assert.NotEmpty(t, config.Logging.Levels)
}

func TestGetConfigurationMissingFile(t *testing.T) {

	_, err := configuration.GetConfiguration(
		filepath.Join(t.TempDir(), "no-such.conf"))
	assert.Error(t, err)
}

func TestParseNotAStruct(t *testing.T) {

	value := 42
	err := configuration.ParseConfigurationFile("ignored", &value)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)
}
