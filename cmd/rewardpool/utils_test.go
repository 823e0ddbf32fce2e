// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/rewardpool/acc"
)

func newContext(configPath string) *cli.Context {
	set := flag.NewFlagSet("test", 0)
	set.String(configFlag.Name, configPath, "")
	return cli.NewContext(nil, set, nil)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.yaml")
	content := `
funders:
  - "0x0000000000000000000000000000000000000f0d"
interval: 3600
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := loadConfig(newContext(path))
	require.NoError(t, err)
	assert.Equal(t, uint64(3600), cfg.Interval)
	require.Len(t, cfg.Funders, 1)
	assert.Equal(t, acc.MustParseAddress("0x0000000000000000000000000000000000000f0d"), cfg.Funders[0])
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := loadConfig(newContext(""))
	assert.Error(t, err)

	_, err = loadConfig(newContext(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("funders: [not-an-address]"), 0600))

	_, err := loadConfig(newContext(path))
	assert.Error(t, err)
}
