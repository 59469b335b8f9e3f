// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molfrag/settings"
)

// execute runs the root command with args and stdin and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestFragment_Text(t *testing.T) {
	out, err := execute(t, "", "fragment", "CC=CC")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"CC=CC\tC*\tchain",
		"CC=CC\tC(=C*)*\tmultibond",
		"CC=CC\tC*\tchain",
	}, lines(out))
}

func TestFragment_JSON(t *testing.T) {
	out, err := execute(t, "", "fragment", "-o", "json", "--max-chain-length", "2", "CCCC")
	require.NoError(t, err)

	var got []resultView
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "CCCC", got[0].SMILES)
	require.Len(t, got[0].Fragments, 2)
	assert.Equal(t, "CC*", got[0].Fragments[0].SMILES)
	assert.Equal(t, []int{0, 1, -1}, got[0].Fragments[0].SourceAtoms)
	require.Len(t, got[0].Fragments[0].Attachments, 1)
	assert.Equal(t, 2, got[0].Fragments[0].Attachments[0].SourceNeighbor)
	assert.Contains(t, out, `"kind": "chain"`)
}

func TestFragment_Stdin(t *testing.T) {
	in := "# library\nCCO ethanol\n\nC1CCCCC1 cyclo hexane\n"
	out, err := execute(t, in, "fragment")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ethanol\tCCO\tchain",
		"cyclo hexane\tC1CCCCC1\tring",
	}, lines(out))
}

func TestFragment_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.smi")
	require.NoError(t, os.WriteFile(path, []byte("CCCCCCCCCC decane\n"), 0o600))
	out, err := execute(t, "", "fragment", "--input", path, "--max-chain-length", "5")
	require.NoError(t, err)
	assert.Len(t, lines(out), 2)
}

func TestFragment_SetAndKeep(t *testing.T) {
	out, err := execute(t, "", "fragment", "--set", "maxChainLength=1", "CCC")
	require.NoError(t, err)
	assert.Len(t, lines(out), 3)

	out, err = execute(t, "", "fragment", "*CC")
	require.NoError(t, err)
	assert.Equal(t, "*CC\t-\tdropped", strings.TrimSpace(out))

	out, err = execute(t, "", "fragment", "--set", "keepNonFragmentableMolecules=true", "*CC")
	require.NoError(t, err)
	assert.Equal(t, "*CC\t*CC\tpassthrough", strings.TrimSpace(out))
}

func TestFragment_Errors(t *testing.T) {
	_, err := execute(t, "", "fragment", "--set", "bogus=1", "CC")
	assert.ErrorIs(t, err, settings.ErrUnknownSetting)

	_, err = execute(t, "", "fragment", "--set", "maxChainLength", "CC")
	assert.ErrorIs(t, err, errBadSet)

	_, err = execute(t, "", "fragment", "--max-chain-length", "0", "CC")
	assert.ErrorIs(t, err, settings.ErrSettingRange)

	_, err = execute(t, "", "fragment", "-o", "xml", "CC")
	assert.Error(t, err)

	_, err = execute(t, "", "fragment", "C1CC")
	assert.Error(t, err)
}

func TestFragment_ConfigEnvAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "molfrag.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fragmenter:\n  max_chain_length: 2\n"), 0o600))

	out, err := execute(t, "", "--config", path, "fragment", "CCCCCC")
	require.NoError(t, err)
	assert.Len(t, lines(out), 3, "file value")

	out, err = execute(t, "", "--config", path, "fragment", "--max-chain-length", "3", "CCCCCC")
	require.NoError(t, err)
	assert.Len(t, lines(out), 2, "flag beats file")

	t.Setenv("MOLFRAG_FRAGMENTER_MAX_CHAIN_LENGTH", "1")
	out, err = execute(t, "", "fragment", "CCCCCC")
	require.NoError(t, err)
	assert.Len(t, lines(out), 6, "env beats default")
}

func TestFragment_MetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "molfrag.prom")
	_, err := execute(t, "", "fragment", "--metrics-textfile", path, "--workers", "2", "CCO", "C1CCCCC1", "*C")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `molfrag_molecules_total{outcome="fragmented"} 2`)
	assert.Contains(t, string(data), `molfrag_molecules_total{outcome="dropped"} 1`)
	assert.Contains(t, string(data), `molfrag_fragments_total{kind="ring"} 1`)
}

func TestSettingsCommand(t *testing.T) {
	out, err := execute(t, "", "settings")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "NAME"))
	assert.Contains(t, out, "maxChainLength")
	assert.Contains(t, out, "enum(none|hydrogen)")

	out, err = execute(t, "", "settings", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: saturation")
	assert.Contains(t, out, "value: 6")

	_, err = execute(t, "", "settings", "-o", "xml")
	assert.Error(t, err)
}
