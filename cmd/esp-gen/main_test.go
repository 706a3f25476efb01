package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCapture(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, &out)
	return out.String(), err
}

func TestRun_FlagsCArray(t *testing.T) {
	out, err := runCapture(t, "-bogey", "5", "-band", "K Band", "-dir", "Front Arrow", "-strength", "3")
	require.NoError(t, err)
	assert.Equal(t, "{0xAA, 0xD8, 0xEA, 0x31, 0x09, 0x6D, 0x6D, 0x07, 0x24, 0x24, 0x50, 0x00, 0x80, 0x9F, 0xAB}\n", out)
}

func TestRun_BlinkHex(t *testing.T) {
	out, err := runCapture(t, "-format", "hex", "-bogey", "1", "-band", "laser", "-blink", "-main-vol", "0", "-mute-vol", "3")
	require.NoError(t, err)
	// AA+D8+EA+31+09+06+00+00+01+00+50+00+03 = 0x300
	assert.Equal(t, "AA D8 EA 31 09 06 00 00 01 00 50 00 03 00 AB\n", out)
}

func TestRun_RawWritesBytes(t *testing.T) {
	out, err := runCapture(t, "-format", "raw")
	require.NoError(t, err)
	require.Len(t, out, 15)
	assert.Equal(t, byte(0xAA), out[0])
	assert.Equal(t, byte(0xAB), out[14])
}

func TestRun_RejectsBadInput(t *testing.T) {
	cases := [][]string{
		{"-strength", "9"},
		{"-band", "Ku"},
		{"-main-vol", "16"},
		{"-format", "json"},
	}
	for _, args := range cases {
		_, err := runCapture(t, args...)
		assert.Error(t, err, "args=%v", args)
	}
}

func TestRun_HelpFlag(t *testing.T) {
	_, err := runCapture(t, "-h")
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestRun_ConfigScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`output:
  format: hex
alerts:
  - bogey: "5"
    band: K Band
    direction: Front Arrow
    strength: 3
  - band: X Band
    direction: Rear Arrow
    blink: true
    strength: 8
    main_volume: 15
    mute_volume: 15
`), 0o644))

	out, err := runCapture(t, "-config", path)
	require.NoError(t, err)
	// AA+D8+EA+31+09+00+00+FF+88+00+50+00+FF = 0x57C
	assert.Equal(t,
		"AA D8 EA 31 09 6D 6D 07 24 24 50 00 80 9F AB\n"+
			"AA D8 EA 31 09 00 00 FF 88 00 50 00 FF 7C AB\n",
		out)

	out, err = runCapture(t, "-config", path, "-format", "c")
	require.NoError(t, err)
	assert.Contains(t, out, "{0xAA, 0xD8")
}

func TestRun_ConfigErrors(t *testing.T) {
	_, err := runCapture(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "config load failed")
}
