package commands

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xorcrack/internal/api"
	"xorcrack/internal/domain"
	"xorcrack/internal/fixture"
	"xorcrack/internal/services/recovery"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", writeConfig(t)}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xorcrack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: error\n"), 0o600))
	return path
}

func TestBreakCommand(t *testing.T) {
	out, err := run(t, "", "break", "-n", "1",
		"1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736")
	require.NoError(t, err)
	assert.Contains(t, out, "key=0x58")
	assert.Contains(t, out, `"Cooking MC's like a pound of bacon"`)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestBreakCommand_RemoteMatchesLocal(t *testing.T) {
	srv := httptest.NewServer(api.NewHandler(recovery.New(nil, 0, 0, nil), nil, 0))
	t.Cleanup(srv.Close)
	const vector = "1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736"

	local, err := run(t, "", "break", "-n", "254", vector)
	require.NoError(t, err)
	remote, err := run(t, "", "--server", srv.URL, "break", "-n", "254", vector)
	require.NoError(t, err)
	assert.Equal(t, 254, strings.Count(local, "\n"))
	assert.Equal(t, local, remote)
}

func TestGenThenDetect(t *testing.T) {
	dir := t.TempDir()
	batch := filepath.Join(dir, "batch.txt")
	report := filepath.Join(dir, "report.json")

	_, err := run(t, "", "gen", "--seed", "cli", "--lines", "200", "--out", batch)
	require.NoError(t, err)

	out, err := run(t, "", "detect", batch, "--out", report)
	require.NoError(t, err)
	assert.Contains(t, out, `plaintext="Now that the party is jumping\n"`)

	b, err := os.ReadFile(report)
	require.NoError(t, err)
	var resp domain.DetectResponse
	require.NoError(t, json.Unmarshal(b, &resp))
	assert.Equal(t, "Now that the party is jumping\n", resp.Plaintext)
}

func TestDetectCommand_ReportsFileLineWithBlankLines(t *testing.T) {
	batch, err := fixture.Generate(fixture.Options{
		Seed:      "blank-lines",
		Lines:     20,
		Plaintext: []byte("Now that the party is jumping\n"),
		Index:     9,
	})
	require.NoError(t, err)

	var in bytes.Buffer
	in.WriteString("\n")
	for _, l := range batch.Lines {
		in.Write(l)
		in.WriteString("\n")
	}
	path := filepath.Join(t.TempDir(), "batch.txt")
	report := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, in.Bytes(), 0o600))

	out, err := run(t, "", "detect", path, "--out", report)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "line=11 "), out)

	b, err := os.ReadFile(report)
	require.NoError(t, err)
	var resp domain.DetectResponse
	require.NoError(t, json.Unmarshal(b, &resp))
	assert.Equal(t, 10, resp.Index)
}

func TestDetectCommand_Stdin(t *testing.T) {
	lines, err := run(t, "", "gen", "--seed", "stdin", "--lines", "40", "--key", "88")
	require.NoError(t, err)

	out, err := run(t, lines, "detect", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "key=0x58")
}

func TestDetectCommand_EmptyInput(t *testing.T) {
	_, err := run(t, "\n\n", "detect", "-")
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestHexCommands(t *testing.T) {
	out, err := run(t, "", "hex", "encode", "ab")
	require.NoError(t, err)
	assert.Equal(t, "6162\n", out)

	out, err = run(t, "", "hex", "decode", "6162")
	require.NoError(t, err)
	assert.Equal(t, "ab\n", out)

	_, err = run(t, "", "hex", "decode", "616")
	assert.ErrorIs(t, err, domain.ErrMalformedHex)
}

func TestFixedXorCommand(t *testing.T) {
	out, err := run(t, "", "fixed-xor",
		"1c0111001f010100061a024b53535009181c", "686974207468652062756c6c277320657965")
	require.NoError(t, err)
	assert.Equal(t, "746865206b696420646f6e277420706c6179\n", out)

	_, err = run(t, "", "fixed-xor", "00", "0000")
	assert.ErrorIs(t, err, domain.ErrLengthMismatch)
}

func TestScoreCommand(t *testing.T) {
	out, err := run(t, "", "score", "--hex", "000102")
	require.NoError(t, err)
	assert.Equal(t, "score=-0.030000 controls=3 bytes=3\n", out)
}
