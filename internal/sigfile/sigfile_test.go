package sigfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrh-151/simplesig/pkg/simplesig"
)

func sampleSet() *simplesig.SignatureSet {
	set := simplesig.NewSignatureSet()
	set.Put(simplesig.FormatRecord{
		PUID:       "fmt/1",
		Name:       "Broadcast WAVE",
		Version:    "1",
		MIME:       "audio/x-wav",
		Extensions: []string{"wav"},
		Signatures: []simplesig.SignaturePattern{
			{Position: simplesig.PositionBOF, Pattern: "52494646{4}57415645", MaxOffset: 0},
		},
		PriorityOver: []string{"fmt/2"},
	})
	set.Put(simplesig.FormatRecord{
		PUID: "fmt/2",
		Name: "Waveform Audio",
	})
	return set
}

func TestRender_Deterministic(t *testing.T) {
	set := sampleSet()
	meta := Metadata{Version: "1.0.0", Fingerprint: Fingerprint(map[string]string{"fmt/1": "aa", "fmt/2": "bb"})}

	first, err := Render(set, meta)
	require.NoError(t, err)
	second, err := Render(set, meta)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_Header(t *testing.T) {
	set := sampleSet()
	meta := Metadata{Version: "1.0.0", Fingerprint: Fingerprint(map[string]string{"fmt/1": "aa"})}

	out, err := Render(set, meta)
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "# Simplified signature file\n")
	assert.Contains(t, text, "# Generated by simplesig 1.0.0\n")
	assert.Contains(t, text, "# Formats: 2  Fingerprint: "+meta.Fingerprint.String())
	assert.NotContains(t, text, "# Created:")

	meta.GeneratedAt = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	out, err = Render(set, meta)
	require.NoError(t, err)
	assert.Contains(t, string(out), "# Created: 2024-03-01T12:30:00Z\n")
}

func TestRender_AscendingPUIDOrder(t *testing.T) {
	set := simplesig.NewSignatureSet()
	set.Put(simplesig.FormatRecord{PUID: "x-fmt/5", Name: "Later"})
	set.Put(simplesig.FormatRecord{PUID: "fmt/10", Name: "Earlier"})

	out, err := Render(set, Metadata{Version: "dev"})
	require.NoError(t, err)

	text := string(out)
	assert.Less(t, strings.Index(text, "fmt/10"), strings.Index(text, "x-fmt/5"))
}

func TestRender_OmitsEmptyFields(t *testing.T) {
	set := simplesig.NewSignatureSet()
	set.Put(simplesig.FormatRecord{PUID: "fmt/2", Name: "Bare"})

	out, err := Render(set, Metadata{Version: "dev"})
	require.NoError(t, err)
	text := string(out)

	assert.NotContains(t, text, "version:")
	assert.NotContains(t, text, "mime:")
	assert.NotContains(t, text, "extensions:")
	assert.NotContains(t, text, "signatures:")
	assert.NotContains(t, text, "priority_over:")
}

func TestRoundTrip(t *testing.T) {
	set := sampleSet()
	out, err := Render(set, Metadata{Version: "dev"})
	require.NoError(t, err)

	got, err := Read(out)
	require.NoError(t, err)
	assert.Equal(t, set.Records(), got.Records())
}

func TestRead_RejectsInvalidYAML(t *testing.T) {
	_, err := Read([]byte("formats:\n  - puid: [broken"))
	assert.Error(t, err)
}

func TestRead_RejectsMissingPUID(t *testing.T) {
	_, err := Read([]byte("formats:\n  - name: No Identifier\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no puid")
}

func TestFingerprint_EnumerationOrderIndependent(t *testing.T) {
	a := Fingerprint(map[string]string{"fmt/1": "aa", "fmt/2": "bb", "x-fmt/3": "cc"})
	b := Fingerprint(map[string]string{"x-fmt/3": "cc", "fmt/2": "bb", "fmt/1": "aa"})
	assert.Equal(t, a, b)
}

func TestFingerprint_SensitiveToContent(t *testing.T) {
	a := Fingerprint(map[string]string{"fmt/1": "aa"})
	b := Fingerprint(map[string]string{"fmt/1": "ab"})
	assert.NotEqual(t, a, b)
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.yaml")

	require.NoError(t, WriteAtomic(target, []byte("first\n")))
	require.NoError(t, WriteAtomic(target, []byte("second\n")))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))

	// No temporary files survive a successful write.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.yaml", entries[0].Name())
}

func TestWriteAtomic_MissingDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nope", "out.yaml")
	err := WriteAtomic(target, []byte("data"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, simplesig.ErrOutputWrite))
}
