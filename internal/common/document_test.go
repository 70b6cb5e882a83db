package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type document struct {
	Name  string   `json:"name"`
	Rooms int      `json:"total_rooms"`
	Tags  []string `json:"amenities"`
}

func TestDecodeDocument(t *testing.T) {
	t.Run("json document", func(t *testing.T) {
		data := []byte(`  {"name": "Harbour View", "total_rooms": 12, "amenities": ["WiFi"]}`)

		doc, err := DecodeDocument[document](data)
		require.NoError(t, err)
		assert.Equal(t, "Harbour View", doc.Name)
		assert.Equal(t, 12, doc.Rooms)
		assert.Equal(t, []string{"WiFi"}, doc.Tags)
	})

	t.Run("yaml document uses json tags", func(t *testing.T) {
		data := []byte("\nname: Harbour View\ntotal_rooms: 12\namenities:\n  - WiFi\n  - Pool\n")

		doc, err := DecodeDocument[document](data)
		require.NoError(t, err)
		assert.Equal(t, "Harbour View", doc.Name)
		assert.Equal(t, 12, doc.Rooms)
		assert.Equal(t, []string{"WiFi", "Pool"}, doc.Tags)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := DecodeDocument[document]([]byte("   \n"))
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := DecodeDocument[document]([]byte(`{"total_rooms": "many"}`))
		assert.Error(t, err)
	})
}

func TestBuildInfoShortCommit(t *testing.T) {
	assert.Equal(t, "", BuildInfo{Commit: "unknown"}.ShortCommit())
	assert.Equal(t, "abc123", BuildInfo{Commit: "abc123"}.ShortCommit())
	assert.Equal(t, "0123abcd", BuildInfo{Commit: "0123abcdef987654"}.ShortCommit())
}

func TestInstallationIDIsStable(t *testing.T) {
	assert.Equal(t, InstallationID(), InstallationID())
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "****", MaskToken("abcd"))
	assert.Equal(t, "eyJh****XYZ9", MaskToken("eyJhbGciOiJIUzI1NiXYZ9"))
	assert.True(t, ContainsInsensitive("Luxury Grand Hotel", "grand"))
	assert.False(t, ContainsInsensitive("Luxury Grand Hotel", "resort"))
}
