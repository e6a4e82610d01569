package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTrimsAndSkipsBlankLines(t *testing.T) {
	path := writeBank(t, "apple\n\n  house  \n\ncar\n")

	b, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []string{"apple", "house", "car"}, b.list)
}

func TestLoadEmptyFileErrors(t *testing.T) {
	path := writeBank(t, "\n \n\t\n")

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestPickReturnsMemberOfList(t *testing.T) {
	b := New([]string{"apple", "house"})

	for i := 0; i < 50; i++ {
		assert.Contains(t, []string{"apple", "house"}, b.Pick())
	}
}

func TestPickOnEmptyBankIsEmptyString(t *testing.T) {
	assert.Equal(t, "", New(nil).Pick())
}

func TestDefaultBank(t *testing.T) {
	b := Default()
	assert.Equal(t, 5, b.Len())
	assert.Contains(t, b.list, "pizza")
}
