package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatherAllMidiPaths(t *testing.T) {
	dir := t.TempDir()
	assert := assert.New(t)
	assert.NoError(os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	for _, name := range []string{"a.mid", "b.MIDI", "nested/c.mid", "readme.txt"} {
		assert.NoError(os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	paths, err := GatherAllMidiPaths(dir, 0)
	assert.NoError(err)
	assert.Equal([]string{
		filepath.Join(dir, "a.mid"),
		filepath.Join(dir, "b.MIDI"),
		filepath.Join(dir, "nested", "c.mid"),
	}, paths)

	paths, err = GatherAllMidiPaths(dir, 2)
	assert.NoError(err)
	assert.Len(paths, 2)

	_, err = GatherAllMidiPaths(filepath.Join(dir, "nope"), 0)
	assert.Error(err)
}

func TestGetKeys(t *testing.T) {
	assert.Equal(t, []string{"C", "F", "G"}, GetKeys(map[string]int{"G": 1, "C": 2, "F": 3}))
}

func TestMinAndSum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Min(3, 5))
	assert.Equal(uint8(2), Min(uint8(9), uint8(2)))
	assert.Equal(uint64(600), Sum([]uint8{200, 200, 200}))
	assert.Equal(uint64(0), Sum([]int{}))
}
