package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestControllerLifecycle(t *testing.T) {
	c := NewController()
	assert := assert.New(t)

	assert.False(c.Append("C4"))
	assert.False(c.Running())

	id, ok := c.Start()
	assert.True(ok)
	assert.NotEqual(uuid.Nil, id)
	assert.Equal(id, c.ID())

	again, ok := c.Start()
	assert.False(ok)
	assert.Equal(id, again)

	assert.True(c.Append("C4"))
	assert.True(c.Append("E4"))
	ended, notes, ok := c.End()
	assert.True(ok)
	assert.Equal(id, ended)
	assert.Equal([]string{"C4", "E4"}, notes)

	_, _, ok = c.End()
	assert.False(ok)

	next, _ := c.Start()
	assert.NotEqual(id, next)
	assert.Empty(c.TakeAndReset())
}

func TestTakeAndResetEmptiesBuffer(t *testing.T) {
	c := NewController()
	c.Start()
	c.Append("C4")

	assert := assert.New(t)
	assert.Equal([]string{"C4"}, c.TakeAndReset())
	assert.Empty(c.TakeAndReset())
	assert.True(c.Running())
}

func TestControllerConcurrentAppends(t *testing.T) {
	c := NewController()
	c.Start()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Append(fmt.Sprintf("%v-%v", i, j))
			}
		}(i)
	}
	wg.Wait()

	_, notes, ok := c.End()
	assert.True(t, ok)
	assert.Len(t, notes, 800)
}

func TestDedupe(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C4", "E4", "G4"}, Dedupe([]string{"C4", "E4", "C4", "G4", "E4"}))
	assert.Empty(Dedupe(nil))
}

func TestRecorder(t *testing.T) {
	c := NewController()
	r := Recorder{Controller: c, PreferFlats: true}

	r.NoteOn(61)
	c.Start()
	r.NoteOn(61)
	r.NoteOff(61)
	r.NoteOn(70)

	assert.Equal(t, []string{"Db4", "Bb4"}, c.TakeAndReset())
}
