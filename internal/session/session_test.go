package session

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alidiusk/DiCast/internal/history"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()

	dir := t.TempDir()
	store, err := history.NewStore(filepath.Join(dir, "rolls.jsonl"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	s, err := NewSession([]string{dir}, store)
	if err != nil {
		t.Fatalf("failed to bootstrap session: %v", err)
	}
	return s
}

func TestSessionRoll(t *testing.T) {
	s := newTestSession(t)

	lines, err := s.Execute("roll 2d6+1")
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "2d6+1 = "))
}

func TestSessionRollDeterministicAfterSeed(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Execute("seed 42")
	assert.NoError(t, err)
	first, err := s.Execute("roll 3x 4d6 s1")
	assert.NoError(t, err)

	_, err = s.Execute("seed 42")
	assert.NoError(t, err)
	second, err := s.Execute("roll 3x 4d6 s1")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSessionSaveListRollDelete(t *testing.T) {
	s := newTestSession(t)

	lines, err := s.Execute("save stats 6x 4d6 s1")
	assert.NoError(t, err)
	assert.Equal(t, "Saved stats = 6x 4d6 s1", lines[0])

	lines, err = s.Execute("list")
	assert.NoError(t, err)
	assert.Contains(t, strings.Join(lines, "\n"), "stats = 6x 4d6 s1")

	lines, err = s.Execute("roll stats")
	assert.NoError(t, err)
	// Six ability scores come back.
	assert.Len(t, strings.Split(strings.TrimPrefix(lines[0], "stats = "), ", "), 6)

	_, err = s.Execute("delete stats")
	assert.NoError(t, err)

	_, err = s.Execute("roll stats")
	assert.Error(t, err)
}

func TestSessionSaveRejectsInvalidNotation(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Execute("save broken 4d6+1*2")
	assert.Error(t, err)
}

func TestSessionCheck(t *testing.T) {
	s := newTestSession(t)

	lines, err := s.Execute(`check "roll('1d20') >= 1"`)
	assert.NoError(t, err)
	assert.Equal(t, "check roll('1d20') >= 1 => true", lines[0])
}

func TestSessionHistory(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Execute("roll 1d6")
	assert.NoError(t, err)
	_, err = s.Execute("roll 2d20+2")
	assert.NoError(t, err)

	lines, err := s.Execute("history 1")
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "2d20+2 = "))
}

func TestSessionLimits(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Execute("roll 100000d6")
	assert.Error(t, err)

	_, err = s.Execute("roll 10000x1d6")
	assert.Error(t, err)

	_, err = s.Execute("roll 2d9223372036854775807")
	assert.Error(t, err)
}

func TestSessionConcurrentExecute(t *testing.T) {
	s := newTestSession(t)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				if i%2 == 0 {
					_, err := s.Execute("roll default")
					assert.NoError(t, err)
				} else {
					_, err := s.Execute("save default 2d8+3")
					assert.NoError(t, err)
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestSessionGuidanceOnBadInput(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Execute("roll")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "roll <notation|name>")
}

func TestSessionHelp(t *testing.T) {
	s := newTestSession(t)

	lines, err := s.Execute("help")
	assert.NoError(t, err)
	assert.NotEmpty(t, lines)
}
