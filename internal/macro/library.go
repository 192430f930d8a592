// Package macro manages named dice: short names bound to notation strings,
// stored in a yaml library file.
package macro

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileName is the library file searched for in each directory.
const FileName = "macros.yaml"

type libraryFile struct {
	Dice map[string]string `yaml:"dice"`
}

// Library holds the named dice loaded from the first library file found in
// the directory fallback hierarchy. Saves always target the first directory.
// Safe for concurrent use; the shell and a chat bot may share one library.
type Library struct {
	dirs []string

	mu   sync.RWMutex
	dice map[string]string
}

// NewLibrary initializes a library with the given directory fallback
// hierarchy and a single built-in die.
func NewLibrary(dirs []string) *Library {
	return &Library{
		dirs: dirs,
		dice: map[string]string{
			"default": "3x 3d20 *2 +1 s2",
		},
	}
}

// Load reads the first macros.yaml found in the directories sequentially.
// A library with no file on disk keeps its built-in entries.
func (l *Library) Load() error {
	for _, dir := range l.dirs {
		path := filepath.Join(dir, FileName)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()

		var file libraryFile
		if err := yaml.NewDecoder(f).Decode(&file); err != nil {
			return fmt.Errorf("failed to decode macro library %s: %w", path, err)
		}
		l.mu.Lock()
		for name, roll := range file.Dice {
			l.dice[name] = roll
		}
		l.mu.Unlock()
		return nil
	}
	return nil
}

// Get returns the notation bound to name.
func (l *Library) Get(name string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	roll, ok := l.dice[name]
	return roll, ok
}

// Names lists every bound name in sorted order.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.dice))
	for name := range l.dice {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set binds a notation to a name, replacing any previous binding.
func (l *Library) Set(name, roll string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dice[name] = roll
}

// Delete removes a binding, reporting whether it existed.
func (l *Library) Delete(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.dice[name]
	delete(l.dice, name)
	return ok
}

// Save writes the library to the first directory in the hierarchy.
func (l *Library) Save() error {
	if len(l.dirs) == 0 {
		return fmt.Errorf("macro library has no directory to save to")
	}

	if err := os.MkdirAll(l.dirs[0], 0755); err != nil {
		return fmt.Errorf("failed to create macro directory: %w", err)
	}

	path := filepath.Join(l.dirs[0], FileName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create macro library %s: %w", path, err)
	}
	defer f.Close()

	l.mu.RLock()
	dice := make(map[string]string, len(l.dice))
	for name, roll := range l.dice {
		dice[name] = roll
	}
	l.mu.RUnlock()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	if err := encoder.Encode(libraryFile{Dice: dice}); err != nil {
		return fmt.Errorf("failed to encode macro library: %w", err)
	}
	return nil
}
