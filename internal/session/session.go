// Package session coordinates the interactive command loop: parsing shell
// commands, rolling dice, and persisting results.
package session

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alecthomas/participle/v2"

	"github.com/alidiusk/DiCast/internal/command"
	"github.com/alidiusk/DiCast/internal/dice"
	"github.com/alidiusk/DiCast/internal/history"
	"github.com/alidiusk/DiCast/internal/macro"
	"github.com/alidiusk/DiCast/internal/notation"
	"github.com/alidiusk/DiCast/internal/rules"
)

// Store defines the dependency required by Session to persist rolls
type Store interface {
	Append(rec history.Record) error
	Tail(n int) ([]history.Record, error)
	Close() error
}

// Limits caps the work a single command may request. The dice core does not
// bound its inputs, so every surface fed by untrusted text has to.
type Limits struct {
	MaxCount int64
	MaxTimes int64
	MaxSides int64
}

// DefaultLimits is plenty for tabletop use.
var DefaultLimits = Limits{MaxCount: 1000, MaxTimes: 100, MaxSides: 1_000_000}

// Check rejects a parsed roll that would exceed the caps. Drop needs no cap
// of its own: the spec clamps it to the dice count at construction.
func (l Limits) Check(times int64, spec dice.Spec) error {
	if l.MaxCount > 0 && spec.Count > l.MaxCount {
		return fmt.Errorf("refusing to roll %d dice at once (limit %d)", spec.Count, l.MaxCount)
	}
	if l.MaxTimes > 0 && times > l.MaxTimes {
		return fmt.Errorf("refusing to repeat a roll %d times (limit %d)", times, l.MaxTimes)
	}
	if l.MaxSides > 0 {
		if _, sides := spec.Range.Uniform().Bounds(); sides > l.MaxSides {
			return fmt.Errorf("refusing to roll dice with %d sides (limit %d)", sides, l.MaxSides)
		}
	}
	return nil
}

// Session manages the cohesive loop of taking commands, rolling dice,
// evaluating checks, and appending results to the roll log. Execute, Roll
// and Reseed serialize on an internal mutex: the shell and a chat bot may
// drive one session from different goroutines, and the roller's generator
// must never be sampled concurrently.
type Session struct {
	mu     sync.Mutex
	roller *dice.Roller
	macros *macro.Library
	store  Store
	rules  *rules.Evaluator
	parser *participle.Parser[command.Command]
	limits Limits
}

// NewSession bootstraps a command pipeline relying on an injected store.
// The store may be nil when the caller does not want a roll log.
func NewSession(macroDirs []string, store Store) (*Session, error) {
	seed, err := dice.NewSeed()
	if err != nil {
		return nil, fmt.Errorf("failed to seed roller: %w", err)
	}

	macros := macro.NewLibrary(macroDirs)
	if err := macros.Load(); err != nil {
		return nil, fmt.Errorf("failed to load macro library: %w", err)
	}

	s := &Session{
		roller: dice.NewSeededRoller(seed),
		macros: macros,
		store:  store,
		parser: command.Build(),
		limits: DefaultLimits,
	}

	evaluator, err := rules.NewEvaluator(s.rollTotal)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize check evaluator: %w", err)
	}
	s.rules = evaluator

	return s, nil
}

// Macros returns the session's macro library, for autocomplete surfaces.
func (s *Session) Macros() *macro.Library {
	return s.macros
}

// Execute takes a raw command string from a UI client, coordinates execution,
// and returns the printable result lines
func (s *Session) Execute(input string) ([]string, error) {
	cmd, err := s.parser.ParseString("", input)
	if err != nil {
		return nil, command.MapError(input, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case cmd.Roll != nil:
		return s.executeRoll(cmd.Roll)
	case cmd.Save != nil:
		return s.executeSave(cmd.Save)
	case cmd.List != nil:
		return s.executeList()
	case cmd.Delete != nil:
		return s.executeDelete(cmd.Delete)
	case cmd.Check != nil:
		return s.executeCheck(cmd.Check)
	case cmd.History != nil:
		return s.executeHistory(cmd.History)
	case cmd.Seed != nil:
		return s.executeSeed(cmd.Seed)
	case cmd.Help != nil:
		return helpLines(), nil
	}

	return nil, fmt.Errorf("unsupported command pattern")
}

// Roll parses a notation (resolving macro names) and evaluates it, returning
// one total per repetition. Shared by the shell and the Telegram bot.
func (s *Session) Roll(target string) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roll(target)
}

func (s *Session) roll(target string) ([]int64, error) {
	times, spec, resolved, err := s.resolve(target)
	if err != nil {
		return nil, err
	}
	if err := s.limits.Check(times, spec); err != nil {
		return nil, err
	}

	rolls := s.roller.RollTimes(spec, times)

	if s.store != nil {
		rec := history.Record{When: time.Now().UTC(), Notation: resolved, Rolls: rolls}
		if err := s.store.Append(rec); err != nil {
			return nil, fmt.Errorf("failed to persist roll log: %w", err)
		}
	}

	return rolls, nil
}

// Reseed replaces the roller with a deterministic one.
func (s *Session) Reseed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reseed(seed)
}

func (s *Session) reseed(seed int64) {
	s.roller = dice.NewSeededRoller(seed)
}

// Close releases the roll log.
func (s *Session) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// resolve turns a roll target into a parsed spec. A target that is not valid
// notation is tried as a macro name before giving up.
func (s *Session) resolve(target string) (int64, dice.Spec, string, error) {
	times, spec, err := notation.Parse(target)
	if err == nil {
		return times, spec, target, nil
	}

	if bound, ok := s.macros.Get(strings.TrimSpace(target)); ok {
		times, spec, macroErr := notation.Parse(bound)
		if macroErr != nil {
			return 0, dice.Spec{}, "", fmt.Errorf("macro %q holds invalid notation %q: %w", target, bound, macroErr)
		}
		return times, spec, bound, nil
	}

	return 0, dice.Spec{}, "", err
}

// rollTotal backs the CEL roll() function with a single evaluation.
func (s *Session) rollTotal(target string) (int64, error) {
	times, spec, _, err := s.resolve(target)
	if err != nil {
		return 0, err
	}
	if err := s.limits.Check(times, spec); err != nil {
		return 0, err
	}
	return s.roller.Roll(spec), nil
}

func (s *Session) executeRoll(cmd *command.RollCmd) ([]string, error) {
	target := cmd.Target()
	rolls, err := s.roll(target)
	if err != nil {
		return nil, err
	}
	return []string{formatRolls(target, rolls)}, nil
}

func (s *Session) executeSave(cmd *command.SaveCmd) ([]string, error) {
	roll := cmd.Notation()
	if _, _, err := notation.Parse(roll); err != nil {
		return nil, fmt.Errorf("refusing to save invalid notation %q: %w", roll, err)
	}

	s.macros.Set(cmd.Name, roll)
	if err := s.macros.Save(); err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("Saved %s = %s", cmd.Name, roll)}, nil
}

func (s *Session) executeList() ([]string, error) {
	var lines []string
	for _, name := range s.macros.Names() {
		roll, _ := s.macros.Get(name)
		lines = append(lines, fmt.Sprintf("%s = %s", name, roll))
	}
	if len(lines) == 0 {
		lines = []string{"No saved dice."}
	}
	return lines, nil
}

func (s *Session) executeDelete(cmd *command.DeleteCmd) ([]string, error) {
	if !s.macros.Delete(cmd.Name) {
		return nil, fmt.Errorf("no saved die named %q", cmd.Name)
	}
	if err := s.macros.Save(); err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("Deleted %s", cmd.Name)}, nil
}

func (s *Session) executeCheck(cmd *command.CheckCmd) ([]string, error) {
	out, err := s.rules.Check(cmd.Expr, nil)
	if err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("check %s => %v", cmd.Expr, out)}, nil
}

func (s *Session) executeHistory(cmd *command.HistoryCmd) ([]string, error) {
	if s.store == nil {
		return []string{"No roll log configured."}, nil
	}

	count := 10
	if cmd.Count != "" {
		parsed, err := strconv.Atoi(cmd.Count)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("history count must be a positive number, got %q", cmd.Count)
		}
		count = parsed
	}

	records, err := s.store.Tail(count)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []string{"No rolls yet."}, nil
	}

	var lines []string
	for _, rec := range records {
		lines = append(lines, formatRolls(rec.Notation, rec.Rolls))
	}
	return lines, nil
}

func (s *Session) executeSeed(cmd *command.SeedCmd) ([]string, error) {
	seed, err := strconv.ParseInt(cmd.Value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("seed must be a number, got %q", cmd.Value)
	}
	s.reseed(seed)
	return []string{fmt.Sprintf("Reseeded with %d", seed)}, nil
}

func formatRolls(target string, rolls []int64) string {
	parts := make([]string, len(rolls))
	for i, roll := range rolls {
		parts[i] = strconv.FormatInt(roll, 10)
	}
	return fmt.Sprintf("%s = %s", target, strings.Join(parts, ", "))
}

func helpLines() []string {
	return []string{
		"roll <notation|name>   evaluate dice notation, e.g. roll 3x4d6*5+1s2",
		"save <name> <notation> bind a name to a notation",
		"list                   show saved dice",
		"delete <name>          remove a saved die",
		`check "<expr>"         evaluate a condition, e.g. check "roll('1d20') >= 15"`,
		"history [n]            show the last n rolls",
		"seed <number>          reseed the dice roller",
		"help                   this text",
	}
}
