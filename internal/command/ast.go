package command

import "strings"

// Command represents a top-level action inputted into the interactive shell
type Command struct {
	Roll    *RollCmd    `parser:"( @@"`
	Save    *SaveCmd    `parser:"| @@"`
	List    *ListCmd    `parser:"| @@"`
	Delete  *DeleteCmd  `parser:"| @@"`
	Check   *CheckCmd   `parser:"| @@"`
	History *HistoryCmd `parser:"| @@"`
	Seed    *SeedCmd    `parser:"| @@"`
	Help    *HelpCmd    `parser:"| @@ )"`
}

// RollCmd evaluates dice notation, or a saved die when the target does not
// parse as notation. Chunks like "s2" lex as Ident, so both token kinds are
// collected and rejoined.
type RollCmd struct {
	Keyword string   `parser:"@'roll'"`
	Parts   []string `parser:"( @Notation | @Ident )+"`
}

// Target joins the lexed chunks back into one string. The notation grammar
// ignores whitespace, so chunk boundaries do not matter.
func (r *RollCmd) Target() string {
	return strings.Join(r.Parts, " ")
}

// SaveCmd binds a name to a notation in the macro library
type SaveCmd struct {
	Keyword string   `parser:"@'save'"`
	Name    string   `parser:"@Ident"`
	Parts   []string `parser:"( @Notation | @Ident )+"`
}

// Notation joins the lexed notation chunks back into one string.
func (s *SaveCmd) Notation() string {
	return strings.Join(s.Parts, " ")
}

// ListCmd prints every saved die
type ListCmd struct {
	Keyword string `parser:"@'list'"`
}

// DeleteCmd removes a saved die
type DeleteCmd struct {
	Keyword string `parser:"@'delete'"`
	Name    string `parser:"@Ident"`
}

// CheckCmd evaluates a quoted CEL success condition, e.g.
// check "roll('1d20') + 5 >= 15"
type CheckCmd struct {
	Keyword string `parser:"@'check'"`
	Expr    string `parser:"@String"`
}

// HistoryCmd prints the most recent rolls from the log
type HistoryCmd struct {
	Keyword string `parser:"@'history'"`
	Count   string `parser:"@Notation?"`
}

// SeedCmd reseeds the session's randomness source for reproducible sequences
type SeedCmd struct {
	Keyword string `parser:"@'seed'"`
	Value   string `parser:"@Notation"`
}

// HelpCmd prints command usage
type HelpCmd struct {
	Keyword string `parser:"@'help'"`
}
