package command

import (
	"fmt"
	"strings"
)

// MapError takes a raw input and a participle error, and returns a human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand your command")
	}

	parts := strings.Fields(strings.ToLower(input))
	cmd := parts[0]

	switch cmd {
	case "roll":
		return fmt.Errorf("The command roll must be: roll <notation|name>, e.g. roll 3x4d6*5+1s2")
	case "save":
		return fmt.Errorf("The command save must be: save <name> <notation>")
	case "list":
		return fmt.Errorf("The command list takes no arguments")
	case "delete":
		return fmt.Errorf("The command delete must be: delete <name>")
	case "check":
		return fmt.Errorf(`The command check must be: check "<expression>", e.g. check "roll('1d20') + 5 >= 15"`)
	case "history":
		return fmt.Errorf("The command history must be: history [count]")
	case "seed":
		return fmt.Errorf("The command seed must be: seed <number>")
	}

	return fmt.Errorf("I wasn't able to understand your command")
}
