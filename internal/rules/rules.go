// Package rules evaluates success-condition expressions against dice rolls
// using CEL, e.g. "roll('1d20') + 5 >= dc".
package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/ext"
)

// RollFunc evaluates a dice notation (e.g., "1d20") and returns the total.
// It is injected to allow deterministic testing.
type RollFunc func(notation string) (int64, error)

// Evaluator wraps a CEL environment configured for check evaluation.
type Evaluator struct {
	env      *cel.Env
	rollFunc RollFunc
}

// NewEvaluator creates a CEL environment exposing the roll function and the
// check variables to every expression.
func NewEvaluator(rollFunc RollFunc) (*Evaluator, error) {
	if rollFunc == nil {
		return nil, fmt.Errorf("rules evaluator requires a roll function")
	}

	env, err := cel.NewEnv(
		ext.Strings(),
		ext.Lists(),

		// Variables available in all checks
		cel.Variable("rolls", cel.ListType(cel.IntType)),
		cel.Variable("total", cel.IntType),
		cel.Variable("dc", cel.IntType),

		cel.Function("roll",
			cel.Overload("roll_string",
				[]*cel.Type{cel.StringType},
				cel.IntType,
				cel.UnaryBinding(func(val ref.Val) ref.Val {
					notation := val.Value().(string)
					total, err := rollFunc(notation)
					if err != nil {
						return types.NewErr("roll(%q): %v", notation, err)
					}
					return types.Int(total)
				}),
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	return &Evaluator{env: env, rollFunc: rollFunc}, nil
}

// Check compiles and evaluates a CEL expression against the given context.
// The context is a map of variable name → value available in the expression;
// nil means no variables beyond the roll function.
func (ev *Evaluator) Check(expr string, ctx map[string]any) (any, error) {
	env, err := ev.extendEnvForContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("CEL env extension error: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("CEL compile error: %w", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("CEL program error: %w", err)
	}

	// Backfill into a copy so the caller's map stays untouched.
	activation := make(map[string]any, len(ctx)+len(predeclaredVars))
	for key, val := range ctx {
		activation[key] = val
	}

	// Missing predeclared variables still need bindings at eval time.
	for _, name := range []string{"rolls", "total", "dc"} {
		if _, ok := activation[name]; !ok {
			switch name {
			case "rolls":
				activation[name] = []int64{}
			default:
				activation[name] = int64(0)
			}
		}
	}

	out, _, err := prg.Eval(activation)
	if err != nil {
		return nil, fmt.Errorf("CEL eval error: %w", err)
	}

	return out.Value(), nil
}

// predeclaredVars is the set of variables declared in the base CEL environment.
var predeclaredVars = map[string]bool{
	"rolls": true, "total": true, "dc": true,
}

// extendEnvForContext creates a child CEL environment declaring any dynamic
// context variables absent from the base environment.
func (ev *Evaluator) extendEnvForContext(ctx map[string]any) (*cel.Env, error) {
	var opts []cel.EnvOption
	for key := range ctx {
		if predeclaredVars[key] {
			continue
		}
		opts = append(opts, cel.Variable(key, cel.DynType))
	}
	if len(opts) == 0 {
		return ev.env, nil
	}
	return ev.env.Extend(opts...)
}
