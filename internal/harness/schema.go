package harness

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var scenarioSchema string

// ValidateScenario checks s against the embedded CUE schema and then the
// cross-field rules. LoadScenario calls it; scenarios built in code should
// call it before Run.
func ValidateScenario(s *Scenario) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(scenarioSchema, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile scenario schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Scenario"))

	v := ctx.Encode(s.toSchemaMap())
	if err := v.Err(); err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}
	if err := def.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	return validateScenario(s)
}

// toSchemaMap converts s to the shape of the schema, leaving out unset
// optional fields so they are not unified as null.
func (s *Scenario) toSchemaMap() map[string]any {
	m := map[string]any{
		"name": s.Name,
		"config": map[string]any{
			"width":  s.Config.Width,
			"height": s.Config.Height,
			"mines":  s.Config.Mines,
		},
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if len(s.Mines) > 0 {
		mines := make([]any, len(s.Mines))
		for i, pos := range s.Mines {
			cell := make([]any, len(pos))
			for j, v := range pos {
				cell[j] = v
			}
			mines[i] = cell
		}
		m["mines"] = mines
	}
	if s.Seed != nil {
		m["seed"] = *s.Seed
	}
	if s.StartError != "" {
		m["start_error"] = s.StartError
	}
	if len(s.Moves) > 0 {
		moves := make([]any, len(s.Moves))
		for i, step := range s.Moves {
			mv := map[string]any{
				"x":      step.X,
				"y":      step.Y,
				"action": step.Action,
			}
			if step.Expect != nil {
				mv["expect"] = step.Expect.toSchemaMap()
			}
			moves[i] = mv
		}
		m["moves"] = moves
	}
	if s.Final != nil {
		m["final"] = s.Final.toSchemaMap()
	}
	return m
}

func (e *Expect) toSchemaMap() map[string]any {
	m := map[string]any{}
	if e.Error != "" {
		m["error"] = e.Error
	}
	if e.Outcome != "" {
		m["outcome"] = e.Outcome
	}
	if e.Status != "" {
		m["status"] = e.Status
	}
	if e.Revealed != nil {
		m["revealed"] = *e.Revealed
	}
	if e.Flags != nil {
		m["flags"] = *e.Flags
	}
	return m
}

func (f *FinalState) toSchemaMap() map[string]any {
	m := map[string]any{}
	if f.Status != "" {
		m["status"] = f.Status
	}
	if f.Revealed != nil {
		m["revealed"] = *f.Revealed
	}
	if f.Flags != nil {
		m["flags"] = *f.Flags
	}
	if len(f.Board) > 0 {
		rows := make([]any, len(f.Board))
		for i, row := range f.Board {
			rows[i] = row
		}
		m["board"] = rows
	}
	return m
}
