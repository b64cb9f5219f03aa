package domain

import (
	"sort"

	"go.trai.ch/zerr"
)

// Command is a single subprocess invocation template inside a step. Argv and
// Tail entries may reference override variables as ${NAME}.
type Command struct {
	Argv     []string
	UseFlags bool     // insert the step's composed FlagSet after Argv
	Tail     []string // appended after the flags, e.g. a "--" passthrough
}

// Step is one sequentially-executed unit of a task's action. A step with more
// than one command is a pipeline: stdout of each stage feeds the next stage's
// stdin, and a failure of any stage fails the step.
type Step struct {
	Kind     Kind
	Pipeline []Command
}

// TaskDefinition names an ordered action sequence. The description is used
// only for documentation; tasks without one are hidden from the catalog but
// remain invocable as building blocks for composite tasks.
type TaskDefinition struct {
	Name        string
	Description string
	Steps       []Step
}

// Invocation is a fully-expanded subprocess pipeline ready for execution,
// one argv per stage.
type Invocation struct {
	Stages [][]string
}

// TaskTable is the immutable name-to-definition mapping built once at
// process start.
type TaskTable struct {
	defs map[string]TaskDefinition
}

// NewTaskTable builds a table from the given definitions. Names must be
// unique and non-empty, and every step must carry at least one command.
func NewTaskTable(defs ...TaskDefinition) (*TaskTable, error) {
	table := &TaskTable{defs: make(map[string]TaskDefinition, len(defs))}
	for _, def := range defs {
		if def.Name == "" {
			return nil, ErrEmptyTaskName
		}
		if _, exists := table.defs[def.Name]; exists {
			return nil, zerr.With(ErrTaskAlreadyExists, "task", def.Name)
		}
		for _, step := range def.Steps {
			if len(step.Pipeline) == 0 {
				return nil, zerr.With(ErrEmptyStep, "task", def.Name)
			}
		}
		table.defs[def.Name] = def
	}
	return table, nil
}

// Lookup returns the definition for an exact task name.
func (t *TaskTable) Lookup(name string) (TaskDefinition, bool) {
	def, ok := t.defs[name]
	return def, ok
}

// Definitions returns every definition, hidden ones included, sorted by name.
func (t *TaskTable) Definitions() []TaskDefinition {
	defs := make([]TaskDefinition, 0, len(t.defs))
	for _, def := range t.defs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}
