package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

var varPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ExpandSteps resolves ${NAME} references in every command of every step
// against the expansion variables. A reference to a variable that is neither
// recognized nor defaulted is a configuration-authoring error, reported for
// the whole task before anything is spawned.
func ExpandSteps(def TaskDefinition, vars map[string]string) ([]Step, error) {
	expanded := make([]Step, len(def.Steps))
	for i, step := range def.Steps {
		out := Step{Kind: step.Kind, Pipeline: make([]Command, len(step.Pipeline))}
		for j, cmd := range step.Pipeline {
			argv, err := expandTokens(cmd.Argv, vars)
			if err != nil {
				return nil, zerr.With(zerr.With(err, "task", def.Name), "step", i+1)
			}
			tail, err := expandTokens(cmd.Tail, vars)
			if err != nil {
				return nil, zerr.With(zerr.With(err, "task", def.Name), "step", i+1)
			}
			out.Pipeline[j] = Command{Argv: argv, UseFlags: cmd.UseFlags, Tail: tail}
		}
		expanded[i] = out
	}
	return expanded, nil
}

func expandTokens(tokens []string, vars map[string]string) ([]string, error) {
	if tokens == nil {
		return nil, nil
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		expanded, err := expandToken(tok, vars)
		if err != nil {
			return nil, err
		}
		out[i] = expanded
	}
	return out, nil
}

func expandToken(tok string, vars map[string]string) (string, error) {
	var undefined string
	expanded := varPattern.ReplaceAllStringFunc(tok, func(ref string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(ref, "${"), "}")
		value, ok := vars[name]
		if !ok && undefined == "" {
			undefined = name
		}
		return value
	})
	if undefined != "" {
		return "", zerr.With(ErrUndefinedOverride, "variable", undefined)
	}
	return expanded, nil
}
