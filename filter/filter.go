// Package filter provides client-side expression filtering of Pexels
// search results using the expr language.
//
// Expressions see the current item under Photo or Video plus a set of
// string helpers, e.g.:
//
//	contains(Photo.Photographer, "berger") and Photo.Width > 3000
//	Video.Duration < 30 and Video.Width >= 1920
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/pexplore/pexels"
)

// Filter is a compiled filter expression. The zero expression matches
// everything. A Filter is immutable and safe for concurrent use.
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a filter expression. An empty expression yields a
// match-all filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return &Filter{}, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(helperEnv()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, &CompileError{Expression: expression, Err: err}
	}

	return &Filter{
		program: program,
		expr:    expression,
	}, nil
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expr
}

// MatchPhoto evaluates the filter against a photo
func (f *Filter) MatchPhoto(photo pexels.Photo) (bool, error) {
	if f.program == nil {
		return true, nil
	}

	env := helperEnv()
	env["Photo"] = photo
	return f.run(env)
}

// MatchVideo evaluates the filter against a video
func (f *Filter) MatchVideo(video pexels.Video) (bool, error) {
	if f.program == nil {
		return true, nil
	}

	env := helperEnv()
	env["Video"] = video
	return f.run(env)
}

func (f *Filter) run(env map[string]interface{}) (bool, error) {
	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvalError{Expression: f.expr, Err: err}
	}

	boolResult, ok := result.(bool)
	if !ok {
		return false, &EvalError{Expression: f.expr, Detail: "expression did not evaluate to a boolean"}
	}
	return boolResult, nil
}

// Photos returns the photos matching the filter, preserving order. The
// first evaluation error aborts the pass.
func (f *Filter) Photos(photos []pexels.Photo) ([]pexels.Photo, error) {
	if f.program == nil {
		return photos, nil
	}

	matched := make([]pexels.Photo, 0, len(photos))
	for _, photo := range photos {
		ok, err := f.MatchPhoto(photo)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, photo)
		}
	}
	return matched, nil
}

// Videos returns the videos matching the filter, preserving order. The
// first evaluation error aborts the pass.
func (f *Filter) Videos(videos []pexels.Video) ([]pexels.Video, error) {
	if f.program == nil {
		return videos, nil
	}

	matched := make([]pexels.Video, 0, len(videos))
	for _, video := range videos {
		ok, err := f.MatchVideo(video)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, video)
		}
	}
	return matched, nil
}

// helperEnv builds the set of helper functions available to expressions
func helperEnv() map[string]interface{} {
	return map[string]interface{}{
		// String helpers, all case-insensitive
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		// hasTag checks a video's tag list
		"hasTag": func(tags []string, tag string) bool {
			for _, t := range tags {
				if strings.EqualFold(t, tag) {
					return true
				}
			}
			return false
		},
	}
}
