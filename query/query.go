// Package query evaluates expressions against a document. Expressions are
// compiled with expr-lang/expr and run with the document's fields as the
// environment, plus a get(path) helper for printf-free path access.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"

	dataio "github.com/dataio-format/go-dataio"
	"github.com/dataio-format/go-dataio/debug"
	"github.com/dataio-format/go-dataio/tree"
)

// Eval compiles src and runs it against the document. Top-level object
// fields are visible as variables; get("a.b.2") resolves a dotted path and
// returns nil when absent.
func Eval(d *dataio.Data, src string) (any, error) {
	env := envOf(d)
	program, err := expr.Compile(src, exprOpts(d, env)...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", src, err)
	}
	if debug.Query() {
		debug.Logf("query: %q -> %s\n", src, debug.JSON(out))
	}
	return out, nil
}

func envOf(d *dataio.Data) map[string]any {
	root := tree.ToAny(d.Root())
	env, ok := root.(map[string]any)
	if !ok {
		env = map[string]any{"value": root}
	}
	return env
}

func exprOpts(d *dataio.Data, env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.Function("get", func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("get takes one path argument")
			}
			path, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("get takes a string path, got %T", params[0])
			}
			sub, ok := d.SubData(path)
			if !ok {
				return nil, nil
			}
			return tree.ToAny(sub.Root()), nil
		}),
		expr.Function("has", func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("has takes one path argument")
			}
			path, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("has takes a string path, got %T", params[0])
			}
			return d.Has(path), nil
		}),
	}
}
