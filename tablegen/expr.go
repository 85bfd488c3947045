package tablegen

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ExprTable fills a table by evaluating a Starlark expression once per
// index in [begin, end). The expression sees the index as "i" plus any
// caller-supplied defines, and must yield an integer. This serves decoder
// tables that are specified as data rather than code.
// Panics if end < begin; an expression failure is returned, not fatal.
func ExprTable(begin, end int64, expr string, defines map[string]int64) (table []int64, err error) {
	if end < begin {
		panic(fmt.Sprintf("tablegen: inverted range [%v, %v)", begin, end))
	}

	opts := &syntax.FileOptions{}
	thread := &starlark.Thread{Name: "tablegen"}

	pred := starlark.StringDict{}
	for key, value := range defines {
		pred[key] = starlark.MakeInt64(value)
	}

	table = make([]int64, 0, end-begin)
	for i := begin; i < end; i++ {
		pred["i"] = starlark.MakeInt64(i)

		var parsed syntax.Expr
		parsed, err = opts.ParseExpr("expr", expr, 0)
		if err != nil {
			table = nil
			return
		}

		var value starlark.Value
		value, err = starlark.EvalExprOptions(opts, thread, parsed, pred)
		if err != nil {
			table = nil
			return
		}

		st_int, ok := value.(starlark.Int)
		if !ok {
			table = nil
			err = ErrExprNotInt(expr)
			return
		}
		st_int64, ok := st_int.Int64()
		if !ok {
			table = nil
			err = ErrExprNotInt(expr)
			return
		}

		table = append(table, st_int64)
	}

	return
}
