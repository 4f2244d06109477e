package builtins

import (
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/merr"
	"github.com/cwbudde/go-mal/internal/values"
)

// registerMaps installs the hash-map operations: hash-map
// construction, assoc/dissoc (producing lazy MapSpec overlays), get,
// contains?, keys, vals, map?.
func registerMaps(frame *env.Frame) {
	def1(frame, "hash-map", builtinHashMap)
	def1(frame, "assoc", builtinAssoc)
	def1(frame, "dissoc", builtinDissoc)
	def1(frame, "get", builtinGet)
	def1(frame, "contains?", builtinContains)
	def1(frame, "keys", builtinKeys)
	def1(frame, "vals", builtinVals)
	def1(frame, "map?", pred1(func(v values.Value) bool {
		return v.Kind() == values.KindMap || v.Kind() == values.KindMapSpec
	}))
}

func builtinHashMap(_ interface{}, args []values.Value) (values.Value, error) {
	if len(args)%2 != 0 {
		return nil, merr.New(merr.CategoryArity, "hash-map: expected an even number of arguments")
	}
	return values.NewMap(args...), nil
}

func builtinAssoc(_ interface{}, args []values.Value) (values.Value, error) {
	if len(args) < 1 || (len(args)-1)%2 != 0 {
		return nil, merr.New(merr.CategoryArity, "assoc: expected a map and an even number of key/value args")
	}
	result := args[0]
	for i := 1; i < len(args); i += 2 {
		result = values.Assoc(result, args[i], args[i+1])
	}
	return result, nil
}

func builtinDissoc(_ interface{}, args []values.Value) (values.Value, error) {
	if len(args) < 1 {
		return nil, merr.New(merr.CategoryArity, "dissoc: expected a map and zero or more keys")
	}
	result := args[0]
	for _, k := range args[1:] {
		result = values.Dissoc(result, k)
	}
	return result, nil
}

func builtinGet(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("get", args, 2); err != nil {
		return nil, err
	}
	tbl := values.AsMapTable(args[0])
	if tbl == nil {
		return values.Nil, nil
	}
	v, ok := tbl.Get(args[1])
	if !ok {
		return values.Nil, nil
	}
	return v, nil
}

func builtinContains(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("contains?", args, 2); err != nil {
		return nil, err
	}
	if tbl := values.AsMapTable(args[0]); tbl != nil {
		return values.Bool(tbl.Has(args[1])), nil
	}
	if s, ok := wantStrLike(args[0]); ok {
		if sub, ok := wantStrLike(args[1]); ok {
			return values.Bool(containsSubstr(s, sub)), nil
		}
	}
	return values.False, nil
}

func containsSubstr(s, sub string) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func builtinKeys(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("keys", args, 1); err != nil {
		return nil, err
	}
	tbl := values.AsMapTable(args[0])
	if tbl == nil {
		return values.EmptyList, nil
	}
	var out []values.Value
	tbl.Range(func(k, _ values.Value) { out = append(out, k) })
	return values.NewList(out...), nil
}

func builtinVals(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("vals", args, 1); err != nil {
		return nil, err
	}
	tbl := values.AsMapTable(args[0])
	if tbl == nil {
		return values.EmptyList, nil
	}
	var out []values.Value
	tbl.Range(func(_, v values.Value) { out = append(out, v) })
	return values.NewList(out...), nil
}
