package builtins

import (
	"fmt"

	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/merr"
	"github.com/cwbudde/go-mal/internal/printer"
	"github.com/cwbudde/go-mal/internal/reader"
	"github.com/cwbudde/go-mal/internal/values"
)

// registerStrings installs the printer/reader-facing builtins:
// pr-str/str/prn/println, read-string, substr, char-index.
func registerStrings(frame *env.Frame) {
	def1(frame, "pr-str", func(_ interface{}, args []values.Value) (values.Value, error) {
		return values.NewString(printer.JoinPrStr(args, " ", true)), nil
	})
	def1(frame, "str", func(_ interface{}, args []values.Value) (values.Value, error) {
		return values.NewString(printer.JoinPrStr(args, "", false)), nil
	})
	def1(frame, "prn", func(_ interface{}, args []values.Value) (values.Value, error) {
		fmt.Println(printer.JoinPrStr(args, " ", true))
		return values.Nil, nil
	})
	def1(frame, "println", func(_ interface{}, args []values.Value) (values.Value, error) {
		fmt.Println(printer.JoinPrStr(args, " ", false))
		return values.Nil, nil
	})
	def1(frame, "read-string", builtinReadString)
	def1(frame, "substr", builtinSubstr)
	def1(frame, "char-index", builtinCharIndex)
}

func builtinReadString(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("read-string", args, 1); err != nil {
		return nil, err
	}
	s, ok := wantStrLike(args[0])
	if !ok {
		return nil, merr.New(merr.CategoryType, "read-string: expected a string")
	}
	v, err := reader.ReadStr(s, nil)
	if err != nil {
		return nil, merr.New(merr.CategorySyntax, "%s", err.Error())
	}
	return v, nil
}

func builtinSubstr(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("substr", args, 3); err != nil {
		return nil, err
	}
	s, ok := wantStrLike(args[0])
	if !ok {
		return nil, merr.New(merr.CategoryType, "substr: expected a string")
	}
	start, err := wantInt(args[1])
	if err != nil {
		return nil, err
	}
	length, err := wantInt(args[2])
	if err != nil {
		return nil, err
	}
	if start < 0 || length < 0 || int(start+length) > len(s) {
		return nil, merr.New(merr.CategoryRuntime, "substr: out of bounds")
	}
	return values.NewString(s[start : start+length]), nil
}

func builtinCharIndex(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("char-index", args, 1); err != nil {
		return nil, err
	}
	n, err := wantInt(args[0])
	if err != nil {
		return nil, err
	}
	if n < 0 || n > 255 {
		return nil, merr.New(merr.CategoryRuntime, "char-index: out of range 0..255")
	}
	return values.NewString(string([]byte{byte(n)})), nil
}
