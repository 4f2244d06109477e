// Package printer renders runtime values back to text, in two modes:
// readable (escaped strings, used by pr-str/prn) and raw (unescaped,
// used by str/println). The mode is carried on a single scoped flag
// per top-level call and does not reset across nested sub-values.
package printer

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-mal/internal/values"
)

// PrStr renders v in readable mode: strings are escaped and quoted.
func PrStr(v values.Value) string {
	var sb strings.Builder
	write(&sb, v, true)
	return sb.String()
}

// Str renders v in raw mode: strings are emitted verbatim.
func Str(v values.Value) string {
	var sb strings.Builder
	write(&sb, v, false)
	return sb.String()
}

// JoinPrStr renders each value in readable or raw mode and joins the
// results with sep — the shape `(str …)`/`(pr-str …)` use for
// variadic arguments.
func JoinPrStr(vs []values.Value, sep string, readable bool) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		var sb strings.Builder
		write(&sb, v, readable)
		parts[i] = sb.String()
	}
	return strings.Join(parts, sep)
}

func write(sb *strings.Builder, v values.Value, readable bool) {
	switch v.Kind() {
	case values.KindNil:
		sb.WriteString("nil")
	case values.KindTrue:
		sb.WriteString("true")
	case values.KindFalse:
		sb.WriteString("false")
	case values.KindInt:
		sb.WriteString(strconv.FormatInt(v.(values.Int).Value, 10))
	case values.KindSymbol:
		sb.WriteString(v.(values.Str).Text())
	case values.KindKeyword:
		sb.WriteByte(':')
		sb.WriteString(v.(values.Str).Text())
	case values.KindString:
		writeString(sb, v.(values.Str).Text(), readable)
	case values.KindList:
		writeSeq(sb, v.(values.List), "(", ")", readable)
	case values.KindVector:
		writeSeq(sb, v.(values.List), "[", "]", readable)
	case values.KindMap, values.KindMapSpec:
		writeMap(sb, v, readable)
	case values.KindBuiltin:
		sb.WriteString("<builtin-function>")
	case values.KindFunction:
		sb.WriteString("<function>")
	case values.KindAtom:
		sb.WriteString("<atom ")
		write(sb, v.(*values.Atom).Deref(), readable)
		sb.WriteByte('>')
	default:
		sb.WriteString("<unknown>")
	}
}

func writeString(sb *strings.Builder, s string, readable bool) {
	if !readable {
		sb.WriteString(s)
		return
	}
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteByte(s[i])
		}
	}
	sb.WriteByte('"')
}

func writeSeq(sb *strings.Builder, l values.List, open, closing string, readable bool) {
	sb.WriteString(open)
	c := l.Slice()
	for i, e := range c {
		if i > 0 {
			sb.WriteByte(' ')
		}
		write(sb, e, readable)
	}
	sb.WriteString(closing)
}

func writeMap(sb *strings.Builder, v values.Value, readable bool) {
	tbl := values.AsMapTable(v)
	sb.WriteByte('{')
	first := true
	tbl.Range(func(k, val values.Value) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		write(sb, k, readable)
		sb.WriteByte(' ')
		write(sb, val, readable)
	})
	sb.WriteByte('}')
}
