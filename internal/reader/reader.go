// Package reader tokenizes and parses language source text into the
// runtime value representation. ReadStr is the conventional one-shot
// entry point; Reader itself exposes a streaming peek/next/drained
// surface for embedding a form-at-a-time reader inside a REPL loop.
package reader

import (
	"fmt"

	"github.com/cwbudde/go-mal/internal/intern"
	"github.com/cwbudde/go-mal/internal/values"
)

// Reader wraps a Lexer with a one-token lookahead buffer so ReadForm
// can be written as simple recursive descent over Peek/Next.
type Reader struct {
	lex     *Lexer
	pool    *intern.Pool // nil disables interning
	lookhd  *Token
	lookErr error
}

// NewReader constructs a Reader over input. pool may be nil, in which
// case symbols/keywords/strings are left un-interned.
func NewReader(input string, pool *intern.Pool) *Reader {
	return &Reader{lex: NewLexer(input), pool: pool}
}

// Peek returns the next token without consuming it.
func (r *Reader) Peek() (Token, error) {
	if r.lookhd == nil {
		tok, err := r.lex.NextToken()
		r.lookhd = &tok
		r.lookErr = err
	}
	return *r.lookhd, r.lookErr
}

// Next consumes and returns the next token.
func (r *Reader) Next() (Token, error) {
	tok, err := r.Peek()
	r.lookhd = nil
	r.lookErr = nil
	return tok, err
}

// Drained reports whether the input is exhausted (next token is EOF).
func (r *Reader) Drained() bool {
	tok, err := r.Peek()
	return err == nil && tok.Type == TokenEOF
}

func (r *Reader) intern(s string) string {
	if r.pool == nil {
		return s
	}
	return r.pool.Intern(s)
}

// ReadStr tokenizes and parses input, returning the first form. pool
// may be nil.
func ReadStr(input string, pool *intern.Pool) (values.Value, error) {
	r := NewReader(input, pool)
	return r.ReadForm()
}

// ReadForm reads exactly one form from the stream.
func (r *Reader) ReadForm() (values.Value, error) {
	tok, err := r.Next()
	if err != nil {
		return nil, err
	}
	return r.readFormFrom(tok)
}

func (r *Reader) readFormFrom(tok Token) (values.Value, error) {
	switch tok.Type {
	case TokenEOF:
		return nil, &SyntaxError{Message: "Unexpected end of token stream"}
	case TokenString:
		return values.NewString(r.intern(tok.Literal)), nil
	case TokenNumber:
		return r.readNumberLiteral(tok.Literal)
	case TokenKeyword:
		return values.NewKeyword(r.intern(tok.Literal)), nil
	case TokenSymbol:
		switch tok.Literal {
		case "nil":
			return values.Nil, nil
		case "true":
			return values.True, nil
		case "false":
			return values.False, nil
		default:
			return values.NewSymbol(r.intern(tok.Literal)), nil
		}
	case TokenSpecial:
		return r.readSpecial(tok.Literal)
	default:
		return nil, &SyntaxError{Message: fmt.Sprintf("Undefined token: %s", tok.Literal)}
	}
}

func (r *Reader) readNumberLiteral(lit string) (values.Value, error) {
	neg := false
	s := lit
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return nil, &SyntaxError{Message: fmt.Sprintf("Invalid number: %s", lit)}
	}
	var n int64
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, &SyntaxError{Message: fmt.Sprintf("Invalid number: %s", lit)}
		}
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return values.NewInt(n), nil
}

func (r *Reader) readSpecial(lit string) (values.Value, error) {
	switch lit {
	case "(":
		return r.readSeq(")", false)
	case "[":
		return r.readSeq("]", true)
	case "{":
		elems, err := r.readSeqElems("}")
		if err != nil {
			return nil, err
		}
		headList := append([]values.Value{values.NewSymbol("hash-map")}, elems...)
		return values.NewList(headList...), nil
	case "'":
		return r.readWrapped("quote")
	case "`":
		return r.readWrapped("quasiquote")
	case "~":
		return r.readWrapped("unquote")
	case "~@":
		return r.readWrapped("splice-unquote")
	case "@":
		return r.readWrapped("deref")
	case "^":
		return r.readMetaPrefix()
	case "^@":
		return r.readLiteralMetaPrefix()
	case ")", "]", "}":
		return nil, &SyntaxError{Message: fmt.Sprintf("Unexpected character: %s", lit)}
	default:
		return nil, &SyntaxError{Message: fmt.Sprintf("Undefined token: %s", lit)}
	}
}

// readSeq reads forms up to and including the closing delimiter and
// returns them tagged as a List or Vector per vecTag.
func (r *Reader) readSeq(closing string, vecTag bool) (values.Value, error) {
	elems, err := r.readSeqElems(closing)
	if err != nil {
		return nil, err
	}
	if vecTag {
		return values.NewVector(elems...), nil
	}
	return values.NewList(elems...), nil
}

func (r *Reader) readSeqElems(closing string) ([]values.Value, error) {
	var elems []values.Value
	for {
		tok, err := r.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			return nil, &SyntaxError{Message: "Unexpected end of token stream"}
		}
		if tok.Type == TokenSpecial && tok.Literal == closing {
			r.Next()
			return elems, nil
		}
		r.Next()
		form, err := r.readFormFrom(tok)
		if err != nil {
			return nil, err
		}
		elems = append(elems, form)
	}
}

func (r *Reader) readWrapped(sym string) (values.Value, error) {
	inner, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	return values.NewList(values.NewSymbol(sym), inner), nil
}

// readMetaPrefix implements the '^' reader macro: read two forms
// (meta val) and return (with-meta val meta) — note the argument
// order swap relative to source order.
func (r *Reader) readMetaPrefix() (values.Value, error) {
	metaForm, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	val, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	return values.NewList(values.NewSymbol("with-meta"), val, metaForm), nil
}

// readLiteralMetaPrefix implements '^@': read a metadata form and a
// target form; if the metadata form is a (hash-map …) call, realize
// it into a literal map value (preserving any meta already on that
// form) and attach it directly to the target's meta slot. This is the
// sole reader path that attaches literal metadata rather than
// deferring to the evaluator's with-meta.
func (r *Reader) readLiteralMetaPrefix() (values.Value, error) {
	metaForm, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	target, err := r.ReadForm()
	if err != nil {
		return nil, err
	}

	metaValue := metaForm
	if l, ok := values.AsList(metaForm); ok && !l.Empty() && values.IsSymbolNamed(l.First(), "hash-map") {
		args := l.Rest()
		argList, _ := values.AsList(args)
		realized := values.NewMap(argList.Slice()...)
		realized = realized.WithMeta(metaForm.Meta())
		metaValue = realized
	}
	return target.WithMeta(metaValue), nil
}
