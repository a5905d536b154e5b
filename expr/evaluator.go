package expr

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/hoyle1974/dateset"
	"github.com/hoyle1974/dateset/telemetry"
	"github.com/patrickmn/go-cache"
)

var (
	ErrSyntax      = errors.New("syntax error")
	ErrUnknownName = errors.New("unknown name")
	ErrInvalidName = errors.New("invalid name")
)

var keywords = map[string]bool{"all": true, "none": true, "not": true}

// Evaluator evaluates date set expressions against a set of named bindings.
//
//	expr := term (op term)*         op := '+' | '|' | '&' | '-'
//	term := '(' expr ')' | 'not' term | literal | name | 'all' | 'none'
//
// Operators are left associative and share one precedence level. '+' and '|'
// both mean union.
//
// An Evaluator is not safe for concurrent use.
type Evaluator struct {
	// generation changes whenever bindings change so stale cached results
	// are never read back.
	generation  string
	bindings    map[string]dateset.DateSet
	logger      telemetry.Logger
	metrics     telemetry.Metrics
	ttl         time.Duration
	evaluations int64
}

type Option func(*Evaluator)

func WithLogger(l telemetry.Logger) Option {
	return func(e *Evaluator) { e.logger = l }
}

func WithMetrics(m telemetry.Metrics) Option {
	return func(e *Evaluator) { e.metrics = m }
}

// WithCacheTTL sets how long parsed literals and results stay cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(e *Evaluator) { e.ttl = ttl }
}

func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		generation: uuid.NewString(),
		bindings:   map[string]dateset.DateSet{},
		logger:     telemetry.NOPLogger{},
		metrics:    telemetry.NOPMetrics{},
		ttl:        cache.DefaultExpiration,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func validName(name string) bool {
	if name == "" || keywords[name] || !isLetter(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isLetter(name[i]) && !isDigit(name[i]) {
			return false
		}
	}
	return true
}

// Bind associates name with a copy of s.
func (e *Evaluator) Bind(name string, s dateset.DateSet) error {
	if !validName(name) {
		return errors.Wrapf(ErrInvalidName, "%q", name)
	}
	e.bindings[name] = s.Clone()
	e.generation = uuid.NewString()
	e.logger.Debug(fmt.Sprintf("bound %s to %#v", name, s))
	return nil
}

// Define evaluates source and binds the result to name.
func (e *Evaluator) Define(name, source string) error {
	s, err := e.Eval(source)
	if err != nil {
		return errors.Wrapf(err, "can not define %s", name)
	}
	return e.Bind(name, s)
}

// Lookup returns a copy of the set bound to name.
func (e *Evaluator) Lookup(name string) (dateset.DateSet, bool) {
	s, ok := e.bindings[name]
	if !ok {
		return dateset.DateSet{}, false
	}
	return s.Clone(), true
}

// Bindings returns a copy of every binding.
func (e *Evaluator) Bindings() map[string]dateset.DateSet {
	out := make(map[string]dateset.DateSet, len(e.bindings))
	for name, s := range e.bindings {
		out[name] = s.Clone()
	}
	return out
}

// Eval evaluates source.
func (e *Evaluator) Eval(source string) (dateset.DateSet, error) {
	e.evaluations++
	e.metrics.SetCount("expr.evaluations", e.evaluations)
	defer e.reportCache()

	key := expressionKey(e.generation, source)
	if s, ok := cached(key); ok {
		e.logger.Debug(fmt.Sprintf("cache hit for %q", source))
		return s, nil
	}

	tokens, err := lex(source)
	if err != nil {
		return dateset.DateSet{}, err
	}
	p := &parser{tokens: tokens, eval: e}
	s, err := p.expression()
	if err != nil {
		e.logger.Error(fmt.Sprintf("evaluating %q", source), err)
		return dateset.DateSet{}, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		err = errors.Wrapf(ErrSyntax, "offset %d: unexpected %q", tok.offset, tok.text)
		e.logger.Error(fmt.Sprintf("evaluating %q", source), err)
		return dateset.DateSet{}, err
	}

	store(key, s, e.ttl)
	e.logger.Debug(fmt.Sprintf("%q = %#v", source, s))
	return s, nil
}

func (e *Evaluator) reportCache() {
	stats := Stats()
	e.metrics.SetCount("expr.cache.hits", stats.Hits.Load())
	e.metrics.SetCount("expr.cache.misses", stats.Misses.Load())
}

func (e *Evaluator) literal(tok token) (dateset.DateSet, error) {
	key := literalKey(tok.text)
	if s, ok := cached(key); ok {
		return s, nil
	}
	s, err := parseLiteral(tok.text)
	if err != nil {
		return dateset.DateSet{}, errors.Mark(errors.Wrapf(err, "offset %d", tok.offset), ErrSyntax)
	}
	store(key, s, e.ttl)
	return s, nil
}

type parser struct {
	tokens []token
	pos    int
	eval   *Evaluator
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expression() (dateset.DateSet, error) {
	left, err := p.term()
	if err != nil {
		return dateset.DateSet{}, err
	}
	for p.peek().kind == tokOp {
		op := p.next()
		right, err := p.term()
		if err != nil {
			return dateset.DateSet{}, err
		}
		switch op.text {
		case "+", "|":
			left.Add(right)
		case "&":
			left.Retain(right)
		case "-":
			left.Remove(right)
		}
	}
	return left, nil
}

func (p *parser) term() (dateset.DateSet, error) {
	tok := p.next()
	switch tok.kind {
	case tokLParen:
		s, err := p.expression()
		if err != nil {
			return dateset.DateSet{}, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return dateset.DateSet{}, errors.Wrapf(ErrSyntax, "offset %d: expected ')'", closing.offset)
		}
		return s, nil
	case tokLiteral:
		return p.eval.literal(tok)
	case tokName:
		switch tok.text {
		case "all":
			return dateset.AllTime(), nil
		case "none":
			return dateset.New(), nil
		case "not":
			s, err := p.term()
			if err != nil {
				return dateset.DateSet{}, err
			}
			return s.Complement(), nil
		}
		s, ok := p.eval.Lookup(tok.text)
		if !ok {
			return dateset.DateSet{}, errors.Wrapf(ErrUnknownName, "offset %d: %q", tok.offset, tok.text)
		}
		return s, nil
	case tokEOF:
		return dateset.DateSet{}, errors.Wrapf(ErrSyntax, "offset %d: unexpected end of expression", tok.offset)
	}
	return dateset.DateSet{}, errors.Wrapf(ErrSyntax, "offset %d: unexpected %q", tok.offset, tok.text)
}
