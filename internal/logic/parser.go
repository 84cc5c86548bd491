package logic

import "fmt"

// Expr is a parsed condition, evaluated over an answer snapshot.
type Expr interface {
	eval(ctx Context) bool
}

// logicalExpr joins two sub-expressions with && or ||. Chains associate
// left-to-right; the minimal dialect has no precedence or parentheses beyond
// function call syntax.
type logicalExpr struct {
	op          string // "&&" or "||"
	left, right Expr
}

// compareExpr is answer("qid") <op> literal.
type compareExpr struct {
	questionID string
	op         string // ==, >=, >, <=, <
	literal    string
}

// containsExpr is contains("qid", "value").
type containsExpr struct {
	questionID string
	value      string
}

type parser struct {
	lex *lexer
	cur token
}

// Parse compiles a condition string into an Expr. Callers that can't act on
// an error (the respondent flow) use Evaluate instead, which fails closed.
func Parse(condition string) (Expr, error) {
	p := &parser{lex: &lexer{src: condition}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("unexpected %s after condition", p.cur)
	}
	return expr, nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseClause()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokOp && (p.cur.text == "&&" || p.cur.text == "||") {
		op := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		left = logicalExpr{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseClause() (Expr, error) {
	if p.cur.kind != tokIdent {
		return nil, fmt.Errorf("expected answer() or contains(), got %s", p.cur)
	}
	fn := p.cur.text
	switch fn {
	case "answer":
		return p.parseAnswerClause()
	case "contains":
		return p.parseContainsClause()
	default:
		return nil, fmt.Errorf("unknown function %q", fn)
	}
}

// answer("qid") <op> literal
func (p *parser) parseAnswerClause() (Expr, error) {
	qid, err := p.parseCallArgs(1)
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokOp || p.cur.text == "&&" || p.cur.text == "||" {
		return nil, fmt.Errorf("expected comparison operator, got %s", p.cur)
	}
	op := p.cur.text
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.kind != tokString && p.cur.kind != tokIdent {
		return nil, fmt.Errorf("expected literal, got %s", p.cur)
	}
	lit := p.cur.text
	if err := p.advance(); err != nil {
		return nil, err
	}
	return compareExpr{questionID: qid[0], op: op, literal: lit}, nil
}

// contains("qid", "value")
func (p *parser) parseContainsClause() (Expr, error) {
	args, err := p.parseCallArgs(2)
	if err != nil {
		return nil, err
	}
	return containsExpr{questionID: args[0], value: args[1]}, nil
}

// parseCallArgs consumes `(` arg {"," arg} `)` after a function name and
// returns exactly n string arguments.
func (p *parser) parseCallArgs(n int) ([]string, error) {
	fn := p.cur.text
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.kind != tokLParen {
		return nil, fmt.Errorf("expected ( after %s, got %s", fn, p.cur)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	args := make([]string, 0, n)
	for {
		if p.cur.kind != tokString && p.cur.kind != tokIdent {
			return nil, fmt.Errorf("expected %s argument, got %s", fn, p.cur)
		}
		args = append(args, p.cur.text)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.kind == tokComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if p.cur.kind != tokRParen {
		return nil, fmt.Errorf("expected ) to close %s, got %s", fn, p.cur)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if len(args) != n {
		return nil, fmt.Errorf("%s takes %d argument(s), got %d", fn, n, len(args))
	}
	return args, nil
}
