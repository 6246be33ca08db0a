// Package formula implements the arithmetic expression language the index
// catalog is written in: the four operators, '^', parentheses, numeric
// literals, a small function set and band variables. Catalog templates
// reference roles as {ROLE}; built expressions reference bands as plain
// identifiers.
package formula

import (
	"math"
	"sort"
	"strings"
)

// Epsilon is the additive safe-division guard. Raster cells routinely sum
// to zero for bands with no signal, so every band-dependent denominator is
// rewritten as (den + Epsilon) when an expression is rendered.
const Epsilon = 1e-6

const epsilonText = "1e-6"

// Expr is a parsed arithmetic expression tree.
type Expr interface {
	render(sb *strings.Builder, bind map[string]string, guard bool)
	eval(vals map[string]float64) float64
	collectVars(set map[string]bool)
	prec() int
}

// Render produces the textual expression with every variable substituted
// through bind (variables without a binding keep their own name) and, when
// guard is set, with the safe-division guard injected into each denominator
// that depends on a variable. Constant denominators are left alone.
func Render(e Expr, bind map[string]string, guard bool) string {
	var sb strings.Builder
	e.render(&sb, bind, guard)
	return sb.String()
}

// Eval computes the expression over concrete band values. Unknown variables
// evaluate to NaN, which propagates to the result.
func Eval(e Expr, vals map[string]float64) float64 {
	return e.eval(vals)
}

// Vars lists every variable the expression references, sorted.
func Vars(e Expr) []string {
	set := map[string]bool{}
	e.collectVars(set)
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

const (
	precAdd  = 1
	precMul  = 2
	precPow  = 3
	precAtom = 4
)

type num struct {
	value float64
	text  string
}

func (n num) prec() int { return precAtom }

func (n num) render(sb *strings.Builder, _ map[string]string, _ bool) {
	sb.WriteString(n.text)
}

func (n num) eval(map[string]float64) float64 { return n.value }

func (n num) collectVars(map[string]bool) {}

type variable struct {
	name string
}

func (v variable) prec() int { return precAtom }

func (v variable) render(sb *strings.Builder, bind map[string]string, _ bool) {
	if bound, ok := bind[v.name]; ok {
		sb.WriteString(bound)
		return
	}
	sb.WriteString(v.name)
}

func (v variable) eval(vals map[string]float64) float64 {
	val, ok := vals[v.name]
	if !ok {
		return math.NaN()
	}
	return val
}

func (v variable) collectVars(set map[string]bool) { set[v.name] = true }

type call struct {
	fn  string
	arg Expr
}

func (c call) prec() int { return precAtom }

func (c call) render(sb *strings.Builder, bind map[string]string, guard bool) {
	sb.WriteString(c.fn)
	sb.WriteByte('(')
	c.arg.render(sb, bind, guard)
	sb.WriteByte(')')
}

func (c call) eval(vals map[string]float64) float64 {
	x := c.arg.eval(vals)
	switch c.fn {
	case "sqrt":
		return math.Sqrt(x)
	case "log":
		return math.Log(x)
	case "abs":
		return math.Abs(x)
	case "exp":
		return math.Exp(x)
	}
	return math.NaN()
}

func (c call) collectVars(set map[string]bool) { c.arg.collectVars(set) }

type unary struct {
	x Expr
}

func (u unary) prec() int { return precAtom }

func (u unary) render(sb *strings.Builder, bind map[string]string, guard bool) {
	sb.WriteByte('-')
	renderChild(sb, u.x, precAtom, false, bind, guard)
}

func (u unary) eval(vals map[string]float64) float64 { return -u.x.eval(vals) }

func (u unary) collectVars(set map[string]bool) { u.x.collectVars(set) }

type binary struct {
	op   byte
	l, r Expr
}

func (b binary) prec() int {
	switch b.op {
	case '+', '-':
		return precAdd
	case '*', '/':
		return precMul
	}
	return precPow
}

func (b binary) render(sb *strings.Builder, bind map[string]string, guard bool) {
	p := b.prec()
	renderChild(sb, b.l, p, false, bind, guard)
	sb.WriteByte(' ')
	sb.WriteByte(b.op)
	sb.WriteByte(' ')
	if guard && b.op == '/' && dependsOnVar(b.r) {
		sb.WriteByte('(')
		b.r.render(sb, bind, guard)
		sb.WriteString(" + ")
		sb.WriteString(epsilonText)
		sb.WriteByte(')')
		return
	}
	renderChild(sb, b.r, p, true, bind, guard)
}

func (b binary) eval(vals map[string]float64) float64 {
	l, r := b.l.eval(vals), b.r.eval(vals)
	switch b.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	}
	return math.Pow(l, r)
}

func (b binary) collectVars(set map[string]bool) {
	b.l.collectVars(set)
	b.r.collectVars(set)
}

// renderChild parenthesizes a subexpression when its precedence would bind
// looser than the parent operator, or equally on the right of a
// non-commutative operator.
func renderChild(sb *strings.Builder, child Expr, parent int, right bool, bind map[string]string, guard bool) {
	cp := child.prec()
	need := cp < parent || (right && cp == parent)
	if need {
		sb.WriteByte('(')
	}
	child.render(sb, bind, guard)
	if need {
		sb.WriteByte(')')
	}
}

func dependsOnVar(e Expr) bool {
	set := map[string]bool{}
	e.collectVars(set)
	return len(set) > 0
}
