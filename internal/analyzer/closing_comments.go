package analyzer

import (
	"fmt"
	"strings"

	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/token"
	"github.com/go-bsl/bslint/internal/visitor"
)

// ClosingComments flags a Procedure/Function whose EndProcedure/EndFunction
// line carries a trailing comment that does not read exactly " Name()" for
// the method it closes (a different name, other letter case, or missing
// parentheses all count) — a classic copy-paste artifact once a method
// grows long enough that the opening line has scrolled off-screen. A
// #Region's closing comment must likewise read exactly " Name". A method with no
// closing comment at all is not flagged: the comment is optional, only its
// mismatch is a defect.
type ClosingComments struct {
	visitor.BasePlugin
	Issues []Issue

	comments    map[int]token.Comment
	regionStack []string
}

func NewClosingComments() *ClosingComments { return &ClosingComments{} }

func (p *ClosingComments) Name() string { return "closing-comments" }

func (p *ClosingComments) EnterModule(m *ast.Module, _ *visitor.Stack, _ *visitor.Counters) {
	p.comments = m.Comments
}

func (p *ClosingComments) EnterRegion(r *ast.PrepRegionInst, _ *visitor.Stack, _ *visitor.Counters) {
	p.regionStack = append(p.regionStack, r.Name)
}

func (p *ClosingComments) LeaveRegion(r *ast.PrepEndRegionInst, _ *visitor.Stack, _ *visitor.Counters) {
	if len(p.regionStack) == 0 {
		return
	}
	name := p.regionStack[len(p.regionStack)-1]
	p.regionStack = p.regionStack[:len(p.regionStack)-1]

	com, ok := p.comments[r.Place_.EndLine]
	if !ok {
		return
	}
	want := " " + name
	if strings.TrimRight(com.Text, " \t\r") == want {
		return
	}
	p.Issues = append(p.Issues, Issue{
		Kind:          KindClosingCommentMismatch,
		Severity:      SeverityInfo,
		Message:       fmt.Sprintf("Region %q has an incorrect closing comment.", name),
		EffortMinutes: 2,
		Place:         r.Place_,
	})
}

func (p *ClosingComments) LeaveMethodDecl(d *ast.MethodDecl, _ *visitor.Stack, _ *visitor.Counters) {
	com, ok := p.comments[d.Place_.EndLine]
	if !ok {
		return
	}
	name := d.Signature.SigName()
	want := " " + name + "()"
	if strings.TrimRight(com.Text, " \t\r") == want {
		return
	}
	p.Issues = append(p.Issues, Issue{
		Kind:          KindClosingCommentMismatch,
		Severity:      SeverityInfo,
		Message:       fmt.Sprintf("Method %q has an incorrect closing comment.", name+"()"),
		EffortMinutes: 2,
		Place:         d.Place_,
	})
}
