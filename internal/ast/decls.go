package ast

import "github.com/go-bsl/bslint/internal/token"

// Env describes, for a global-context symbol, the set of execution
// locations it is available in.
type Env struct {
	Client, Server                               bool
	ThickClient, ThinClient                      bool
	WebClient, MobileClient                      bool
	MobileServer, MobileApp                      bool
	ExternalConnection, Integration              bool
}

// GlobalObject describes a predefined attribute of the bundled global
// context; it is never produced by parsing source, only installed into a
// module's root scope by internal/global before parsing begins.
type GlobalObject struct {
	Name  string
	Env   Env
	Place_ token.Place
}

func (*GlobalObject) declNode()            {}
func (g *GlobalObject) Place() token.Place { return g.Place_ }

// GlobalMethodParameter describes one parameter of a GlobalMethod.
type GlobalMethodParameter struct {
	Name    string
	ByVal   bool
	HasDflt bool
}

// GlobalMethod describes a predefined method of the bundled global context.
type GlobalMethod struct {
	Name      string
	IsFunc    bool
	Params    []GlobalMethodParameter
	Env       Env
	Place_    token.Place
}

func (*GlobalMethod) declNode()            {}
func (g *GlobalMethod) Place() token.Place { return g.Place_ }

// VarModDecl is a single module-level variable inside a VarModListDecl.
type VarModDecl struct {
	Name     string
	Directive token.Kind // 0 if none
	Export   bool
	Place_   token.Place
}

func (*VarModDecl) declNode()            {}
func (v *VarModDecl) Place() token.Place { return v.Place_ }

// VarModListDecl is a module-level `Var a, b Export;` statement.
type VarModListDecl struct {
	Directive token.Kind
	List      []*VarModDecl
	Place_    token.Place
}

func (*VarModListDecl) declNode()            {}
func (v *VarModListDecl) Place() token.Place { return v.Place_ }

// VarLocDecl is a local variable declared with `Var` inside a method.
type VarLocDecl struct {
	Name   string
	Place_ token.Place
}

func (*VarLocDecl) declNode()            {}
func (v *VarLocDecl) Place() token.Place { return v.Place_ }

// AutoDecl is an implicit local introduced by its first assignment.
type AutoDecl struct {
	Name   string
	Place_ token.Place
}

func (*AutoDecl) declNode()            {}
func (a *AutoDecl) Place() token.Place { return a.Place_ }

// ParamDecl is a method parameter.
type ParamDecl struct {
	Name         string
	ByVal        bool
	DefaultValue Expr // nil if absent
	Place_       token.Place
}

func (*ParamDecl) declNode()            {}
func (p *ParamDecl) Place() token.Place { return p.Place_ }

// ProcSign is a Procedure's signature.
type ProcSign struct {
	Name      string
	Directive token.Kind
	Params    []*ParamDecl
	Export    bool
	Place_    token.Place
}

func (s *ProcSign) Place() token.Place { return s.Place_ }

// FuncSign is a Function's signature.
type FuncSign struct {
	Name      string
	Directive token.Kind
	Params    []*ParamDecl
	Export    bool
	Place_    token.Place
}

func (s *FuncSign) Place() token.Place { return s.Place_ }

// Signature is implemented by both ProcSign and FuncSign.
type Signature interface {
	Node
	SigName() string
	SigExport() bool
	SigParams() []*ParamDecl
}

func (s *ProcSign) SigName() string          { return s.Name }
func (s *ProcSign) SigExport() bool          { return s.Export }
func (s *ProcSign) SigParams() []*ParamDecl  { return s.Params }
func (s *FuncSign) SigName() string          { return s.Name }
func (s *FuncSign) SigExport() bool          { return s.Export }
func (s *FuncSign) SigParams() []*ParamDecl  { return s.Params }

// MethodDecl is a Procedure or Function declaration.
type MethodDecl struct {
	Signature Signature // *ProcSign or *FuncSign
	IsFunc    bool
	Vars      []*VarLocDecl
	Auto      []*AutoDecl
	Body      []Stmt
	Place_    token.Place
}

func (*MethodDecl) declNode()            {}
func (m *MethodDecl) Place() token.Place { return m.Place_ }
