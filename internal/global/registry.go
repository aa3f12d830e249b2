// Package global implements the global context registry: a static,
// per-module-kind catalog of predefined attributes and methods
// pre-populated into a module's root scope before parsing begins. The
// catalog is externalized to an embedded YAML data file and decoded
// with goccy/go-yaml rather than built as Go literals, so new standard
// attributes/methods can be added without touching code.
//
// Module kinds and their standard-attribute sets are grounded on
// original_source's metadata-context enumeration of concrete kinds
// (ObjectModule, ManagerModule, FormModule, CommonModule, …).
package global

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/go-bsl/bslint/internal/ast"
	"github.com/go-bsl/bslint/internal/token"
)

//go:embed registry.yaml
var registryYAML []byte

// ModuleKind identifies the kind of module being parsed, which determines
// which standard attributes/methods the root scope starts with.
type ModuleKind string

const (
	CommonModule          ModuleKind = "CommonModule"
	ClientApplicationForm ModuleKind = "ClientApplicationForm"
	ObjectModule          ModuleKind = "ObjectModule"
	ManagerModule         ModuleKind = "ManagerModule"
	RecordSetModule       ModuleKind = "RecordSetModule"
	CommandModule         ModuleKind = "CommandModule"
)

type envYAML struct {
	Client             bool `yaml:"client"`
	Server             bool `yaml:"server"`
	ThickClient        bool `yaml:"thick_client"`
	ThinClient         bool `yaml:"thin_client"`
	WebClient          bool `yaml:"web_client"`
	MobileClient       bool `yaml:"mobile_client"`
	MobileServer       bool `yaml:"mobile_server"`
	MobileApp          bool `yaml:"mobile_app"`
	ExternalConnection bool `yaml:"external_connection"`
	Integration        bool `yaml:"integration"`
}

func (e envYAML) toEnv() ast.Env {
	return ast.Env{
		Client: e.Client, Server: e.Server,
		ThickClient: e.ThickClient, ThinClient: e.ThinClient,
		WebClient: e.WebClient, MobileClient: e.MobileClient,
		MobileServer: e.MobileServer, MobileApp: e.MobileApp,
		ExternalConnection: e.ExternalConnection, Integration: e.Integration,
	}
}

type paramYAML struct {
	Name    string `yaml:"name"`
	ByVal   bool   `yaml:"by_val"`
	HasDflt bool   `yaml:"has_default"`
}

type methodYAML struct {
	Name   string      `yaml:"name"`
	NameRu string      `yaml:"name_ru"`
	IsFunc bool        `yaml:"is_func"`
	Params []paramYAML `yaml:"params"`
	Env    envYAML     `yaml:"env"`
}

type attrYAML struct {
	Name   string  `yaml:"name"`
	NameRu string  `yaml:"name_ru"`
	Env    envYAML `yaml:"env"`
}

type moduleKindYAML struct {
	StandardAttributes []attrYAML   `yaml:"standard_attributes"`
	Attributes         []attrYAML   `yaml:"attributes"`
	Methods            []methodYAML `yaml:"methods"`
}

type catalogYAML struct {
	ModuleKinds map[string]moduleKindYAML `yaml:"module_kinds"`
}

// Context is the resolved catalog entry for one module kind: every symbol
// as an *ast.Item whose Decl is a *ast.GlobalObject or *ast.GlobalMethod.
type Context struct {
	// StandardAttributes are installed into the module scope before
	// parsing, like Attributes; a user declaration of the same lowercased
	// name does not shadow one, and a module-level Var of that name is
	// reported as a redeclaration.
	StandardAttributes []*ast.Item
	// Attributes and Methods are installed unconditionally.
	Attributes []*ast.Item
	Methods    []*ast.Item
}

// Registry is the full catalog, keyed by ModuleKind.
type Registry struct {
	contexts map[ModuleKind]Context
}

// Load decodes the embedded registry.yaml, optionally merging in override
// bytes (additional YAML in the same shape) on top — e.g. from an analyzer
// config file that extends a module kind's symbol set. Overrides only
// append symbols; nothing in the embedded catalog is removed.
func Load(overrides ...[]byte) (*Registry, error) {
	var cat catalogYAML
	if err := yaml.Unmarshal(registryYAML, &cat); err != nil {
		return nil, fmt.Errorf("global: decode embedded registry: %w", err)
	}
	for _, ov := range overrides {
		var ovCat catalogYAML
		if err := yaml.Unmarshal(ov, &ovCat); err != nil {
			return nil, fmt.Errorf("global: decode registry override: %w", err)
		}
		for kind, mk := range ovCat.ModuleKinds {
			base := cat.ModuleKinds[kind]
			base.StandardAttributes = append(base.StandardAttributes, mk.StandardAttributes...)
			base.Attributes = append(base.Attributes, mk.Attributes...)
			base.Methods = append(base.Methods, mk.Methods...)
			cat.ModuleKinds[kind] = base
		}
	}

	r := &Registry{contexts: map[ModuleKind]Context{}}
	for kindName, mk := range cat.ModuleKinds {
		var ctx Context
		for _, a := range mk.StandardAttributes {
			ctx.StandardAttributes = append(ctx.StandardAttributes, attrItem(a))
		}
		for _, a := range mk.Attributes {
			ctx.Attributes = append(ctx.Attributes, attrItem(a))
		}
		for _, m := range mk.Methods {
			ctx.Methods = append(ctx.Methods, methodItem(m))
		}
		r.contexts[ModuleKind(kindName)] = ctx
	}
	return r, nil
}

func attrItem(a attrYAML) *ast.Item {
	decl := &ast.GlobalObject{Name: a.Name, Env: a.Env.toEnv()}
	return &ast.Item{Name: a.Name, Decl: decl}
}

func methodItem(m methodYAML) *ast.Item {
	params := make([]ast.GlobalMethodParameter, len(m.Params))
	for i, p := range m.Params {
		params[i] = ast.GlobalMethodParameter{Name: p.Name, ByVal: p.ByVal, HasDflt: p.HasDflt}
	}
	decl := &ast.GlobalMethod{Name: m.Name, IsFunc: m.IsFunc, Params: params, Env: m.Env.toEnv()}
	return &ast.Item{Name: m.Name, Decl: decl}
}

// Context returns the catalog entry for kind, or an empty Context if kind
// is unknown to the registry.
func (r *Registry) Context(kind ModuleKind) Context {
	return r.contexts[kind]
}

// KindFromString maps a metadata ObjectKind string (case-insensitive, as
// it appears in the configuration XML) to a ModuleKind.
func KindFromString(s string) (ModuleKind, bool) {
	switch token.Fold(strings.TrimSpace(s)) {
	case "commonmodule", "общиймодуль":
		return CommonModule, true
	case "clientapplicationform", "form", "форма":
		return ClientApplicationForm, true
	case "objectmodule", "модульобъекта":
		return ObjectModule, true
	case "managermodule", "модульменеджера":
		return ManagerModule, true
	case "recordsetmodule", "модульнаборазаписей":
		return RecordSetModule, true
	case "commandmodule", "модулькоманды":
		return CommandModule, true
	default:
		return "", false
	}
}
