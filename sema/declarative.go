// Copyright © 2025 The vhdlsem authors

package sema

import (
	"github.com/hdltools/vhdlsem/astutil"
	"github.com/hdltools/vhdlsem/types"
	"github.com/hdltools/vhdlsem/vhdl"
)

// analyzeDeclarativePart populates a scope from a declarative part and
// analyzes the declarations themselves.
func (c *context) analyzeDeclarativePart(scope *Scope, decls []vhdl.Decl, sink DiagnosticSink) error {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *vhdl.ObjectDecl:
			if err := c.analyzeObjectDecl(scope, d, sink); err != nil {
				return err
			}
		case *vhdl.TypeDecl:
			c.analyzeTypeDecl(scope, d, sink)
		case *vhdl.ComponentDecl:
			if err := c.analyzeComponentDecl(scope, d, sink); err != nil {
				return err
			}
		case *vhdl.SubprogramBody:
			if err := c.analyzeSubprogramBody(scope, d, sink); err != nil {
				return err
			}
		case *vhdl.InterfaceDecl:
			// Interface declarations only occur in interface lists.
		}
	}
	return nil
}

func (c *context) analyzeObjectDecl(scope *Scope, d *vhdl.ObjectDecl, sink DiagnosticSink) error {
	typ, err := c.resolveTypeMark(scope, d.TypeMark, sink)
	if err != nil {
		return err
	}
	if d.Init != nil {
		if _, err := c.analyzeExpressionWithTargetType(scope, typ, d.Init, sink); err != nil {
			return err
		}
	}
	scope.Add(c.arena.Define(d.Ident, d.Span, &ObjectKind{
		Class:      d.Class,
		Typ:        typ,
		HasDefault: d.Init != nil,
	}), sink)
	return nil
}

func (c *context) analyzeTypeDecl(scope *Scope, d *vhdl.TypeDecl, sink DiagnosticSink) {
	charLits := false
	for _, lit := range d.Literals {
		if lit.Designator.Kind == vhdl.DesignatorIdent && len([]rune(lit.Designator.Name)) == 1 {
			charLits = true
		}
	}
	typ := types.NewEnum(d.Ident.Name, charLits)
	scope.Add(c.arena.Define(d.Ident, d.Span, &TypeKind{Typ: typ}), sink)
	for _, lit := range d.Literals {
		scope.Add(c.arena.Define(lit.Designator, lit.Span, c.enumLiteral(typ)), sink)
	}
}

func (c *context) analyzeComponentDecl(scope *Scope, d *vhdl.ComponentDecl, sink DiagnosticSink) error {
	// Component formals resolve against the enclosing scope but are not
	// visible in it; a throwaway nested scope holds them.
	nested := scope.Nested()
	generics, err := c.analyzeInterfaceList(nested, d.Generics, sink)
	if err != nil {
		return err
	}
	ports, err := c.analyzeInterfaceList(nested, d.Ports, sink)
	if err != nil {
		return err
	}
	scope.Add(c.arena.Define(d.Ident, d.Span, &ComponentKind{
		Generics: generics,
		Ports:    ports,
	}), sink)
	return nil
}

func (c *context) analyzeSubprogramBody(scope *Scope, d *vhdl.SubprogramBody, sink DiagnosticSink) error {
	nested := scope.Nested()
	formals, err := c.analyzeInterfaceList(nested, d.Spec.Params, sink)
	if err != nil {
		return err
	}

	var returnType *types.Type
	if d.Spec.IsFunction {
		returnType, err = c.resolveTypeMark(scope, d.Spec.Return, sink)
		if err != nil {
			return err
		}
	}

	scope.Add(c.arena.Define(d.Spec.Designator, d.Spec.Span, &SubprogramKind{
		IsFunction: d.Spec.IsFunction,
		Formals:    formals,
		Return:     returnType,
	}), sink)

	if err := c.analyzeDeclarativePart(nested, d.Decls, sink); err != nil {
		return err
	}
	if err := c.defineLabelsForSequentialPart(nested, d.Stmts, sink); err != nil {
		return err
	}

	root := SequentialRoot{Kind: RootProcedure}
	if d.Spec.IsFunction {
		root = SequentialRoot{Kind: RootFunction, ReturnType: returnType}
	}
	return c.analyzeSequentialPart(nested, root, d.Stmts, sink)
}

// analyzeInterfaceList analyzes an interface list, declaring each formal
// in scope and collecting them into a formal region in order.
func (c *context) analyzeInterfaceList(scope *Scope, list []*vhdl.InterfaceDecl, sink DiagnosticSink) (*FormalRegion, error) {
	region := NewFormalRegion()
	for _, decl := range list {
		typ, err := c.resolveTypeMark(scope, decl.TypeMark, sink)
		if err != nil {
			return nil, err
		}
		if decl.Default != nil {
			if _, err := c.analyzeExpressionWithTargetType(scope, typ, decl.Default, sink); err != nil {
				return nil, err
			}
		}
		var kind EntityKind
		if decl.Class == vhdl.ClassFile {
			kind = &InterfaceFileKind{Typ: typ}
		} else {
			mode := decl.Mode
			kind = &ObjectKind{
				Class:      decl.Class,
				Mode:       &mode,
				Typ:        typ,
				HasDefault: decl.Default != nil,
			}
		}
		ent := c.arena.Define(decl.Ident, decl.Span, kind)
		scope.Add(ent, sink)
		region.Add(ent)
	}
	return region, nil
}

// resolveTypeMark resolves a type-mark name to a type.  Failures produce
// diagnostics and a nil type; dependent checks degrade to Unknown rather
// than cascading.
func (c *context) resolveTypeMark(scope *Scope, name vhdl.Name, sink DiagnosticSink) (*types.Type, error) {
	if name == nil {
		return nil, nil
	}
	inner := astutil.InnerName(name)
	if inner == nil {
		return nil, nil
	}
	ents, diag := scope.Lookup(inner.Span, inner.Designator)
	if diag != nil {
		sink.Push(*diag)
		return nil, nil
	}
	ent, ok := ents.Single()
	if !ok {
		sink.Push(errorDiag(inner.Span, "Expected type, got overloaded name %s",
			inner.Designator.Describe()))
		return nil, nil
	}
	tk, ok := ent.Kind().(*TypeKind)
	if !ok {
		sink.Push(errorDiag(inner.Span, "Expected type, got %s", ent.Describe()))
		return nil, nil
	}
	inner.Ref.SetUnique(ent.ID())
	return tk.Typ, nil
}
