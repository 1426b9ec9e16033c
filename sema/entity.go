// Copyright © 2025 The vhdlsem authors

package sema

import (
	"fmt"
	"strings"

	"github.com/hdltools/vhdlsem/source"
	"github.com/hdltools/vhdlsem/types"
	"github.com/hdltools/vhdlsem/vhdl"
)

// EntityKind is the closed set of declaration kinds.
type EntityKind interface {
	entityKind()
}

// ObjectKind is a typed value: a signal, variable, constant, or file.
// Interface objects (ports, generics, parameters) carry a mode.
type ObjectKind struct {
	Class      vhdl.ObjectClass
	Mode       *vhdl.Mode // nil for non-interface objects
	Typ        *types.Type
	HasDefault bool
}

// InterfaceFileKind is a file interface parameter.
type InterfaceFileKind struct {
	Typ *types.Type
}

// TypeKind is a type or subtype declaration.
type TypeKind struct {
	Typ *types.Type
}

// LabelKind is a statement label.
type LabelKind struct{}

// LoopParamKind is a for-loop or for-generate index.  Typ is nil when the
// range type could not be determined.
type LoopParamKind struct {
	Typ *types.Type
}

// PhysicalUnitKind is a unit of a physical type, such as ns for time.
type PhysicalUnitKind struct {
	Typ *types.Type
}

// DesignEntityKind is a design entity with its generic and port clauses.
type DesignEntityKind struct {
	Generics *FormalRegion
	Ports    *FormalRegion
}

// ComponentKind is a component declaration.
type ComponentKind struct {
	Generics *FormalRegion
	Ports    *FormalRegion
}

// ConfigurationKind is a configuration declaration.
type ConfigurationKind struct{}

// SubprogramKind is an overloadable signature: a function, procedure, or
// enumeration literal (modeled as a nullary function of its type).
type SubprogramKind struct {
	IsFunction bool
	Formals    *FormalRegion
	Return     *types.Type // nil for procedures
}

func (*ObjectKind) entityKind()        {}
func (*InterfaceFileKind) entityKind() {}
func (*TypeKind) entityKind()          {}
func (*LabelKind) entityKind()         {}
func (*LoopParamKind) entityKind()     {}
func (*PhysicalUnitKind) entityKind()  {}
func (*DesignEntityKind) entityKind()  {}
func (*ComponentKind) entityKind()     {}
func (*ConfigurationKind) entityKind() {}
func (*SubprogramKind) entityKind()    {}

// Entity is an analyzed declaration.  Entities are immutable once created
// and owned by the arena; everything else refers to them by EntityID.
type Entity struct {
	id         vhdl.EntityID
	designator vhdl.Designator
	kind       EntityKind
	span       *source.Span
}

func (e *Entity) ID() vhdl.EntityID             { return e.id }
func (e *Entity) Designator() vhdl.Designator   { return e.designator }
func (e *Entity) Kind() EntityKind              { return e.kind }
func (e *Entity) Pos() *source.Span             { return e.span }

// IsOverloaded reports whether the entity participates in overload
// resolution rather than plain name binding.
func (e *Entity) IsOverloaded() bool {
	_, ok := e.kind.(*SubprogramKind)
	return ok
}

// Signature returns the subprogram signature, or nil for non-overloaded
// entities.
func (e *Entity) Signature() *SubprogramKind {
	k, _ := e.kind.(*SubprogramKind)
	return k
}

// Type returns the value type of the entity when it denotes a typed value
// (object, loop parameter, physical unit, interface file), or nil.
func (e *Entity) Type() *types.Type {
	switch k := e.kind.(type) {
	case *ObjectKind:
		return k.Typ
	case *InterfaceFileKind:
		return k.Typ
	case *LoopParamKind:
		return k.Typ
	case *PhysicalUnitKind:
		return k.Typ
	default:
		return nil
	}
}

// Describe renders the entity for diagnostics.
func (e *Entity) Describe() string {
	switch k := e.kind.(type) {
	case *ObjectKind:
		return fmt.Sprintf("%s '%s'", k.Class, e.designator)
	case *InterfaceFileKind:
		return fmt.Sprintf("file '%s'", e.designator)
	case *TypeKind:
		if k.Typ != nil {
			return k.Typ.Describe()
		}
		return fmt.Sprintf("type '%s'", e.designator)
	case *LabelKind:
		return fmt.Sprintf("label '%s'", e.designator)
	case *LoopParamKind:
		return fmt.Sprintf("loop parameter '%s'", e.designator)
	case *PhysicalUnitKind:
		return fmt.Sprintf("physical unit '%s'", e.designator)
	case *DesignEntityKind:
		return fmt.Sprintf("entity '%s'", e.designator)
	case *ComponentKind:
		return fmt.Sprintf("component '%s'", e.designator)
	case *ConfigurationKind:
		return fmt.Sprintf("configuration '%s'", e.designator)
	case *SubprogramKind:
		return describeSignature(e.designator, k)
	default:
		return e.designator.String()
	}
}

func describeSignature(des vhdl.Designator, sig *SubprogramKind) string {
	if sig.IsFunction && sig.Formals.Len() == 0 && sig.Return != nil &&
		des.Kind == vhdl.DesignatorIdent {
		// Enumeration-literal style nullary functions read better as
		// literals.
		return fmt.Sprintf("literal '%s' of %s", des, sig.Return.Describe())
	}
	var params []string
	for i := 0; i < sig.Formals.Len(); i++ {
		formal := sig.Formals.Nth(i)
		if t := formal.Type(); t != nil {
			params = append(params, t.Name())
		} else {
			params = append(params, "?")
		}
	}
	plist := "(" + strings.Join(params, ", ") + ")"
	if sig.IsFunction {
		ret := "?"
		if sig.Return != nil {
			ret = sig.Return.Name()
		}
		return fmt.Sprintf("function %s%s return %s", des, plist, ret)
	}
	return fmt.Sprintf("procedure %s%s", des, plist)
}

// Arena owns every entity created during analysis and hands out stable
// EntityID indices.  ID zero is reserved as the unresolved reference.
type Arena struct {
	entities []*Entity
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{entities: []*Entity{nil}}
}

// Define creates a new entity and returns it.
func (a *Arena) Define(des vhdl.Designator, span *source.Span, kind EntityKind) *Entity {
	e := &Entity{
		id:         vhdl.EntityID(len(a.entities)),
		designator: des,
		kind:       kind,
		span:       span,
	}
	a.entities = append(a.entities, e)
	return e
}

// Get returns the entity for an id, or nil for NoEntity or an id this
// arena never issued.
func (a *Arena) Get(id vhdl.EntityID) *Entity {
	if id <= 0 || int(id) >= len(a.entities) {
		return nil
	}
	return a.entities[id]
}
