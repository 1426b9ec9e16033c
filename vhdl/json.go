// Copyright © 2025 The vhdlsem authors

package vhdl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hdltools/vhdlsem/source"
)

// DecodeDesignFile reads a kind-tagged JSON design file, the interchange
// form produced by parser front ends.  Every node object carries a
// "kind" field naming its type; spans are optional on all nodes.
func DecodeDesignFile(r io.Reader) (*DesignFile, error) {
	var raw struct {
		File  string            `json:"file"`
		Units []json.RawMessage `json:"units"`
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("design file: %w", err)
	}
	file := &DesignFile{File: raw.File}
	for i, msg := range raw.Units {
		unit, err := decodeUnit(msg)
		if err != nil {
			return nil, fmt.Errorf("unit %d: %w", i, err)
		}
		file.Units = append(file.Units, unit)
	}
	return file, nil
}

type jsonSpan struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Col    int    `json:"col"`
	EndCol int    `json:"endCol,omitempty"`
}

func (s *jsonSpan) span() *source.Span {
	if s == nil {
		return nil
	}
	return &source.Span{File: s.File, Line: s.Line, Col: s.Col, EndCol: s.EndCol}
}

type jsonDesignator struct {
	Ident    string `json:"ident,omitempty"`
	Operator string `json:"operator,omitempty"`
}

func (d *jsonDesignator) designator() (Designator, error) {
	switch {
	case d == nil:
		return Designator{}, fmt.Errorf("missing designator")
	case d.Operator != "":
		return Operator(d.Operator), nil
	case d.Ident != "":
		return Ident(d.Ident), nil
	default:
		return Designator{}, fmt.Errorf("empty designator")
	}
}

func kindOf(msg json.RawMessage) (string, error) {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(msg, &probe); err != nil {
		return "", err
	}
	if probe.Kind == "" {
		return "", fmt.Errorf("node has no kind")
	}
	return probe.Kind, nil
}

func decodeUnit(msg json.RawMessage) (DesignUnit, error) {
	kind, err := kindOf(msg)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "entity":
		var raw struct {
			Kind     string            `json:"kind"`
			Span     *jsonSpan         `json:"span"`
			Ident    *jsonDesignator   `json:"ident"`
			Generics []json.RawMessage `json:"generics"`
			Ports    []json.RawMessage `json:"ports"`
			Decls    []json.RawMessage `json:"decls"`
			Stmts    []json.RawMessage `json:"stmts"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		ident, err := raw.Ident.designator()
		if err != nil {
			return nil, err
		}
		generics, err := decodeInterfaceList(raw.Generics)
		if err != nil {
			return nil, err
		}
		ports, err := decodeInterfaceList(raw.Ports)
		if err != nil {
			return nil, err
		}
		decls, err := decodeDecls(raw.Decls)
		if err != nil {
			return nil, err
		}
		stmts, err := decodeConcStmts(raw.Stmts)
		if err != nil {
			return nil, err
		}
		return &EntityDecl{
			Span:     raw.Span.span(),
			Ident:    ident,
			Generics: generics,
			Ports:    ports,
			Decls:    decls,
			Stmts:    stmts,
		}, nil

	case "architecture":
		var raw struct {
			Kind       string            `json:"kind"`
			Span       *jsonSpan         `json:"span"`
			Ident      *jsonDesignator   `json:"ident"`
			EntityName json.RawMessage   `json:"entityName"`
			Decls      []json.RawMessage `json:"decls"`
			Stmts      []json.RawMessage `json:"stmts"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		ident, err := raw.Ident.designator()
		if err != nil {
			return nil, err
		}
		entityName, err := decodeOptSimpleName(raw.EntityName)
		if err != nil {
			return nil, err
		}
		decls, err := decodeDecls(raw.Decls)
		if err != nil {
			return nil, err
		}
		stmts, err := decodeConcStmts(raw.Stmts)
		if err != nil {
			return nil, err
		}
		return &ArchitectureBody{
			Span:       raw.Span.span(),
			Ident:      ident,
			EntityName: entityName,
			Decls:      decls,
			Stmts:      stmts,
		}, nil

	case "configuration":
		var raw struct {
			Kind       string          `json:"kind"`
			Span       *jsonSpan       `json:"span"`
			Ident      *jsonDesignator `json:"ident"`
			EntityName json.RawMessage `json:"entityName"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		ident, err := raw.Ident.designator()
		if err != nil {
			return nil, err
		}
		entityName, err := decodeOptSimpleName(raw.EntityName)
		if err != nil {
			return nil, err
		}
		return &ConfigurationDecl{
			Span:       raw.Span.span(),
			Ident:      ident,
			EntityName: entityName,
		}, nil

	default:
		return nil, fmt.Errorf("unknown design unit kind %q", kind)
	}
}

func decodeObjectClass(s string) (ObjectClass, error) {
	switch s {
	case "signal":
		return ClassSignal, nil
	case "variable":
		return ClassVariable, nil
	case "constant":
		return ClassConstant, nil
	case "file":
		return ClassFile, nil
	default:
		return 0, fmt.Errorf("unknown object class %q", s)
	}
}

func decodeMode(s string) (Mode, error) {
	switch s {
	case "", "in":
		return ModeIn, nil
	case "out":
		return ModeOut, nil
	case "inout":
		return ModeInOut, nil
	case "buffer":
		return ModeBuffer, nil
	case "linkage":
		return ModeLinkage, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

func decodeInterfaceList(msgs []json.RawMessage) ([]*InterfaceDecl, error) {
	var list []*InterfaceDecl
	for i, msg := range msgs {
		var raw struct {
			Span     *jsonSpan       `json:"span"`
			Class    string          `json:"class"`
			Ident    *jsonDesignator `json:"ident"`
			Mode     string          `json:"mode"`
			TypeMark json.RawMessage `json:"typeMark"`
			Default  json.RawMessage `json:"default"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, fmt.Errorf("interface %d: %w", i, err)
		}
		class, err := decodeObjectClass(raw.Class)
		if err != nil {
			return nil, fmt.Errorf("interface %d: %w", i, err)
		}
		mode, err := decodeMode(raw.Mode)
		if err != nil {
			return nil, fmt.Errorf("interface %d: %w", i, err)
		}
		ident, err := raw.Ident.designator()
		if err != nil {
			return nil, fmt.Errorf("interface %d: %w", i, err)
		}
		typeMark, err := decodeOptName(raw.TypeMark)
		if err != nil {
			return nil, fmt.Errorf("interface %d: %w", i, err)
		}
		def, err := decodeOptExpr(raw.Default)
		if err != nil {
			return nil, fmt.Errorf("interface %d: %w", i, err)
		}
		list = append(list, &InterfaceDecl{
			Span:     raw.Span.span(),
			Class:    class,
			Ident:    ident,
			Mode:     mode,
			TypeMark: typeMark,
			Default:  def,
		})
	}
	return list, nil
}

func decodeDecls(msgs []json.RawMessage) ([]Decl, error) {
	var decls []Decl
	for i, msg := range msgs {
		d, err := decodeDecl(msg)
		if err != nil {
			return nil, fmt.Errorf("decl %d: %w", i, err)
		}
		decls = append(decls, d)
	}
	return decls, nil
}

func decodeDecl(msg json.RawMessage) (Decl, error) {
	kind, err := kindOf(msg)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "object":
		var raw struct {
			Kind     string          `json:"kind"`
			Span     *jsonSpan       `json:"span"`
			Class    string          `json:"class"`
			Ident    *jsonDesignator `json:"ident"`
			TypeMark json.RawMessage `json:"typeMark"`
			Init     json.RawMessage `json:"init"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		class, err := decodeObjectClass(raw.Class)
		if err != nil {
			return nil, err
		}
		ident, err := raw.Ident.designator()
		if err != nil {
			return nil, err
		}
		typeMark, err := decodeOptName(raw.TypeMark)
		if err != nil {
			return nil, err
		}
		init, err := decodeOptExpr(raw.Init)
		if err != nil {
			return nil, err
		}
		return &ObjectDecl{
			Span:     raw.Span.span(),
			Class:    class,
			Ident:    ident,
			TypeMark: typeMark,
			Init:     init,
		}, nil

	case "type":
		var raw struct {
			Kind     string          `json:"kind"`
			Span     *jsonSpan       `json:"span"`
			Ident    *jsonDesignator `json:"ident"`
			Literals []struct {
				Span       *jsonSpan       `json:"span"`
				Designator *jsonDesignator `json:"designator"`
			} `json:"literals"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		ident, err := raw.Ident.designator()
		if err != nil {
			return nil, err
		}
		decl := &TypeDecl{Span: raw.Span.span(), Ident: ident}
		for _, lit := range raw.Literals {
			des, err := lit.Designator.designator()
			if err != nil {
				return nil, err
			}
			decl.Literals = append(decl.Literals, &EnumLiteral{
				Span:       lit.Span.span(),
				Designator: des,
			})
		}
		return decl, nil

	case "component":
		var raw struct {
			Kind     string            `json:"kind"`
			Span     *jsonSpan         `json:"span"`
			Ident    *jsonDesignator   `json:"ident"`
			Generics []json.RawMessage `json:"generics"`
			Ports    []json.RawMessage `json:"ports"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		ident, err := raw.Ident.designator()
		if err != nil {
			return nil, err
		}
		generics, err := decodeInterfaceList(raw.Generics)
		if err != nil {
			return nil, err
		}
		ports, err := decodeInterfaceList(raw.Ports)
		if err != nil {
			return nil, err
		}
		return &ComponentDecl{
			Span:     raw.Span.span(),
			Ident:    ident,
			Generics: generics,
			Ports:    ports,
		}, nil

	case "subprogram":
		var raw struct {
			Kind string `json:"kind"`
			Span *jsonSpan `json:"span"`
			Spec struct {
				SpecSpan   *jsonSpan         `json:"span"`
				Designator *jsonDesignator   `json:"designator"`
				Function   bool              `json:"function"`
				Params     []json.RawMessage `json:"params"`
				Return     json.RawMessage   `json:"return"`
			} `json:"spec"`
			Decls []json.RawMessage `json:"decls"`
			Stmts []json.RawMessage `json:"stmts"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		des, err := raw.Spec.Designator.designator()
		if err != nil {
			return nil, err
		}
		params, err := decodeInterfaceList(raw.Spec.Params)
		if err != nil {
			return nil, err
		}
		ret, err := decodeOptName(raw.Spec.Return)
		if err != nil {
			return nil, err
		}
		decls, err := decodeDecls(raw.Decls)
		if err != nil {
			return nil, err
		}
		stmts, err := decodeSeqStmts(raw.Stmts)
		if err != nil {
			return nil, err
		}
		return &SubprogramBody{
			Span: raw.Span.span(),
			Spec: &SubprogramSpec{
				Span:       raw.Spec.SpecSpan.span(),
				Designator: des,
				IsFunction: raw.Spec.Function,
				Params:     params,
				Return:     ret,
			},
			Decls: decls,
			Stmts: stmts,
		}, nil

	default:
		return nil, fmt.Errorf("unknown declaration kind %q", kind)
	}
}

type jsonLabel struct {
	Span *jsonSpan       `json:"span"`
	Name *jsonDesignator `json:"name"`
}

func (l *jsonLabel) label() (*Label, error) {
	if l == nil {
		return nil, nil
	}
	name, err := l.Name.designator()
	if err != nil {
		return nil, err
	}
	return &Label{Span: l.Span.span(), Name: name}, nil
}

func decodeStmtBase(msg json.RawMessage) (stmtBase, error) {
	var raw struct {
		Span  *jsonSpan  `json:"span"`
		Label *jsonLabel `json:"label"`
	}
	if err := json.Unmarshal(msg, &raw); err != nil {
		return stmtBase{}, err
	}
	label, err := raw.Label.label()
	if err != nil {
		return stmtBase{}, err
	}
	return stmtBase{Span: raw.Span.span(), Label: label}, nil
}

func decodeSeqStmts(msgs []json.RawMessage) ([]SequentialStmt, error) {
	var stmts []SequentialStmt
	for i, msg := range msgs {
		s, err := decodeSeqStmt(msg)
		if err != nil {
			return nil, fmt.Errorf("stmt %d: %w", i, err)
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func decodeSeqStmt(msg json.RawMessage) (SequentialStmt, error) {
	kind, err := kindOf(msg)
	if err != nil {
		return nil, err
	}
	base, err := decodeStmtBase(msg)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "return":
		var raw struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		value, err := decodeOptExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &ReturnStmt{stmtBase: base, Value: value}, nil

	case "wait":
		var raw struct {
			Sensitivity []json.RawMessage `json:"sensitivity"`
			Condition   json.RawMessage   `json:"condition"`
			Timeout     json.RawMessage   `json:"timeout"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		names, err := decodeNames(raw.Sensitivity)
		if err != nil {
			return nil, err
		}
		cond, err := decodeOptExpr(raw.Condition)
		if err != nil {
			return nil, err
		}
		timeout, err := decodeOptExpr(raw.Timeout)
		if err != nil {
			return nil, err
		}
		return &WaitStmt{stmtBase: base, Sensitivity: names, Condition: cond, Timeout: timeout}, nil

	case "assert":
		var raw struct {
			Condition json.RawMessage `json:"condition"`
			Report    json.RawMessage `json:"report"`
			Severity  json.RawMessage `json:"severity"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		cond, err := decodeOptExpr(raw.Condition)
		if err != nil {
			return nil, err
		}
		report, err := decodeOptExpr(raw.Report)
		if err != nil {
			return nil, err
		}
		severity, err := decodeOptExpr(raw.Severity)
		if err != nil {
			return nil, err
		}
		return &AssertStmt{stmtBase: base, Condition: cond, Report: report, Severity: severity}, nil

	case "report":
		var raw struct {
			Report   json.RawMessage `json:"report"`
			Severity json.RawMessage `json:"severity"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		report, err := decodeOptExpr(raw.Report)
		if err != nil {
			return nil, err
		}
		severity, err := decodeOptExpr(raw.Severity)
		if err != nil {
			return nil, err
		}
		return &ReportStmt{stmtBase: base, Report: report, Severity: severity}, nil

	case "exit", "next":
		var raw struct {
			LoopLabel json.RawMessage `json:"loopLabel"`
			Condition json.RawMessage `json:"condition"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		loopLabel, err := decodeOptSimpleName(raw.LoopLabel)
		if err != nil {
			return nil, err
		}
		cond, err := decodeOptExpr(raw.Condition)
		if err != nil {
			return nil, err
		}
		if kind == "exit" {
			return &ExitStmt{stmtBase: base, LoopLabel: loopLabel, Condition: cond}, nil
		}
		return &NextStmt{stmtBase: base, LoopLabel: loopLabel, Condition: cond}, nil

	case "if":
		var raw struct {
			Conds []struct {
				Condition json.RawMessage   `json:"condition"`
				Body      []json.RawMessage `json:"body"`
			} `json:"conds"`
			Else []json.RawMessage `json:"else"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		stmt := &IfStmt{stmtBase: base}
		for _, c := range raw.Conds {
			cond, err := decodeOptExpr(c.Condition)
			if err != nil {
				return nil, err
			}
			body, err := decodeSeqStmts(c.Body)
			if err != nil {
				return nil, err
			}
			stmt.Conds = append(stmt.Conds, &Conditional{Condition: cond, Body: body})
		}
		elseBody, err := decodeSeqStmts(raw.Else)
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBody
		return stmt, nil

	case "case":
		var raw struct {
			Expr         json.RawMessage `json:"expr"`
			Alternatives []struct {
				Choices []json.RawMessage `json:"choices"`
				Body    []json.RawMessage `json:"body"`
			} `json:"alternatives"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		expr, err := decodeOptExpr(raw.Expr)
		if err != nil {
			return nil, err
		}
		stmt := &CaseStmt{stmtBase: base, Expr: expr}
		for _, a := range raw.Alternatives {
			choices, err := decodeChoices(a.Choices)
			if err != nil {
				return nil, err
			}
			body, err := decodeSeqStmts(a.Body)
			if err != nil {
				return nil, err
			}
			stmt.Alternatives = append(stmt.Alternatives, &CaseAlternative{Choices: choices, Body: body})
		}
		return stmt, nil

	case "loop":
		var raw struct {
			For *struct {
				Span  *jsonSpan       `json:"span"`
				Index *jsonDesignator `json:"index"`
				Range json.RawMessage `json:"range"`
			} `json:"for"`
			While *struct {
				Condition json.RawMessage `json:"condition"`
			} `json:"while"`
			Body []json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		stmt := &LoopStmt{stmtBase: base}
		switch {
		case raw.For != nil:
			index, err := raw.For.Index.designator()
			if err != nil {
				return nil, err
			}
			rng, err := decodeOptDiscreteRange(raw.For.Range)
			if err != nil {
				return nil, err
			}
			stmt.Scheme = &ForScheme{IndexSpan: raw.For.Span.span(), Index: index, Range: rng}
		case raw.While != nil:
			cond, err := decodeOptExpr(raw.While.Condition)
			if err != nil {
				return nil, err
			}
			stmt.Scheme = &WhileScheme{Condition: cond}
		}
		body, err := decodeSeqStmts(raw.Body)
		if err != nil {
			return nil, err
		}
		stmt.Body = body
		return stmt, nil

	case "signal_assign":
		var raw struct {
			Target   json.RawMessage `json:"target"`
			Waveform []struct {
				Value json.RawMessage `json:"value"`
				After json.RawMessage `json:"after"`
			} `json:"waveform"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		target, err := decodeOptName(raw.Target)
		if err != nil {
			return nil, err
		}
		stmt := &SignalAssignmentStmt{stmtBase: base, Target: target}
		for _, w := range raw.Waveform {
			value, err := decodeOptExpr(w.Value)
			if err != nil {
				return nil, err
			}
			after, err := decodeOptExpr(w.After)
			if err != nil {
				return nil, err
			}
			stmt.Waveform = append(stmt.Waveform, &WaveformElement{Value: value, After: after})
		}
		return stmt, nil

	case "variable_assign":
		target, value, err := decodeTargetValue(msg)
		if err != nil {
			return nil, err
		}
		return &VariableAssignmentStmt{stmtBase: base, Target: target, Value: value}, nil

	case "signal_force":
		target, value, err := decodeTargetValue(msg)
		if err != nil {
			return nil, err
		}
		return &SignalForceAssignmentStmt{stmtBase: base, Target: target, Value: value}, nil

	case "signal_release":
		var raw struct {
			Target json.RawMessage `json:"target"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		target, err := decodeOptName(raw.Target)
		if err != nil {
			return nil, err
		}
		return &SignalReleaseAssignmentStmt{stmtBase: base, Target: target}, nil

	case "procedure_call":
		var raw struct {
			Call json.RawMessage `json:"call"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		call, err := decodeCall(raw.Call)
		if err != nil {
			return nil, err
		}
		return &ProcedureCallStmt{stmtBase: base, Call: call}, nil

	case "null":
		return &NullStmt{stmtBase: base}, nil

	default:
		return nil, fmt.Errorf("unknown sequential statement kind %q", kind)
	}
}

func decodeTargetValue(msg json.RawMessage) (Name, Expr, error) {
	var raw struct {
		Target json.RawMessage `json:"target"`
		Value  json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(msg, &raw); err != nil {
		return nil, nil, err
	}
	target, err := decodeOptName(raw.Target)
	if err != nil {
		return nil, nil, err
	}
	value, err := decodeOptExpr(raw.Value)
	if err != nil {
		return nil, nil, err
	}
	return target, value, nil
}

func decodeChoices(msgs []json.RawMessage) ([]*Choice, error) {
	var choices []*Choice
	for i, msg := range msgs {
		var raw struct {
			Span   *jsonSpan       `json:"span"`
			Others bool            `json:"others,omitempty"`
			Expr   json.RawMessage `json:"expr"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, fmt.Errorf("choice %d: %w", i, err)
		}
		choice := &Choice{Span: raw.Span.span()}
		if !raw.Others {
			expr, err := decodeOptExpr(raw.Expr)
			if err != nil {
				return nil, fmt.Errorf("choice %d: %w", i, err)
			}
			choice.Expr = expr
		}
		choices = append(choices, choice)
	}
	return choices, nil
}

func decodeConcStmts(msgs []json.RawMessage) ([]ConcurrentStmt, error) {
	var stmts []ConcurrentStmt
	for i, msg := range msgs {
		s, err := decodeConcStmt(msg)
		if err != nil {
			return nil, fmt.Errorf("stmt %d: %w", i, err)
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func decodeConcStmt(msg json.RawMessage) (ConcurrentStmt, error) {
	kind, err := kindOf(msg)
	if err != nil {
		return nil, err
	}
	base, err := decodeStmtBase(msg)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "block":
		var raw struct {
			Guard      json.RawMessage   `json:"guard"`
			Generics   []json.RawMessage `json:"generics"`
			GenericMap []json.RawMessage `json:"genericMap"`
			Ports      []json.RawMessage `json:"ports"`
			PortMap    []json.RawMessage `json:"portMap"`
			Decls      []json.RawMessage `json:"decls"`
			Stmts      []json.RawMessage `json:"stmts"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		guard, err := decodeOptExpr(raw.Guard)
		if err != nil {
			return nil, err
		}
		generics, err := decodeInterfaceList(raw.Generics)
		if err != nil {
			return nil, err
		}
		genericMap, err := decodeAssocs(raw.GenericMap)
		if err != nil {
			return nil, err
		}
		ports, err := decodeInterfaceList(raw.Ports)
		if err != nil {
			return nil, err
		}
		portMap, err := decodeAssocs(raw.PortMap)
		if err != nil {
			return nil, err
		}
		decls, err := decodeDecls(raw.Decls)
		if err != nil {
			return nil, err
		}
		stmts, err := decodeConcStmts(raw.Stmts)
		if err != nil {
			return nil, err
		}
		return &BlockStmt{
			stmtBase:   base,
			Guard:      guard,
			Generics:   generics,
			GenericMap: genericMap,
			Ports:      ports,
			PortMap:    portMap,
			Decls:      decls,
			Stmts:      stmts,
		}, nil

	case "process":
		var raw struct {
			Postponed   bool `json:"postponed,omitempty"`
			Sensitivity *struct {
				All   bool              `json:"all,omitempty"`
				Names []json.RawMessage `json:"names"`
			} `json:"sensitivity"`
			Decls []json.RawMessage `json:"decls"`
			Stmts []json.RawMessage `json:"stmts"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		stmt := &ProcessStmt{stmtBase: base, Postponed: raw.Postponed}
		if raw.Sensitivity != nil {
			names, err := decodeNames(raw.Sensitivity.Names)
			if err != nil {
				return nil, err
			}
			stmt.Sensitivity = &SensitivityList{All: raw.Sensitivity.All, Names: names}
		}
		decls, err := decodeDecls(raw.Decls)
		if err != nil {
			return nil, err
		}
		stmts, err := decodeSeqStmts(raw.Stmts)
		if err != nil {
			return nil, err
		}
		stmt.Decls = decls
		stmt.Stmts = stmts
		return stmt, nil

	case "for_generate":
		var raw struct {
			IndexSpan *jsonSpan       `json:"indexSpan"`
			Index     *jsonDesignator `json:"index"`
			Range     json.RawMessage `json:"range"`
			Body      json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		index, err := raw.Index.designator()
		if err != nil {
			return nil, err
		}
		rng, err := decodeOptDiscreteRange(raw.Range)
		if err != nil {
			return nil, err
		}
		body, err := decodeGenerateBody(raw.Body)
		if err != nil {
			return nil, err
		}
		return &ForGenerateStmt{
			stmtBase:  base,
			IndexSpan: raw.IndexSpan.span(),
			Index:     index,
			Range:     rng,
			Body:      body,
		}, nil

	case "if_generate":
		var raw struct {
			Conds []struct {
				Condition json.RawMessage `json:"condition"`
				Body      json.RawMessage `json:"body"`
			} `json:"conds"`
			Else json.RawMessage `json:"else"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		stmt := &IfGenerateStmt{stmtBase: base}
		for _, c := range raw.Conds {
			cond, err := decodeOptExpr(c.Condition)
			if err != nil {
				return nil, err
			}
			body, err := decodeGenerateBody(c.Body)
			if err != nil {
				return nil, err
			}
			stmt.Conds = append(stmt.Conds, &GenerateConditional{Condition: cond, Body: body})
		}
		if len(raw.Else) > 0 && string(raw.Else) != "null" {
			body, err := decodeGenerateBody(raw.Else)
			if err != nil {
				return nil, err
			}
			stmt.Else = body
		}
		return stmt, nil

	case "case_generate":
		var raw struct {
			Expr         json.RawMessage `json:"expr"`
			Alternatives []struct {
				Choices []json.RawMessage `json:"choices"`
				Body    json.RawMessage   `json:"body"`
			} `json:"alternatives"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		expr, err := decodeOptExpr(raw.Expr)
		if err != nil {
			return nil, err
		}
		stmt := &CaseGenerateStmt{stmtBase: base, Expr: expr}
		for _, a := range raw.Alternatives {
			choices, err := decodeChoices(a.Choices)
			if err != nil {
				return nil, err
			}
			body, err := decodeGenerateBody(a.Body)
			if err != nil {
				return nil, err
			}
			stmt.Alternatives = append(stmt.Alternatives, &GenerateAlternative{Choices: choices, Body: body})
		}
		return stmt, nil

	case "instance":
		var raw struct {
			Unit       string          `json:"unit"`
			Name       json.RawMessage `json:"name"`
			GenericMap []json.RawMessage `json:"genericMap"`
			PortMap    []json.RawMessage `json:"portMap"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		var unitKind InstantiatedUnitKind
		switch raw.Unit {
		case "", "component":
			unitKind = InstantiateComponent
		case "entity":
			unitKind = InstantiateEntity
		case "configuration":
			unitKind = InstantiateConfiguration
		default:
			return nil, fmt.Errorf("unknown instantiated unit kind %q", raw.Unit)
		}
		name, err := decodeOptName(raw.Name)
		if err != nil {
			return nil, err
		}
		genericMap, err := decodeAssocs(raw.GenericMap)
		if err != nil {
			return nil, err
		}
		portMap, err := decodeAssocs(raw.PortMap)
		if err != nil {
			return nil, err
		}
		return &InstantiationStmt{
			stmtBase:   base,
			Kind:       unitKind,
			Unit:       name,
			GenericMap: genericMap,
			PortMap:    portMap,
		}, nil

	case "concurrent_assert":
		var raw struct {
			Postponed bool            `json:"postponed,omitempty"`
			Condition json.RawMessage `json:"condition"`
			Report    json.RawMessage `json:"report"`
			Severity  json.RawMessage `json:"severity"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		cond, err := decodeOptExpr(raw.Condition)
		if err != nil {
			return nil, err
		}
		report, err := decodeOptExpr(raw.Report)
		if err != nil {
			return nil, err
		}
		severity, err := decodeOptExpr(raw.Severity)
		if err != nil {
			return nil, err
		}
		return &ConcurrentAssertStmt{
			stmtBase:  base,
			Postponed: raw.Postponed,
			Condition: cond,
			Report:    report,
			Severity:  severity,
		}, nil

	case "concurrent_assign":
		var raw struct {
			Target   json.RawMessage `json:"target"`
			Waveform []struct {
				Value json.RawMessage `json:"value"`
				After json.RawMessage `json:"after"`
			} `json:"waveform"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		target, err := decodeOptName(raw.Target)
		if err != nil {
			return nil, err
		}
		stmt := &ConcurrentSignalAssignmentStmt{stmtBase: base, Target: target}
		for _, w := range raw.Waveform {
			value, err := decodeOptExpr(w.Value)
			if err != nil {
				return nil, err
			}
			after, err := decodeOptExpr(w.After)
			if err != nil {
				return nil, err
			}
			stmt.Waveform = append(stmt.Waveform, &WaveformElement{Value: value, After: after})
		}
		return stmt, nil

	case "concurrent_procedure_call":
		var raw struct {
			Postponed bool            `json:"postponed,omitempty"`
			Call      json.RawMessage `json:"call"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		call, err := decodeCall(raw.Call)
		if err != nil {
			return nil, err
		}
		return &ConcurrentProcedureCallStmt{stmtBase: base, Postponed: raw.Postponed, Call: call}, nil

	default:
		return nil, fmt.Errorf("unknown concurrent statement kind %q", kind)
	}
}

func decodeGenerateBody(msg json.RawMessage) (*GenerateBody, error) {
	if len(msg) == 0 || string(msg) == "null" {
		return nil, nil
	}
	var raw struct {
		AlternativeLabel *jsonLabel        `json:"alternativeLabel"`
		Decls            []json.RawMessage `json:"decls"`
		Stmts            []json.RawMessage `json:"stmts"`
	}
	if err := json.Unmarshal(msg, &raw); err != nil {
		return nil, err
	}
	label, err := raw.AlternativeLabel.label()
	if err != nil {
		return nil, err
	}
	decls, err := decodeDecls(raw.Decls)
	if err != nil {
		return nil, err
	}
	stmts, err := decodeConcStmts(raw.Stmts)
	if err != nil {
		return nil, err
	}
	return &GenerateBody{AlternativeLabel: label, Decls: decls, Stmts: stmts}, nil
}

func decodeOptExpr(msg json.RawMessage) (Expr, error) {
	if len(msg) == 0 || string(msg) == "null" {
		return nil, nil
	}
	return decodeExpr(msg)
}

func decodeExpr(msg json.RawMessage) (Expr, error) {
	kind, err := kindOf(msg)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "simple_name", "selected_name", "call":
		return decodeName(msg)

	case "int":
		var raw struct {
			Span  *jsonSpan `json:"span"`
			Value int64     `json:"value"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		return &IntegerLiteral{Span: raw.Span.span(), Value: raw.Value}, nil

	case "string":
		var raw struct {
			Span  *jsonSpan `json:"span"`
			Value string    `json:"value"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		return &StringLiteral{Span: raw.Span.span(), Value: raw.Value}, nil

	case "char":
		var raw struct {
			Span  *jsonSpan `json:"span"`
			Value string    `json:"value"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		runes := []rune(raw.Value)
		if len(runes) != 1 {
			return nil, fmt.Errorf("character literal %q is not a single character", raw.Value)
		}
		return &CharacterLiteral{Span: raw.Span.span(), Value: runes[0]}, nil

	case "physical":
		var raw struct {
			Span  *jsonSpan       `json:"span"`
			Value int64           `json:"value"`
			Unit  json.RawMessage `json:"unit"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		unit, err := decodeOptSimpleName(raw.Unit)
		if err != nil {
			return nil, err
		}
		return &PhysicalLiteral{Span: raw.Span.span(), Value: raw.Value, Unit: unit}, nil

	case "unary":
		var raw struct {
			Span    *jsonSpan       `json:"span"`
			Op      *jsonDesignator `json:"op"`
			Operand json.RawMessage `json:"operand"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		op, err := raw.Op.designator()
		if err != nil {
			return nil, err
		}
		operand, err := decodeOptExpr(raw.Operand)
		if err != nil {
			return nil, err
		}
		return &Unary{Span: raw.Span.span(), Op: op, Operand: operand}, nil

	case "binary":
		var raw struct {
			Span  *jsonSpan       `json:"span"`
			Op    *jsonDesignator `json:"op"`
			Left  json.RawMessage `json:"left"`
			Right json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		op, err := raw.Op.designator()
		if err != nil {
			return nil, err
		}
		left, err := decodeOptExpr(raw.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeOptExpr(raw.Right)
		if err != nil {
			return nil, err
		}
		return &Binary{Span: raw.Span.span(), Op: op, Left: left, Right: right}, nil

	default:
		return nil, fmt.Errorf("unknown expression kind %q", kind)
	}
}

func decodeOptName(msg json.RawMessage) (Name, error) {
	if len(msg) == 0 || string(msg) == "null" {
		return nil, nil
	}
	return decodeName(msg)
}

func decodeName(msg json.RawMessage) (Name, error) {
	kind, err := kindOf(msg)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "simple_name":
		return decodeSimpleName(msg)

	case "selected_name":
		var raw struct {
			Span   *jsonSpan       `json:"span"`
			Prefix json.RawMessage `json:"prefix"`
			Suffix json.RawMessage `json:"suffix"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, err
		}
		prefix, err := decodeName(raw.Prefix)
		if err != nil {
			return nil, err
		}
		suffix, err := decodeSimpleName(raw.Suffix)
		if err != nil {
			return nil, err
		}
		return &SelectedName{Span: raw.Span.span(), Prefix: prefix, Suffix: suffix}, nil

	case "call":
		return decodeCall(msg)

	default:
		return nil, fmt.Errorf("expected name, got kind %q", kind)
	}
}

func decodeCall(msg json.RawMessage) (*Call, error) {
	var raw struct {
		Kind   string            `json:"kind"`
		Span   *jsonSpan         `json:"span"`
		Callee json.RawMessage   `json:"callee"`
		Args   []json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(msg, &raw); err != nil {
		return nil, err
	}
	callee, err := decodeName(raw.Callee)
	if err != nil {
		return nil, err
	}
	args, err := decodeAssocs(raw.Args)
	if err != nil {
		return nil, err
	}
	return &Call{Span: raw.Span.span(), Callee: callee, Args: args}, nil
}

func decodeOptSimpleName(msg json.RawMessage) (*SimpleName, error) {
	if len(msg) == 0 || string(msg) == "null" {
		return nil, nil
	}
	return decodeSimpleName(msg)
}

func decodeSimpleName(msg json.RawMessage) (*SimpleName, error) {
	var raw struct {
		Kind       string          `json:"kind,omitempty"`
		Span       *jsonSpan       `json:"span"`
		Designator *jsonDesignator `json:"designator"`
	}
	if err := json.Unmarshal(msg, &raw); err != nil {
		return nil, err
	}
	des, err := raw.Designator.designator()
	if err != nil {
		return nil, err
	}
	return &SimpleName{Span: raw.Span.span(), Designator: des}, nil
}

func decodeNames(msgs []json.RawMessage) ([]Name, error) {
	var names []Name
	for i, msg := range msgs {
		name, err := decodeName(msg)
		if err != nil {
			return nil, fmt.Errorf("name %d: %w", i, err)
		}
		names = append(names, name)
	}
	return names, nil
}

func decodeAssocs(msgs []json.RawMessage) ([]*AssociationElement, error) {
	var assocs []*AssociationElement
	for i, msg := range msgs {
		var raw struct {
			Span   *jsonSpan       `json:"span"`
			Formal json.RawMessage `json:"formal"`
			Actual json.RawMessage `json:"actual"`
		}
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, fmt.Errorf("association %d: %w", i, err)
		}
		formal, err := decodeOptSimpleName(raw.Formal)
		if err != nil {
			return nil, fmt.Errorf("association %d: %w", i, err)
		}
		actual, err := decodeOptExpr(raw.Actual)
		if err != nil {
			return nil, fmt.Errorf("association %d: %w", i, err)
		}
		assocs = append(assocs, &AssociationElement{
			Span:   raw.Span.span(),
			Formal: formal,
			Actual: actual,
		})
	}
	return assocs, nil
}

func decodeOptDiscreteRange(msg json.RawMessage) (*DiscreteRange, error) {
	if len(msg) == 0 || string(msg) == "null" {
		return nil, nil
	}
	var raw struct {
		Span   *jsonSpan       `json:"span"`
		Left   json.RawMessage `json:"left"`
		Right  json.RawMessage `json:"right"`
		Downto bool            `json:"downto,omitempty"`
	}
	if err := json.Unmarshal(msg, &raw); err != nil {
		return nil, err
	}
	left, err := decodeOptExpr(raw.Left)
	if err != nil {
		return nil, err
	}
	right, err := decodeOptExpr(raw.Right)
	if err != nil {
		return nil, err
	}
	return &DiscreteRange{Span: raw.Span.span(), Left: left, Right: right, Downto: raw.Downto}, nil
}
