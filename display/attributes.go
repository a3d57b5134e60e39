// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package display

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
)

var (
	// ErrUnsupportedConstant is returned for attribute arguments that can not be rendered.
	ErrUnsupportedConstant = errors.New("unsupported constant")

	// ErrUnsupportedAccessor is returned for accessors of unknown method kind.
	ErrUnsupportedAccessor = errors.New("unsupported accessor")
)

// AttributeParts renders the visible attributes of sym, ordered by their rendered class name.
// Attributes of assemblies get an "assembly:" target.
func AttributeParts(sym *Symbol, opts Options) (Parts, error) {
	return appendAttributes(nil, sym, opts, attributeLayout{
		assembly: sym.Kind == SymbolAssembly,
		newLine:  opts.AddNewLine,
	})
}

type attributeLayout struct {
	assembly, newLine, definition bool
}

func appendAttributes(parts Parts, sym *Symbol, opts Options, layout attributeLayout) (Parts, error) {
	attributes := visibleAttributes(sym, opts, layout.definition)
	if len(attributes) == 0 {
		return parts, nil
	}

	containing, style := sym.Namespace, opts.NamespaceStyle

	slices.SortStableFunc(attributes, func(a, b Attribute) int {
		return cmp.Compare(typeString(a.Class, containing, style), typeString(b.Class, containing, style))
	})

	parts = appendOpen(parts, layout.assembly)

	for i, a := range attributes {
		if i > 0 {
			if opts.SplitAttributes {
				parts = append(parts, Punctuation("]"))
				if layout.newLine {
					parts = append(parts, LineBreak())
				} else {
					parts = append(parts, Space())
				}

				parts = appendOpen(parts, layout.assembly)
			} else {
				parts = append(parts, Punctuation(","), Space())
			}
		}

		parts = appendType(parts, a.Class, containing, style, true)

		if opts.IncludeAttributeArguments {
			var err error
			if parts, err = appendArguments(parts, a, containing, style); err != nil {
				return nil, err
			}
		}
	}

	parts = append(parts, Punctuation("]"))
	if layout.newLine {
		parts = append(parts, LineBreak())
	}

	return parts, nil
}

func visibleAttributes(sym *Symbol, opts Options, definition bool) []Attribute {
	var attributes []Attribute

	for _, a := range sym.Attributes {
		if opts.visible(a.Class, definition) {
			attributes = append(attributes, a)
		}
	}

	return attributes
}

func appendOpen(parts Parts, assembly bool) Parts {
	parts = append(parts, Punctuation("["))
	if assembly {
		parts = append(parts, Keyword("assembly"), Punctuation(":"), Space())
	}

	return parts
}

func appendArguments(parts Parts, a Attribute, containing string, style NamespaceStyle) (Parts, error) {
	if len(a.Arguments) == 0 && len(a.NamedArguments) == 0 {
		return parts, nil
	}

	parts = append(parts, Punctuation("("))

	var err error

	for i, arg := range a.Arguments {
		if i > 0 {
			parts = append(parts, Punctuation(","), Space())
		}

		if parts, err = appendConstant(parts, arg, containing, style); err != nil {
			return nil, err
		}
	}

	for i, arg := range a.NamedArguments {
		if i > 0 || len(a.Arguments) > 0 {
			parts = append(parts, Punctuation(","), Space())
		}

		parts = append(parts, NewPart(PartPropertyName, arg.Name, nil), Space(), Punctuation("="), Space())

		if parts, err = appendConstant(parts, arg.Value, containing, style); err != nil {
			return nil, err
		}
	}

	return append(parts, Punctuation(")")), nil
}

func appendConstant(parts Parts, c Constant, containing string, style NamespaceStyle) (Parts, error) {
	switch c.Kind {
	case ConstantPrimitive:
		if c.Type == nil {
			return nil, fmt.Errorf("primitive constant without type: %w", ErrUnsupportedConstant)
		}

		p, err := primitive(c.Type.SpecialType, c.Value)
		if err != nil {
			return nil, err
		}

		return append(parts, p), nil

	case ConstantEnum:
		if len(c.Fields) == 0 {
			if c.Type == nil {
				return nil, fmt.Errorf("enum constant without type: %w", ErrUnsupportedConstant)
			}

			parts = append(parts, Punctuation("("))
			parts = appendType(parts, c.Type, containing, style, false)
			parts = append(parts, Punctuation(")"), NewPart(PartNumericLiteral, fmt.Sprint(c.Value), nil))

			return parts, nil
		}

		for i, field := range c.Fields {
			if i > 0 {
				parts = append(parts, Space(), Punctuation("|"), Space())
			}

			parts = appendType(parts, field, containing, style, false)
		}

		return parts, nil

	case ConstantType:
		typ, ok := c.Value.(*Symbol)
		if !ok || typ == nil {
			return nil, fmt.Errorf("type constant of %T: %w", c.Value, ErrUnsupportedConstant)
		}

		parts = append(parts, Keyword("typeof"), Punctuation("("))
		parts = appendType(parts, typ, containing, style, false)

		return append(parts, Punctuation(")")), nil

	case ConstantArray:
		if c.Type == nil || c.Type.ElementType == nil {
			return nil, fmt.Errorf("array constant without element type: %w", ErrUnsupportedConstant)
		}

		parts = append(parts, Keyword("new"), Space())
		parts = appendType(parts, c.Type.ElementType, containing, style, false)
		parts = append(parts, Punctuation("["), Punctuation("]"), Space(), Punctuation("{"), Space())

		var err error

		for i, v := range c.Values {
			if i > 0 {
				parts = append(parts, Punctuation(","), Space())
			}

			if parts, err = appendConstant(parts, v, containing, style); err != nil {
				return nil, err
			}
		}

		return append(parts, Space(), Punctuation("}")), nil

	default:
		return nil, fmt.Errorf("constant kind %d: %w", c.Kind, ErrUnsupportedConstant)
	}
}

func primitive(special SpecialType, value any) (Part, error) {
	if value == nil {
		return Keyword("null"), nil
	}

	switch {
	case special == SpecialBoolean:
		if b, ok := value.(bool); ok {
			return Keyword(strconv.FormatBool(b)), nil
		}

	case special.numeric():
		return NewPart(PartNumericLiteral, fmt.Sprint(value), nil), nil

	case special == SpecialChar:
		if r, ok := value.(rune); ok {
			return NewPart(PartStringLiteral, strconv.QuoteRune(r), nil), nil
		}

	case special == SpecialString:
		if s, ok := value.(string); ok {
			return NewPart(PartStringLiteral, strconv.Quote(s), nil), nil
		}
	}

	return Part{}, fmt.Errorf("primitive %v of special type %d: %w", value, special, ErrUnsupportedConstant)
}

// AddParameterAttributes inserts the attributes of every parameter in front of it.
//
// Parameters are matched to the entries of the parameter list of sym in order. Without
// attributes the result equals parts.
func AddParameterAttributes(parts Parts, sym *Symbol, params []*Symbol, opts Options) (Parts, error) {
	start := FindParameterListStart(sym, parts)
	if start < 0 || len(params) == 0 {
		return slices.Clone(parts), nil
	}

	layout := attributeLayout{}

	result := make(Parts, 0, len(parts))
	result = append(result, parts[:start+1]...)

	attributes, err := appendAttributes(nil, params[0], opts, layout)
	if err != nil {
		return nil, err
	}

	if len(attributes) > 0 {
		result = append(result, attributes...)
		result = append(result, Space())
	}

	var d Depth
	d.Step(parts[start])

	param := 0

	for i := start + 1; i < len(parts); i++ {
		p := parts[i]
		result = append(result, p)
		d.Step(p)

		switch {
		case p.Is(PunctComma):
			if !d.TopLevelComma() || i+1 >= len(parts) || !parts[i+1].IsSpace() {
				continue
			}

			if param++; param >= len(params) {
				continue
			}

			attributes, err = appendAttributes(nil, params[param], opts, layout)
			if err != nil {
				return nil, err
			}

			if len(attributes) > 0 {
				result = append(result, Space())
				result = append(result, attributes...)
			}

		case closesParameterList(sym, p, d):
			return append(result, parts[i+1:]...), nil
		}
	}

	return result, nil
}

// AddAccessorAttributes inserts the attributes of accessor in front of its keyword.
func AddAccessorAttributes(parts Parts, accessor *Symbol, opts Options) (Parts, error) {
	attributes, err := appendAttributes(nil, accessor, opts, attributeLayout{})
	if err != nil {
		return nil, err
	}

	if len(attributes) == 0 {
		return slices.Clone(parts), nil
	}

	var keyword string

	switch accessor.MethodKind {
	case MethodPropertyGet:
		keyword = "get"

	case MethodPropertySet:
		keyword = "set"

	case MethodEventAdd:
		keyword = "add"

	case MethodEventRemove:
		keyword = "remove"

	default:
		return nil, fmt.Errorf("method kind %d: %w", accessor.MethodKind, ErrUnsupportedAccessor)
	}

	i := slices.IndexFunc(parts, func(p Part) bool { return p.IsKeyword(keyword) })
	if i < 0 {
		return slices.Clone(parts), nil
	}

	result := make(Parts, 0, len(parts)+len(attributes)+1)
	result = append(result, parts[:i]...)
	result = append(result, attributes...)
	result = append(result, Space())

	return append(result, parts[i:]...), nil
}
