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
	"slices"
)

// DefinitionParts renders the definition of sym from its [Symbol.Parts].
//
// Depending on opts it prepends the visible attributes, appends the base type and interfaces
// as a base list, puts constraint clauses and parameters on their own lines and shortens
// default value expressions.
func DefinitionParts(sym *Symbol, opts Options) (Parts, error) {
	parts := sym.Parts

	hasAttributes := opts.IsVisibleAttribute != nil && len(visibleAttributes(sym, opts, true)) > 0

	baseType, interfaces := baseList(sym, opts.OmitIEnumerable)

	baseCount := len(interfaces)
	if baseType != nil {
		baseCount++
	}

	where, constraints := -1, 0

	for i, p := range parts {
		if p.IsKeyword("where") {
			if where < 0 {
				where = i
			}

			constraints++
		}
	}

	hasDefault := slices.ContainsFunc(sym.Parameters, func(p *Symbol) bool { return p.HasExplicitDefaultValue })

	if !hasAttributes &&
		baseCount == 0 &&
		constraints == 0 &&
		(!opts.FormatParameters || len(sym.Parameters) <= 1) &&
		(!opts.UseDefaultLiteral || !hasDefault) {
		return slices.Clone(parts), nil
	}

	containing, style := sym.Namespace, opts.NamespaceStyle

	result, err := appendAttributes(make(Parts, 0, len(parts)+8), sym, opts, attributeLayout{newLine: true, definition: true})
	if err != nil {
		return nil, err
	}

	head := parts
	if where >= 0 {
		head = parts[:where]
	}

	result = append(result, head...)

	if baseCount > 0 {
		if where < 0 {
			result = append(result, Space())
		}

		result = append(result, Punctuation(":"), Space())

		separate := func() {
			result = append(result, Punctuation(","))
			if opts.FormatBaseList {
				result = append(result, LineBreak(), Indentation(opts.IndentChars))
			} else {
				result = append(result, Space())
			}
		}

		if baseType != nil {
			result = appendType(result, baseType, containing, style, false)
			if len(interfaces) > 0 {
				separate()
			}
		}

		slices.SortStableFunc(interfaces, func(x, y *Symbol) int {
			if x.Namespace != y.Namespace {
				return cmp.Compare(x.Namespace, y.Namespace)
			}

			return cmp.Compare(typeString(x, containing, style), typeString(y, containing, style))
		})

		for i, iface := range interfaces {
			if i > 0 {
				separate()
			}

			result = appendType(result, iface, containing, style, false)
		}

		if where >= 0 && (!opts.FormatConstraints || baseCount == 1 && constraints == 1) {
			result = append(result, Space())
		}
	}

	if where >= 0 {
		for _, p := range parts[where:] {
			switch {
			case p.IsKeyword("where"):
				if opts.FormatConstraints && (baseCount > 1 || constraints > 1) {
					if n := len(result); n > 0 && result[n-1].IsSpace() {
						result = result[:n-1]
					}

					result = append(result, LineBreak(), Indentation(opts.IndentChars))
				}

				result = append(result, p)

			case p.Kind.IsTypeName() && p.Symbol != nil && p.Symbol.Kind == SymbolNamedType:
				result = appendType(result, p.Symbol, containing, style, false)

			default:
				result = append(result, p)
			}
		}
	}

	if opts.FormatParameters && len(sym.Parameters) > 1 {
		result = FormatParameters(sym, result, opts.IndentChars)
	}

	if opts.UseDefaultLiteral && hasDefault {
		result = ReplaceDefaultExpressionWithDefaultLiteral(sym, result)
	}

	return result, nil
}

// baseList returns the base type, if it is not the root object type, and the interfaces of sym.
func baseList(sym *Symbol, omitIEnumerable bool) (*Symbol, []*Symbol) {
	if sym.Kind != SymbolNamedType {
		return nil, nil
	}

	var baseType *Symbol
	if sym.TypeKind == TypeClass || sym.TypeKind == TypeInterface {
		if baseType = sym.BaseType; baseType != nil && baseType.SpecialType == SpecialObject {
			baseType = nil
		}
	}

	interfaces := slices.Clone(sym.Interfaces)

	if omitIEnumerable && slices.ContainsFunc(interfaces, func(s *Symbol) bool { return s.SpecialType == SpecialGenericEnumerable }) {
		interfaces = slices.DeleteFunc(interfaces, func(s *Symbol) bool { return s.SpecialType == SpecialEnumerable })
	}

	return baseType, interfaces
}
