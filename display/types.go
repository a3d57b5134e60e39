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

import "strings"

const attributeSuffix = "Attribute"

// TypeParts renders a reference to the type or member sym, as seen from the namespace containing.
func TypeParts(sym *Symbol, containing string, style NamespaceStyle) Parts {
	return appendType(nil, sym, containing, style, false)
}

func typeString(sym *Symbol, containing string, style NamespaceStyle) string {
	return TypeParts(sym, containing, style).String()
}

func appendType(parts Parts, sym *Symbol, containing string, style NamespaceStyle, removeAttributeSuffix bool) Parts {
	switch sym.Kind {
	case SymbolNamedType:

	case SymbolTypeParameter:
		return append(parts, NewPart(PartTypeParameterName, sym.Name, sym))

	default: // members
		if sym.ContainingType != nil {
			parts = appendName(parts, sym.ContainingType, omitNamespace(sym.ContainingType, containing, style))
			parts = append(parts, Punctuation("."))
		}

		return append(parts, NewPart(memberPartKind(sym), sym.Name, sym))
	}

	if sym.SpecialType.keyword() {
		return append(parts, NewPart(PartKeyword, sym.Name, sym))
	}

	parts = appendName(parts, sym, omitNamespace(sym, containing, style))

	if last := &parts[len(parts)-1]; removeAttributeSuffix && last.Kind == PartClassName {
		last.Text = strings.TrimSuffix(last.Text, attributeSuffix)
	}

	if len(sym.TypeArguments) == 0 {
		return parts
	}

	parts = append(parts, Punctuation("<"))

	for i, arg := range sym.TypeArguments {
		if i > 0 {
			parts = append(parts, Punctuation(","), Space())
		}

		parts = appendType(parts, arg, containing, style, false)
	}

	return append(parts, Punctuation(">"))
}

// appendName renders the namespace, the containing types and the name of the named type sym.
func appendName(parts Parts, sym *Symbol, omitNamespace bool) Parts {
	if sym.ContainingType != nil {
		parts = appendName(parts, sym.ContainingType, omitNamespace)
		parts = append(parts, Punctuation("."))
	} else if !omitNamespace && sym.Namespace != "" {
		for ns := range strings.SplitSeq(sym.Namespace, ".") {
			parts = append(parts, NewPart(PartNamespaceName, ns, nil), Punctuation("."))
		}
	}

	return append(parts, NewPart(typePartKind(sym.TypeKind), sym.Name, sym))
}

func omitNamespace(sym *Symbol, containing string, style NamespaceStyle) bool {
	switch style {
	case NamespaceOmittedAsContaining:
		return sym.Namespace == containing

	case NamespaceIncluded:
		return false

	default:
		return true
	}
}

func typePartKind(k TypeKind) PartKind {
	switch k {
	case TypeInterface:
		return PartInterfaceName

	case TypeStruct:
		return PartStructName

	case TypeEnum:
		return PartEnumName

	default:
		return PartClassName
	}
}

func memberPartKind(sym *Symbol) PartKind {
	switch sym.Kind {
	case SymbolMethod:
		return PartMethodName

	case SymbolProperty, SymbolEvent:
		return PartPropertyName

	case SymbolParameter:
		return PartParameterName

	case SymbolNamespace:
		return PartNamespaceName

	case SymbolField:
		if sym.ContainingType != nil && sym.ContainingType.TypeKind == TypeEnum {
			return PartEnumMemberName
		}

		return PartFieldName

	default:
		return PartText
	}
}
