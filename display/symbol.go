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

//go:generate go tool stringer -type=SymbolKind -trimprefix=Symbol

// SymbolKind classifies symbols.
type SymbolKind uint8

const (
	SymbolNone SymbolKind = iota
	SymbolMethod
	SymbolNamedType
	SymbolProperty
	SymbolEvent
	SymbolField
	SymbolParameter
	SymbolAssembly
	SymbolNamespace
	SymbolTypeParameter
)

// opensParen reports whether the parameter list of symbols of kind k is parenthesized.
func (k SymbolKind) opensParen() bool { return k == SymbolMethod || k == SymbolNamedType }

// opensBracket reports whether the parameter list of symbols of kind k is bracketed (indexers).
func (k SymbolKind) opensBracket() bool { return k == SymbolProperty }

// MethodKind classifies methods.
type MethodKind uint8

const (
	MethodOrdinary MethodKind = iota
	MethodConstructor
	MethodPropertyGet
	MethodPropertySet
	MethodEventAdd
	MethodEventRemove
)

// TypeKind classifies named types.
type TypeKind uint8

const (
	TypeNone TypeKind = iota
	TypeClass
	TypeInterface
	TypeStruct
	TypeEnum
)

// SpecialType identifies types with a fixed meaning.
type SpecialType uint8

const (
	SpecialNone SpecialType = iota
	SpecialObject
	SpecialBoolean
	SpecialChar
	SpecialSByte
	SpecialByte
	SpecialInt16
	SpecialUInt16
	SpecialInt32
	SpecialUInt32
	SpecialInt64
	SpecialUInt64
	SpecialSingle
	SpecialDouble
	SpecialString

	// SpecialEnumerable is the non-generic enumerable interface.
	SpecialEnumerable

	// SpecialGenericEnumerable marks any construction of the generic enumerable interface.
	SpecialGenericEnumerable
)

func (s SpecialType) numeric() bool { return s >= SpecialSByte && s <= SpecialDouble }

// keyword reports whether types of s are rendered by their keyword.
func (s SpecialType) keyword() bool { return s >= SpecialObject && s <= SpecialString }

// Symbol describes a declared entity as far as display needs it.
type Symbol struct {
	// Name is the simple name.
	Name string

	// Namespace is the dotted name of the containing namespace, empty for the global namespace.
	Namespace string

	// ContainingType is the enclosing type of nested types and members.
	ContainingType *Symbol

	// Parts is the rendering of the declaration the rewrites start from.
	Parts Parts

	// BaseType is the base class of classes.
	BaseType *Symbol

	// Interfaces are the directly implemented interfaces of types.
	Interfaces []*Symbol

	// TypeArguments are the type arguments of constructed types: named types or type parameters.
	TypeArguments []*Symbol

	// ElementType is the element type of array types.
	ElementType *Symbol

	Attributes []Attribute
	Parameters []*Symbol

	Kind        SymbolKind
	TypeKind    TypeKind
	MethodKind  MethodKind
	SpecialType SpecialType

	// HasExplicitDefaultValue is set on parameters declaring a default value.
	HasExplicitDefaultValue bool
}

// Attribute is an applied attribute.
type Attribute struct {
	// Class is the attribute type.
	Class *Symbol

	Arguments      []Constant
	NamedArguments []NamedArgument
}

// NamedArgument is a property assignment of an attribute application.
type NamedArgument struct {
	Name  string
	Value Constant
}

// ConstantKind classifies constant values.
type ConstantKind uint8

const (
	ConstantInvalid ConstantKind = iota
	ConstantPrimitive
	ConstantEnum
	ConstantType
	ConstantArray
)

// Constant is a compile time constant used as attribute argument.
type Constant struct {
	// Type is the type of the constant. For arrays it has an ElementType.
	Type *Symbol

	// Value is a bool, number, rune or string for primitives (nil for null),
	// the underlying integer for enums and a *Symbol for types.
	Value any

	// Values are the elements of arrays.
	Values []Constant

	// Fields are the enum members combining into Value, if any.
	Fields []*Symbol

	Kind ConstantKind
}
