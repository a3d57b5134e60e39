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

// NamespaceStyle selects how namespaces of referenced types are rendered.
type NamespaceStyle uint8

const (
	// NamespaceOmitted never renders namespaces.
	NamespaceOmitted NamespaceStyle = iota

	// NamespaceOmittedAsContaining omits the namespace of types in the namespace of the displayed symbol.
	NamespaceOmittedAsContaining

	// NamespaceIncluded always renders namespaces.
	NamespaceIncluded
)

// DefaultIndentChars is the indentation of broken lists.
const DefaultIndentChars = "    "

// Options control the display rewrites.
type Options struct {
	// IsVisibleAttribute selects the attributes to render. For definitions, nil renders no
	// attributes; for attribute, parameter and accessor rendering, nil renders all attributes.
	IsVisibleAttribute func(class *Symbol) bool

	// IndentChars is the indentation of broken base lists, constraints and parameters.
	IndentChars string

	NamespaceStyle NamespaceStyle

	// FormatBaseList puts every base type on its own line.
	FormatBaseList bool

	// FormatConstraints puts every constraint clause on its own line.
	FormatConstraints bool

	// FormatParameters puts every parameter on its own line.
	FormatParameters bool

	// SplitAttributes renders one bracket pair per attribute.
	SplitAttributes bool

	// IncludeAttributeArguments renders attribute arguments.
	IncludeAttributeArguments bool

	// OmitIEnumerable drops the non-generic enumerable interface when the generic one is present.
	OmitIEnumerable bool

	// UseDefaultLiteral shortens default value expressions to the default literal.
	UseDefaultLiteral bool

	// AddNewLine ends attribute lists with a line break.
	AddNewLine bool
}

// DefaultOptions returns the default [Options].
func DefaultOptions() Options {
	return Options{
		IndentChars:       DefaultIndentChars,
		SplitAttributes:   true,
		UseDefaultLiteral: true,
		AddNewLine:        true,
	}
}

func (o Options) visible(class *Symbol, definition bool) bool {
	if o.IsVisibleAttribute == nil {
		return !definition
	}

	return o.IsVisibleAttribute(class)
}
