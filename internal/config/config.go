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

package config

// AnalyzerFlags represents the layout rules.
type AnalyzerFlags uint8

const (
	// WhitespaceAnalyzer enables the detection of whitespace before line ends.
	WhitespaceAnalyzer AnalyzerFlags = 1 << iota

	// ParamsAnalyzer enables the detection of badly wrapped parameter lists.
	ParamsAnalyzer

	// ChainAnalyzer enables the detection of inconsistently wrapped operator chains.
	ChainAnalyzer
)

// Config represents behavioral options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota
)

// Analyzers holds the enabled layout rules.
type Analyzers = BitMask[AnalyzerFlags]

// Behavior holds the enabled behavioral options.
type Behavior = BitMask[Config]

// DefaultAnalyzers enables all layout rules.
func DefaultAnalyzers() Analyzers {
	return NewBitMask(WhitespaceAnalyzer, ParamsAnalyzer, ChainAnalyzer)
}

// DefaultBehavior skips generated files.
func DefaultBehavior() Behavior {
	return Behavior{}
}
