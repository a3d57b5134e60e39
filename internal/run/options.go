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

package run

import (
	"log/slog"

	"fillmore-labs.com/layoutguard/internal/config"
)

// DefaultTabWidth is the rendered width of a tab, matching gofmt.
const DefaultTabWidth = 8

// Options represent configuration options for the layoutguard analyzer.
type Options struct {
	// Analyzers represent the layout rules to be enabled.
	Analyzers config.Analyzers

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// MaxWidth is the maximum rendered width of lines holding a single line parameter list.
	// Zero disables the check.
	MaxWidth int

	// TabWidth is the rendered width of a tab for the width check.
	TabWidth int
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Analyzers: config.DefaultAnalyzers(),
		Behavior:  config.DefaultBehavior(),
		TabWidth:  DefaultTabWidth,
	}
}

// LogValue implements [slog.LogValuer].
func (r *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("whitespace", r.Analyzers.Enabled(config.WhitespaceAnalyzer)),
		slog.Bool("params", r.Analyzers.Enabled(config.ParamsAnalyzer)),
		slog.Bool("chain", r.Analyzers.Enabled(config.ChainAnalyzer)),
		slog.Bool("generated", r.Behavior.Enabled(config.IncludeGenerated)),
		slog.Int("max-width", r.MaxWidth),
		slog.Int("tab-width", r.TabWidth),
	)
}
