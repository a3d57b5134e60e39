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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/layoutguard/internal/config"
	"fillmore-labs.com/layoutguard/internal/run"
)

// Option configures specific behavior of a [New] layoutguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithWhitespace is an [Option] to configure whether trailing whitespace is reported.
func WithWhitespace(whitespace bool) Option {
	return analyzerOption{name: "whitespace", flag: config.WhitespaceAnalyzer, enabled: whitespace}
}

// WithParams is an [Option] to configure whether parameter list line breaks are checked.
func WithParams(params bool) Option {
	return analyzerOption{name: "params", flag: config.ParamsAnalyzer, enabled: params}
}

// WithChain is an [Option] to configure whether && and || chain line breaks are checked.
func WithChain(chain bool) Option {
	return analyzerOption{name: "chain", flag: config.ChainAnalyzer, enabled: chain}
}

type analyzerOption struct {
	name    string
	flag    config.AnalyzerFlags
	enabled bool
}

func (o analyzerOption) apply(r *run.Options) {
	r.Analyzers.Set(o.flag, o.enabled)
}

func (o analyzerOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithMaxWidth is an [Option] to configure the maximum width of lines holding a single line
// parameter list. Zero disables the check.
func WithMaxWidth(maxWidth int) Option { return maxWidthOption{maxWidth: maxWidth} }

type maxWidthOption struct{ maxWidth int }

func (o maxWidthOption) apply(r *run.Options) {
	r.MaxWidth = o.maxWidth
}

func (o maxWidthOption) LogAttr() slog.Attr {
	return slog.Int("max-width", o.maxWidth)
}

// WithTabWidth is an [Option] to configure the width of a tab for the line width check.
func WithTabWidth(tabWidth int) Option { return tabWidthOption{tabWidth: tabWidth} }

type tabWidthOption struct{ tabWidth int }

func (o tabWidthOption) apply(r *run.Options) {
	r.TabWidth = o.tabWidth
}

func (o tabWidthOption) LogAttr() slog.Attr {
	return slog.Int("tab-width", o.tabWidth)
}
