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

package gclplugin

import layoutguard "fillmore-labs.com/layoutguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Whitespace enables trailing whitespace checks.
	Whitespace *bool `json:"whitespace,omitzero"`
	// Params enables parameter list checks.
	Params *bool `json:"params,omitzero"`
	// Chain enables && and || chain checks.
	Chain *bool `json:"chain,omitzero"`
	// MaxWidth sets the maximum width of a line holding a single line parameter list.
	MaxWidth *int `json:"max-width,omitzero"`
	// TabWidth sets the rendered width of a tab.
	TabWidth *int `json:"tab-width,omitzero"`
}

// Options converts [Settings] into a list of [layoutguard.Option] for the layoutguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []layoutguard.Option {
	var opts []layoutguard.Option

	opts = appendOption(opts, s.Whitespace, layoutguard.WithWhitespace)
	opts = appendOption(opts, s.Params, layoutguard.WithParams)
	opts = appendOption(opts, s.Chain, layoutguard.WithChain)
	opts = appendOption(opts, s.MaxWidth, layoutguard.WithMaxWidth)
	opts = appendOption(opts, s.TabWidth, layoutguard.WithTabWidth)

	return opts
}

// appendOption appends a non-nil setting to a [layoutguard.Option] list.
func appendOption[T any](opts []layoutguard.Option, value *T, constructor func(T) layoutguard.Option) []layoutguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
