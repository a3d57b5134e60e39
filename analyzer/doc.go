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

// Package analyzer implements the layoutguard static analysis pass.
//
// # Overview
//
// LayoutGuard checks the layout of Go source beyond what gofmt normalizes: where lines
// break and how wrapped code is indented.
//
// # Rules
//
//   - lg:ws reports whitespace at the end of a line, outside of raw strings and comments.
//   - lg:prm reports parameter lists that span several lines without one parameter
//     per line and, with -max-width, single line parameter lists on overlong lines.
//   - lg:chn reports chains of && or || where only some operators end their line.
//
// # Example
//
// Before:
//
//	func process(ctx context.Context, data []byte,
//	    opts Options) error {
//
// After applying layoutguard's suggested fix:
//
//	func process(
//	    ctx context.Context,
//	    data []byte,
//	    opts Options) error {
//
// # Configuration
//
// Rules are switched with -whitespace, -params and -chain. Settings can also be read from a
// TOML file with -config, using the flag names as keys:
//
//	chain = false
//	max-width = 120
//
// Findings can be suppressed with a //nolint:layoutguard comment at the end of the line,
// or for a whole file in the comment preceding the package clause.
package analyzer
