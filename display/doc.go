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

// Package display assembles and rewrites display part sequences of symbol definitions.
//
// A display part sequence is the rendering of a declaration as a flat list of classified
// text segments. The rewrites in this package insert attributes, base lists and constraints,
// break parameter lists over several lines and shorten default value expressions. All of them
// are specializations of a single left-to-right scan tracking the nesting depth of
// parentheses, braces, brackets and angle brackets, see [Depth].
//
// Functions never modify their input sequences.
package display
