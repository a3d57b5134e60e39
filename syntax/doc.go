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

// Package syntax is an immutable, arena-backed syntax tree with classified trivia.
//
// A [Tree] is built once by a front end through a [Builder] and never changes
// afterwards. Nodes, tokens and trivia are addressed by stable 1-based handles;
// handle 0 is the "none" sentinel returned by navigation past the ends of the
// tree. A node stores a non-owning back reference to its parent, so handles
// can be passed around freely without ownership concerns.
//
// Every byte of the source text belongs to exactly one token or trivia item:
// the full spans of all tokens tile the text. Trivia after a token up to and
// including the first end of line is that token's trailing trivia, everything
// else leads the following token.
package syntax
