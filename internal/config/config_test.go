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

package config_test

import (
	"testing"

	. "fillmore-labs.com/layoutguard/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(WhitespaceAnalyzer, ChainAnalyzer)

	if !b.Enabled(WhitespaceAnalyzer) || b.Enabled(ParamsAnalyzer) || !b.Enabled(ChainAnalyzer) {
		t.Errorf("Unexpected initial flags")
	}

	b.Set(ParamsAnalyzer, true)
	b.Set(WhitespaceAnalyzer, false)

	if b.Enabled(WhitespaceAnalyzer) || !b.Enabled(ParamsAnalyzer) {
		t.Errorf("Set did not update flags")
	}

	b.Disable(ParamsAnalyzer | ChainAnalyzer)

	if !b.Empty() {
		t.Errorf("Expected empty mask after disabling all flags")
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	analyzers := DefaultAnalyzers()
	for _, flag := range []AnalyzerFlags{WhitespaceAnalyzer, ParamsAnalyzer, ChainAnalyzer} {
		if !analyzers.Enabled(flag) {
			t.Errorf("Analyzer %d not enabled by default", flag)
		}
	}

	if behavior := DefaultBehavior(); behavior.Enabled(IncludeGenerated) {
		t.Error("Generated files included by default")
	}
}
