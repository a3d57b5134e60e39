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
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"fillmore-labs.com/layoutguard/internal/run"
)

// ErrUnknownSetting is returned for configuration file keys layoutguard does not know.
var ErrUnknownSetting = errors.New("unknown setting")

// fileSettings is the content of a layoutguard TOML configuration file.
type fileSettings struct {
	Whitespace *bool `toml:"whitespace"`
	Params     *bool `toml:"params"`
	Chain      *bool `toml:"chain"`
	Generated  *bool `toml:"generated"`
	MaxWidth   *int  `toml:"max-width"`
	TabWidth   *int  `toml:"tab-width"`
}

// LoadConfig reads the TOML configuration file at path and returns the options it sets.
//
// Example:
//
//	params = true
//	chain = false
//	max-width = 120
func LoadConfig(path string) (Options, error) {
	var s fileSettings

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownSetting, undecoded[0].String())
	}

	var opts Options

	if s.Whitespace != nil {
		opts = append(opts, WithWhitespace(*s.Whitespace))
	}

	if s.Params != nil {
		opts = append(opts, WithParams(*s.Params))
	}

	if s.Chain != nil {
		opts = append(opts, WithChain(*s.Chain))
	}

	if s.Generated != nil {
		opts = append(opts, WithGenerated(*s.Generated))
	}

	if s.MaxWidth != nil {
		opts = append(opts, WithMaxWidth(*s.MaxWidth))
	}

	if s.TabWidth != nil {
		opts = append(opts, WithTabWidth(*s.TabWidth))
	}

	return opts, nil
}

// configValue is a [flag.Value] applying a configuration file to [run.Options].
type configValue struct {
	r    *run.Options
	path *string
}

// Set implements [flag.Value].
func (c configValue) Set(path string) error {
	opts, err := LoadConfig(path)
	if err != nil {
		return err
	}

	opts.apply(c.r)
	*c.path = path

	return nil
}

// String implements [flag.Value].
func (c configValue) String() string {
	if c.path == nil {
		return ""
	}

	return *c.path
}
