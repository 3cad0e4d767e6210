// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package config loads the TOML configuration of the planner service.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"

	"github.com/wangyf0555/incubator-doris/pkg/util/logutil"
)

// Config is the top level configuration.
type Config struct {
	Log     Log     `toml:"log"`
	Planner Planner `toml:"planner"`
}

// Log is the logging section.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Planner is the planner section.
type Planner struct {
	// DisabledRules lists exploration rule names to mask out, e.g.
	// "join_exchange".
	DisabledRules []string `toml:"disabled-rules"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Log: Log{
			Level:  logutil.DefaultLogLevel,
			Format: logutil.DefaultLogFormat,
		},
	}
}

// Load reads the configuration file at path over the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("config file %s contains unknown item %v", path, undecoded[0].String())
	}
	return cfg, nil
}
