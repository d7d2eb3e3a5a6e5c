// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package file

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser reads small identity and configuration files such as /etc/os-release
// and the DMI attributes under /sys/devices/virtual/dmi/id.
type Parser struct {
	maxSize      int
	skipComments bool
	kvDelimiter  string
	unquote      bool
}

// WithMaxSize sets the maximum size (in bytes) of the file to be parsed.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether to skip comment lines in the file.
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithKVDelimiter sets the key-value delimiter used by Lookup.
// Default is "=".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithUnquote strips surrounding quotes from values returned by Lookup
// as described by Unquote. Default is true.
func WithUnquote(unquote bool) Option {
	return func(p *Parser) {
		p.unquote = unquote
	}
}

// NewParser creates a new file parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize:      1 << 20, // 1MB default
		skipComments: true,
		kvDelimiter:  "=",
		unquote:      true,
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ReadValue returns the whole file content with surrounding whitespace removed.
// DMI attribute files hold a single newline-terminated value.
func (p *Parser) ReadValue(path string) (string, error) {
	b, err := p.read(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Lookup scans the file line by line and returns the value of the first line
// whose key equals key. Later duplicates are ignored. The boolean is false when
// no line carries the key.
func (p *Parser) Lookup(path, key string) (string, bool, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return "", false, err
	}

	prefix := key + p.kvDelimiter
	for _, line := range lines {
		value, ok := strings.CutPrefix(line, prefix)
		if !ok {
			continue
		}
		if p.unquote {
			value = Unquote(value)
		}
		return strings.TrimSpace(value), true, nil
	}

	slog.Debug("key not found in file", "path", path, "key", key)
	return "", false, nil
}

// GetLines reads the file at the given path and returns its non-empty lines
// with surrounding whitespace removed. An error is returned if the file cannot
// be read, exceeds the maximum size, or contains invalid UTF-8 content.
func (p *Parser) GetLines(path string) ([]string, error) {
	b, err := p.read(path)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(string(b), "\n")

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		cleanPart := strings.TrimSpace(part)
		if cleanPart == "" {
			continue
		}

		if p.skipComments && strings.HasPrefix(cleanPart, "#") {
			continue
		}

		result = append(result, cleanPart)
	}

	return result, nil
}

func (p *Parser) read(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if len(b) > p.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, p.maxSize)
	}

	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	return b, nil
}

// Unquote strips a leading and a trailing double quote independently, so an
// unbalanced value still loses its stray quote. Single quotes are removed
// only as a matching pair.
//
//	"Pop!_OS 22.04 LTS"  -> Pop!_OS 22.04 LTS
//	"Pop                 -> Pop
//	'"nested"'           -> "nested"
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
