// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package fmtp implements per codec handling of fmtp parameters
package fmtp

import (
	"strings"
)

// ParseParameters parses the parameter list of an fmtp attribute.
// Keys are lower-cased, empty entries are ignored.
func ParseParameters(line string) map[string]string {
	parameters := make(map[string]string)

	for _, p := range strings.Split(line, ";") {
		pp := strings.SplitN(strings.TrimSpace(p), "=", 2)
		key := strings.ToLower(strings.TrimSpace(pp[0]))
		if key == "" {
			continue
		}
		var value string
		if len(pp) > 1 {
			value = strings.TrimSpace(pp[1])
		}
		parameters[key] = value
	}

	return parameters
}

func paramsEqual(valA, valB map[string]string) bool {
	for k, v := range valA {
		if vb, ok := valB[k]; ok && !strings.EqualFold(vb, v) {
			return false
		}
	}

	for k, v := range valB {
		if va, ok := valA[k]; ok && !strings.EqualFold(va, v) {
			return false
		}
	}

	return true
}

// parameterOrDefault returns the value for key, or def when absent.
func parameterOrDefault(parameters map[string]string, key, def string) string {
	if v, ok := parameters[key]; ok {
		return v
	}

	return def
}

// FMTP interface for implementing custom
// FMTP handling based on MimeType.
type FMTP interface {
	// MimeType returns the MimeType associated with
	// the fmtp
	MimeType() string
	// Match compares two fmtp descriptions for
	// compatibility based on the MimeType
	Match(f FMTP) bool
}

// lowerKeys returns a copy of parameters with lower-cased keys,
// fmtp parameter names are case insensitive.
func lowerKeys(parameters map[string]string) map[string]string {
	lowered := make(map[string]string, len(parameters))
	for k, v := range parameters {
		lowered[strings.ToLower(k)] = v
	}

	return lowered
}

// New wraps already tokenized parameters based on the MimeType.
// Keys are matched case insensitively.
func New(mimeType string, parameters map[string]string) FMTP {
	parameters = lowerKeys(parameters)

	switch {
	case strings.EqualFold(mimeType, "video/avc"):
		return &h264FMTP{parameters: parameters}

	case strings.EqualFold(mimeType, "video/hevc"):
		return &h265FMTP{parameters: parameters}

	case strings.EqualFold(mimeType, "video/x-vnd.on2.vp9"):
		return &vp9FMTP{parameters: parameters}

	default:
		return &genericFMTP{
			mimeType:   mimeType,
			parameters: parameters,
		}
	}
}

type genericFMTP struct {
	mimeType   string
	parameters map[string]string
}

func (g *genericFMTP) MimeType() string {
	return g.mimeType
}

// Match returns true if g and b are compatible fmtp descriptions
// The generic implementation is used for MimeTypes that are not defined.
func (g *genericFMTP) Match(b FMTP) bool {
	fmtp, ok := b.(*genericFMTP)
	if !ok {
		return false
	}

	return strings.EqualFold(g.mimeType, fmtp.MimeType()) &&
		paramsEqual(g.parameters, fmtp.parameters)
}
