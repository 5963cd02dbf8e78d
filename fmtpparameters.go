// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtpformat

import (
	"maps"
	"sort"
	"strconv"
	"strings"
)

// FmtpParameters is an immutable set of format parameters, mapped from the
// fmtp attribute. The zero value is an empty set.
type FmtpParameters struct {
	parameters map[string]string
}

// NewFmtpParameters copies parameters, later changes to the source map are not
// observed by the returned value.
func NewFmtpParameters(parameters map[string]string) FmtpParameters {
	return FmtpParameters{parameters: maps.Clone(parameters)}
}

// Get returns the value for key.
func (p FmtpParameters) Get(key string) (string, bool) {
	v, ok := p.parameters[key]

	return v, ok
}

// Len returns the number of parameters.
func (p FmtpParameters) Len() int {
	return len(p.parameters)
}

// Keys returns the parameter keys in ascending order.
func (p FmtpParameters) Keys() []string {
	keys := make([]string, 0, len(p.parameters))
	for k := range p.parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Map returns a copy of the parameters.
func (p FmtpParameters) Map() map[string]string {
	m := make(map[string]string, len(p.parameters))
	for k, v := range p.parameters {
		m[k] = v
	}

	return m
}

// Equal returns true if both sets hold the same keys with the same values.
func (p FmtpParameters) Equal(o FmtpParameters) bool {
	return maps.Equal(p.parameters, o.parameters)
}

// Hash returns a hash of the parameters that does not depend on insertion order.
func (p FmtpParameters) Hash() uint64 {
	h := newHasher()
	for _, k := range p.Keys() {
		h.writeString(k)
		h.writeString(p.parameters[k])
	}

	return h.sum()
}

// String returns the parameters as an fmtp parameter list with sorted keys,
// for instance "packetization-mode=1;profile-level-id=42001f".
func (p FmtpParameters) String() string {
	var b strings.Builder
	for i, k := range p.Keys() {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k)
		if v := p.parameters[k]; v != "" {
			b.WriteByte('=')
			b.WriteString(v)
		}
	}

	return b.String()
}

// canonical is an unambiguous encoding of the parameters, used in PayloadFormatKey.
func (p FmtpParameters) canonical() string {
	var b strings.Builder
	for _, k := range p.Keys() {
		b.WriteString(strconv.Quote(k))
		b.WriteByte('=')
		b.WriteString(strconv.Quote(p.parameters[k]))
		b.WriteByte(';')
	}

	return b.String()
}
