// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

type h265FMTP struct {
	parameters map[string]string
}

func (h *h265FMTP) MimeType() string {
	return "video/hevc"
}

func (h *h265FMTP) Match(b FMTP) bool {
	c, ok := b.(*h265FMTP)
	if !ok {
		return false
	}

	// RFC 7798 Section 7.1: profile-space and profile-id default to 0 and 1.
	for _, p := range []struct{ key, def string }{
		{"profile-space", "0"},
		{"profile-id", "1"},
	} {
		if parameterOrDefault(h.parameters, p.key, p.def) != parameterOrDefault(c.parameters, p.key, p.def) {
			return false
		}
	}

	return true
}
