// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

type vp9FMTP struct {
	parameters map[string]string
}

func (h *vp9FMTP) MimeType() string {
	return "video/x-vnd.on2.vp9"
}

func (h *vp9FMTP) Match(b FMTP) bool {
	c, ok := b.(*vp9FMTP)
	if !ok {
		return false
	}

	// RTP Payload Format for VP9 Video - RFC 9628
	// If no profile-id is present, Profile 0 MUST be inferred
	return parameterOrDefault(h.parameters, "profile-id", "0") ==
		parameterOrDefault(c.parameters, "profile-id", "0")
}
