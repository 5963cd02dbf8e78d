// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

import (
	"encoding/hex"
)

// RFC 6184 Section 8.1: Constrained Baseline, level 1.0.
const h264DefaultProfileLevelID = "42000a"

func profileLevelIDMatches(a, b string) bool {
	aa, err := hex.DecodeString(a)
	if err != nil || len(aa) < 2 {
		return false
	}
	bb, err := hex.DecodeString(b)
	if err != nil || len(bb) < 2 {
		return false
	}

	return aa[0] == bb[0] && aa[1] == bb[1]
}

type h264FMTP struct {
	parameters map[string]string
}

func (h *h264FMTP) MimeType() string {
	return "video/avc"
}

// Match returns true if h and b are compatible fmtp descriptions
// Based on RFC6184 Section 8.2.2:
//
//	The parameters identifying a media format configuration for H.264
//	are profile-level-id and packetization-mode.  These media format
//	configuration parameters (except for the level part of profile-
//	level-id) MUST be used symmetrically.
func (h *h264FMTP) Match(b FMTP) bool {
	c, ok := b.(*h264FMTP)
	if !ok {
		return false
	}

	// test packetization-mode
	if parameterOrDefault(h.parameters, "packetization-mode", "0") !=
		parameterOrDefault(c.parameters, "packetization-mode", "0") {
		return false
	}

	// test profile-level-id, the level part is ignored
	return profileLevelIDMatches(
		parameterOrDefault(h.parameters, "profile-level-id", h264DefaultProfileLevelID),
		parameterOrDefault(c.parameters, "profile-level-id", h264DefaultProfileLevelID),
	)
}
