// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtpformat

import (
	"errors"
)

var (
	// ErrUnsupportedMediaType indicates an RTP encoding name that has no known MIME type.
	ErrUnsupportedMediaType = errors.New("unsupported RTP media type")

	// ErrInvalidArgument indicates the caller broke a precondition of the function.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidRTPMap indicates an rtpmap attribute value that could not be tokenized.
	ErrInvalidRTPMap = errors.New("invalid rtpmap attribute")

	// ErrInvalidFmtp indicates an fmtp attribute value that could not be tokenized.
	ErrInvalidFmtp = errors.New("invalid fmtp attribute")

	// ErrNoRTPMap indicates that a media description carries no rtpmap for the payload type.
	ErrNoRTPMap = errors.New("no rtpmap for payload type")

	errNilMediaDescription = errors.New("nil media description")
)
