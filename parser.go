// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtpformat

import (
	"fmt"
	"strconv"

	"github.com/pion/logging"
	"github.com/pion/sdp/v3"
)

type parserOptions struct {
	loggerFactory logging.LoggerFactory
}

// ParserOption is a function that configures a Parser.
type ParserOption func(*parserOptions)

// WithLoggerFactory sets the logger factory used by the Parser.
func WithLoggerFactory(loggerFactory logging.LoggerFactory) ParserOption {
	return func(o *parserOptions) {
		o.loggerFactory = loggerFactory
	}
}

// Parser builds PayloadFormats from parsed session descriptions.
// It holds no state besides its logger and is safe for concurrent use.
type Parser struct {
	log logging.LeveledLogger
}

// NewParser creates a Parser.
func NewParser(opts ...ParserOption) *Parser {
	o := parserOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.loggerFactory == nil {
		o.loggerFactory = logging.NewDefaultLoggerFactory()
	}

	return &Parser{
		log: o.loggerFactory.NewLogger("rtpformat"),
	}
}

// PayloadFormat builds the PayloadFormat of payloadType in md.
// Unsupported encodings return an error wrapping ErrUnsupportedMediaType.
func (p *Parser) PayloadFormat(md *sdp.MediaDescription, payloadType uint8) (PayloadFormat, error) {
	desc, err := MediaDescriptionFromSDP(md, payloadType)
	if err != nil {
		return PayloadFormat{}, err
	}

	if !IsFormatSupported(desc) {
		return PayloadFormat{}, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, desc.RTPMap.MediaEncoding)
	}

	format, err := NewFormat(desc)
	if err != nil {
		return PayloadFormat{}, err
	}

	payloadFormat := NewPayloadFormat(format, desc.RTPMap.PayloadType, desc.RTPMap.ClockRate, desc.FmtpParameters)
	p.log.Debugf("Resolved %s track: %s", desc.MediaType, payloadFormat)

	return payloadFormat, nil
}

// PayloadFormats returns the PayloadFormat of every track in sd, using the
// first format of each media description. Tracks that cannot be played are
// skipped and logged.
func (p *Parser) PayloadFormats(sd *sdp.SessionDescription) []PayloadFormat {
	if sd == nil {
		return nil
	}

	payloadFormats := make([]PayloadFormat, 0, len(sd.MediaDescriptions))

	for i, md := range sd.MediaDescriptions {
		if md == nil || len(md.MediaName.Formats) == 0 {
			p.log.Warnf("Skipping track %d: no formats", i)

			continue
		}

		payloadType, err := strconv.ParseUint(md.MediaName.Formats[0], 10, 8)
		if err != nil {
			p.log.Warnf("Skipping track %d: invalid payload type %s", i, md.MediaName.Formats[0])

			continue
		}

		payloadFormat, err := p.PayloadFormat(md, uint8(payloadType))
		if err != nil {
			p.log.Warnf("Skipping track %d: %v", i, err)

			continue
		}

		payloadFormats = append(payloadFormats, payloadFormat)
	}

	return payloadFormats
}
