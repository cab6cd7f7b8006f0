////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"strings"
	"unicode/utf8"

	"gitlab.com/elixxir/emoji/emote"
)

// Segment is one piece of a scanned message: either a literal text span or
// a recognized emoji. Exactly one of the two fields is set.
type Segment struct {
	// Text is the literal span, empty when the segment is an emote.
	Text string

	// Emote is the recognized emoji's display reference, nil for literal
	// spans.
	Emote *emote.Emote
}

// IsEmote reports whether the segment is a recognized emoji.
func (s Segment) IsEmote() bool {
	return s.Emote != nil
}

// Scan splits the message into literal text spans and recognized emoji, in
// order. At each position the longest known glyph wins and scanning
// resumes after it, so an emoji that extends another is never broken up.
// Text between matches is passed through byte-for-byte, and a message with
// no emoji comes back as a single literal segment. Every emote in the
// result comes from the same resolved table, even if the preferred set
// changes mid-scan.
func (m *Manager) Scan(text string) []Segment {
	table := m.table()

	var segments []Segment
	lastEnd := 0

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		var matched *Record
		// Candidates are sorted by descending glyph length, so the first
		// one that fits is the longest match at this position.
		for _, rec := range m.byFirstRune[r] {
			if strings.HasPrefix(text[i:], rec.Glyph) {
				matched = rec
				break
			}
		}

		if matched == nil {
			i += size
			continue
		}

		if i > lastEnd {
			segments = append(segments, Segment{Text: text[lastEnd:i]})
		}
		segments = append(segments, Segment{Emote: table.emotes[matched.idx]})

		i += len(matched.Glyph)
		lastEnd = i
	}

	if lastEnd < len(text) {
		segments = append(segments, Segment{Text: text[lastEnd:]})
	}

	return segments
}
