////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"gitlab.com/elixxir/emoji/dataset"
	"gitlab.com/elixxir/emoji/emote"
)

// maxGlyphScalars caps how many codepoints a single glyph may decode to.
// The longest sequences in the emoji-data table (family combinations and
// subdivision flags) stay within this bound; anything longer indicates a
// corrupt entry.
const maxGlyphScalars = 9

// Record is one recognizable emoji: the glyph the scanner searches for,
// the codes it resolves image URLs from, and the vendors that can supply
// an image. Records are immutable once loaded.
type Record struct {
	// ShortCodes lists the colon-style names for the emoji, the primary
	// name first. Synthesized skin tone variants carry exactly one.
	ShortCodes []string

	// Unified is the fully-qualified codepoint sequence from the dataset,
	// kept in its original uppercase hyphen-joined form for URL building.
	Unified string

	// NonQualified is the unqualified form, when the dataset has one.
	NonQualified string

	// Glyph is the emoji string itself, decoded from NonQualified when
	// present, otherwise from Unified.
	Glyph string

	// Capabilities flags the vendors that ship an image for this emoji.
	Capabilities emote.Vendors

	// idx is the record's position in the manager's record list and in
	// every resolved emote table.
	idx int

	// scalarLen is the number of codepoints in Glyph. Candidate lists are
	// ordered by it so the scanner always tries longer glyphs first.
	scalarLen int
}

// parseEntry converts a raw dataset entry into a Record. The short code
// override is used for skin tone variants, which carry no short names of
// their own; pass "" to take the entry's short names verbatim. An error
// marks the entry as malformed and the caller drops it.
func parseEntry(entry *dataset.Entry, shortCodeOverride string) (*Record, error) {
	rec := &Record{
		Unified:      entry.Unified,
		NonQualified: entry.NonQualified,
	}

	if shortCodeOverride != "" {
		rec.ShortCodes = []string{shortCodeOverride}
	} else {
		rec.ShortCodes = append(rec.ShortCodes, entry.ShortNames...)
	}
	if len(rec.ShortCodes) == 0 {
		return nil, errors.New("entry has no short names")
	}

	code := entry.NonQualified
	if code == "" {
		code = entry.Unified
	}
	if code == "" {
		return nil, errors.New(
			"entry has neither a unified nor a non-qualified code")
	}

	var err error
	rec.Glyph, rec.scalarLen, err = decodeGlyph(code)
	if err != nil {
		return nil, err
	}

	if entry.HasImgApple {
		rec.Capabilities.Add(emote.Apple)
	}
	if entry.HasImgGoogle {
		rec.Capabilities.Add(emote.Google)
	}
	if entry.HasImgTwitter {
		rec.Capabilities.Add(emote.Twitter)
	}
	if entry.HasImgFacebook {
		rec.Capabilities.Add(emote.Facebook)
	}

	return rec, nil
}

// decodeGlyph converts a hyphen-joined hexadecimal codepoint sequence
// (e.g. "2764-200D-1F525") into the emoji string it denotes, returning the
// string and its codepoint count.
func decodeGlyph(code string) (string, int, error) {
	parts := strings.Split(code, "-")
	if len(parts) > maxGlyphScalars {
		return "", 0, errors.Errorf("code %q decodes to %d codepoints, "+
			"limit is %d", code, len(parts), maxGlyphScalars)
	}

	runes := make([]rune, 0, len(parts))
	for _, part := range parts {
		cp, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return "", 0, errors.Wrapf(
				err, "invalid codepoint %q in code %q", part, code)
		}
		if !utf8.ValidRune(rune(cp)) {
			return "", 0, errors.Errorf(
				"codepoint %q in code %q is not a Unicode scalar value",
				part, code)
		}
		runes = append(runes, rune(cp))
	}

	return string(runes), len(runes), nil
}
