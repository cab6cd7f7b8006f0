////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"regexp"
	"strings"
)

// shortCodeMatcher matches one :short_code: token: a colon, one or more
// word characters, pluses, or minuses, and a closing colon. The extra
// characters cover codes like "+1" and "-1".
var shortCodeMatcher = regexp.MustCompile(`:([\w+-]+):`)

// ReplaceShortCodes replaces every known :short_code: token in the message
// with its emoji glyph. Lookup ignores case; tokens that do not name a
// known emoji are left exactly as written, closing colons included.
func (m *Manager) ReplaceShortCodes(text string) string {
	matches := shortCodeMatcher.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	lastEnd := 0

	for _, match := range matches {
		code := strings.ToLower(text[match[2]:match[3]])
		rec, exists := m.byShortCode[code]
		if !exists {
			continue
		}

		sb.WriteString(text[lastEnd:match[0]])
		sb.WriteString(rec.Glyph)
		lastEnd = match[1]
	}

	sb.WriteString(text[lastEnd:])
	return sb.String()
}
