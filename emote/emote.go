////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

// Package emote defines the resolved display form of an emoji record and
// the vendor capability flags used to pick which provider's image a record
// renders with.
package emote

import (
	"strings"

	jww "github.com/spf13/jwalterweatherman"
)

// DefaultScale is the fixed factor emoji images are downscaled by when
// rendered inline with chat text.
const DefaultScale = 0.35

// DefaultPrefix is the image URL prefix used when the prefix table has no
// entry for the vendor being resolved.
const DefaultPrefix = "https://pajbot.com/static/emoji-v2/img/twitter/64/"

// Emote is the resolved display reference for one emoji record under the
// active emoji set. Emotes are immutable once built; a preference change
// produces a fresh emote rather than mutating one in place.
type Emote struct {
	// Name is the emoji glyph itself, used as the emote's display name.
	Name string

	// URL locates the vendor image asset for the glyph.
	URL string

	// Tooltip is the hover text: the primary short code on the first line
	// and the word "Emoji" on the second.
	Tooltip string

	// Scale is the factor the image is downscaled by at render time.
	Scale float64
}

// PrefixTable maps each vendor to the base URL its emoji images are served
// from. Tables are fixed at construction; only the set preference changes
// at runtime.
type PrefixTable map[Vendor]string

// DefaultPrefixTable returns the bundled CDN prefixes for all four vendors.
func DefaultPrefixTable() PrefixTable {
	return PrefixTable{
		Twitter:  "https://pajbot.com/static/emoji-v2/img/twitter/64/",
		Facebook: "https://pajbot.com/static/emoji-v2/img/facebook/64/",
		Apple:    "https://pajbot.com/static/emoji-v2/img/apple/64/",
		Google:   "https://pajbot.com/static/emoji-v2/img/google/64/",
	}
}

// ParsePrefixTable converts a vendor-name-keyed configuration map into a
// PrefixTable. Key matching ignores case, since config layers lowercase
// their keys. Names that do not name a vendor at all are dropped with a
// diagnostic so one bad key cannot take down the rest of the table.
func ParsePrefixTable(prefixes map[string]string) PrefixTable {
	pt := make(PrefixTable, len(prefixes))
	for name, prefix := range prefixes {
		v, ok := parseVendorFold(name)
		if !ok {
			jww.WARN.Printf(
				"Dropping image URL prefix for unknown vendor %q", name)
			continue
		}
		pt[v] = prefix
	}
	return pt
}

// URL builds the image URL for the given vendor and unified codepoint
// sequence. The unified code is lowercased to match the CDN file naming.
// Vendors missing from the table fall back to DefaultPrefix.
func (pt PrefixTable) URL(vendor Vendor, unified string) string {
	prefix, ok := pt[vendor]
	if !ok {
		prefix = DefaultPrefix
	}
	return prefix + strings.ToLower(unified) + ".png"
}
