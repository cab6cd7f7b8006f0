////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"reflect"
	"testing"

	"gitlab.com/elixxir/emoji/dataset"
	"gitlab.com/elixxir/emoji/emote"
)

// Tests that parseEntry copies the entry's short names verbatim when no
// override is given and uses exactly the override when one is.
func Test_parseEntry_ShortCodes(t *testing.T) {
	entry := &dataset.Entry{
		Unified:    "1F44D",
		ShortNames: []string{"thumbsup", "+1"},
	}

	rec, err := parseEntry(entry, "")
	if err != nil {
		t.Fatalf("Failed to parse entry: %+v", err)
	}
	if !reflect.DeepEqual(rec.ShortCodes, entry.ShortNames) {
		t.Errorf("Short codes not copied verbatim."+
			"\nexpected: %q\nreceived: %q", entry.ShortNames, rec.ShortCodes)
	}

	rec, err = parseEntry(entry, "thumbsup_tone3")
	if err != nil {
		t.Fatalf("Failed to parse entry with override: %+v", err)
	}
	if !reflect.DeepEqual(rec.ShortCodes, []string{"thumbsup_tone3"}) {
		t.Errorf("Override did not replace the short code list."+
			"\nexpected: %q\nreceived: %q",
			[]string{"thumbsup_tone3"}, rec.ShortCodes)
	}
}

// Tests the malformed-entry conditions: no short names, neither code
// present, a code past the codepoint cap, and codes that do not decode.
func Test_parseEntry_Malformed(t *testing.T) {
	tests := map[string]*dataset.Entry{
		"no short names": {Unified: "1F600"},
		"no codes":       {ShortNames: []string{"nothing"}},
		"too many codepoints": {
			ShortNames: []string{"runaway"},
			Unified: "1F468-200D-1F469-200D-1F467-200D-1F466-200D-" +
				"1F468-200D-1F469-200D-1F467-200D-1F466-200D-1F466-" +
				"200D-1F466",
		},
		"bad hexadecimal": {
			ShortNames: []string{"bad_hex"},
			Unified:    "1F600-XYZ",
		},
		"not a scalar value": {
			ShortNames: []string{"lone_surrogate"},
			Unified:    "D83D",
		},
	}

	for name, entry := range tests {
		if _, err := parseEntry(entry, ""); err == nil {
			t.Errorf("Entry with %s did not fail to parse.", name)
		}
	}
}

// Tests that the glyph decodes from the non-qualified code when present
// and the unified code otherwise, and that the scalar count is recorded.
func Test_parseEntry_GlyphPreference(t *testing.T) {
	rec, err := parseEntry(&dataset.Entry{
		Unified:      "2764-FE0F-200D-1F525",
		NonQualified: "2764-200D-1F525",
		ShortNames:   []string{"heart_on_fire"},
	}, "")
	if err != nil {
		t.Fatalf("Failed to parse entry: %+v", err)
	}
	if rec.Glyph != "❤‍\U0001F525" {
		t.Errorf("Glyph not decoded from the non-qualified code."+
			"\nexpected: %q\nreceived: %q",
			"❤‍\U0001F525", rec.Glyph)
	}
	if rec.scalarLen != 3 {
		t.Errorf("Unexpected scalar count.\nexpected: %d\nreceived: %d",
			3, rec.scalarLen)
	}

	rec, err = parseEntry(&dataset.Entry{
		Unified:    "1F604",
		ShortNames: []string{"smile"},
	}, "")
	if err != nil {
		t.Fatalf("Failed to parse entry: %+v", err)
	}
	if rec.Glyph != "😄" {
		t.Errorf("Glyph not decoded from the unified code."+
			"\nexpected: %q\nreceived: %q", "😄", rec.Glyph)
	}
	if rec.scalarLen != 1 {
		t.Errorf("Unexpected scalar count.\nexpected: %d\nreceived: %d",
			1, rec.scalarLen)
	}
}

// Tests that the four image flags map to their vendor bits.
func Test_parseEntry_Capabilities(t *testing.T) {
	rec, err := parseEntry(&dataset.Entry{
		Unified:      "1F34D",
		ShortNames:   []string{"pineapple"},
		HasImgApple:  true,
		HasImgGoogle: true,
	}, "")
	if err != nil {
		t.Fatalf("Failed to parse entry: %+v", err)
	}

	expected := emote.ParseVendors("Apple", "Google")
	if rec.Capabilities != expected {
		t.Errorf("Unexpected capabilities.\nexpected: %s\nreceived: %s",
			expected, rec.Capabilities)
	}
}

// Tests decodeGlyph against known sequences, including mixed case input
// and the exact cap boundary.
func Test_decodeGlyph(t *testing.T) {
	tests := []struct {
		code    string
		glyph   string
		scalars int
	}{
		{"1F604", "😄", 1},
		{"1f604", "😄", 1},
		{"2764", "❤", 1},
		{"2764-200D-1F525", "❤‍\U0001F525", 3},
		{"0023-FE0F-20E3", "#️⃣", 3},
		// Nine codepoints, the longest the table is allowed to carry.
		{"1F468-200D-1F469-200D-1F467-200D-1F466-200D-1F466",
			"\U0001F468‍\U0001F469‍\U0001F467‍" +
				"\U0001F466‍\U0001F466", 9},
	}

	for _, tt := range tests {
		glyph, scalars, err := decodeGlyph(tt.code)
		if err != nil {
			t.Errorf("Failed to decode %q: %+v", tt.code, err)
			continue
		}
		if glyph != tt.glyph {
			t.Errorf("Unexpected glyph for %q."+
				"\nexpected: %q\nreceived: %q", tt.code, tt.glyph, glyph)
		}
		if scalars != tt.scalars {
			t.Errorf("Unexpected scalar count for %q."+
				"\nexpected: %d\nreceived: %d",
				tt.code, tt.scalars, scalars)
		}
	}
}
