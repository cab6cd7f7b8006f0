////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

// Package dataset bundles the emoji definition table and its JSON model.
// The table is the one published by the emoji-data project
// (https://github.com/iamcal/emoji-data), Emoji version 14.0, and is
// refreshed with the generator in the generate package.
package dataset

import (
	_ "embed"
	"encoding/json"

	"github.com/pkg/errors"
)

// Data is the bundled emoji-data definition table.
//
//go:embed emojiData.json
var Data []byte

// Entry is one raw emoji definition as it appears in the emoji-data JSON.
// Fields the engine does not consume (sprite sheet coordinates, legacy
// carrier codes) are omitted and ignored when decoding.
type Entry struct {
	// Name is the CLDR name of the emoji in capital letters.
	Name string `json:"name"`

	// Unified is the fully-qualified codepoint sequence, uppercase
	// hexadecimal values joined by hyphens (e.g. "2764-FE0F-200D-1F525").
	Unified string `json:"unified"`

	// NonQualified is the sequence with the variation selector stripped,
	// when the emoji has one (e.g. "2764-200D-1F525"), otherwise empty.
	NonQualified string `json:"non_qualified"`

	// ShortName is the canonical colon-style name without the colons.
	ShortName string `json:"short_name"`

	// ShortNames lists every short name, the canonical one first.
	ShortNames []string `json:"short_names"`

	// Category and SortOrder describe where the emoji appears in pickers.
	Category  string `json:"category,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`

	// AddedIn is the Unicode Emoji version that introduced the emoji.
	AddedIn string `json:"added_in,omitempty"`

	// HasImg* report which vendors ship an image for this emoji.
	HasImgApple    bool `json:"has_img_apple"`
	HasImgGoogle   bool `json:"has_img_google"`
	HasImgTwitter  bool `json:"has_img_twitter"`
	HasImgFacebook bool `json:"has_img_facebook"`

	// SkinVariations maps a skin tone key, one or two tone modifier
	// codepoints joined by a hyphen (e.g. "1F3FB" or "1F3FB-1F3FC"), to
	// the entry for that toned variant. Variant entries carry no short
	// names of their own.
	SkinVariations map[string]Entry `json:"skin_variations,omitempty"`
}

// Load parses the bundled definition table.
func Load() ([]Entry, error) {
	return Parse(Data)
}

// Parse decodes an emoji-data definition table from JSON.
func Parse(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "failed to parse emoji dataset")
	}
	return entries, nil
}
