////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"strings"

	jww "github.com/spf13/jwalterweatherman"
)

// toneNames maps the five Fitzpatrick skin tone modifier codepoints to the
// labels used when synthesizing variant short codes.
var toneNames = map[string]string{
	"1F3FB": "tone1",
	"1F3FC": "tone2",
	"1F3FD": "tone3",
	"1F3FE": "tone4",
	"1F3FF": "tone5",
}

// toneLabel resolves a dataset skin variation key to its short code label.
// Keys are one or two tone modifier codepoints joined by a hyphen; the
// label joins the matching tone names the same way, so "1F3FB" becomes
// "tone1" and "1F3FB-1F3FF" becomes "tone1-tone5". Unrecognized parts are
// dropped with a diagnostic. ok is false when no part resolves, in which
// case the variant cannot be named and the caller skips it.
func toneLabel(toneKey string) (label string, ok bool) {
	parts := strings.Split(toneKey, "-")
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		name, exists := toneNames[part]
		if !exists {
			jww.WARN.Printf(
				"Skin variation key part %q is not a known tone modifier",
				part)
			continue
		}
		labels = append(labels, name)
	}

	if len(labels) == 0 {
		return "", false
	}
	return strings.Join(labels, "-"), true
}
