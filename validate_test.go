////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Tests ValidateReaction against single emoji, multiple emoji, and
// non-emoji strings.
func TestValidateReaction(t *testing.T) {
	testReactions := []string{
		"🍆", "😂", "❤", "🤣", "👍", "😭", "🙏", "😘", "🥰", "😍", "😊",
		"☺", "A", "b", "AA", "1", "🍆🍆", "🍆A", "👍👍👍", "👍😘A",
	}

	expected := []error{
		nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil,
		InvalidReaction, InvalidReaction, InvalidReaction, InvalidReaction,
		InvalidReaction, InvalidReaction, InvalidReaction, InvalidReaction,
	}

	for i, r := range testReactions {
		err := ValidateReaction(r)
		if err != expected[i] {
			t.Errorf("Got incorrect response for %q (%d): "+
				"`%s` vs `%s`", r, i, err, expected[i])
		}
	}
}

// Tests that SupportedReactions returns a non-empty list covering some
// well-known emoji.
func TestSupportedReactions(t *testing.T) {
	reactions := SupportedReactions()
	require.NotEmpty(t, reactions)

	characters := make(map[string]bool, len(reactions))
	for _, e := range reactions {
		characters[e.Character] = true
	}
	for _, c := range []string{"😂", "👍", "🍆"} {
		require.True(t, characters[c], "emoji %q not supported", c)
	}
}
