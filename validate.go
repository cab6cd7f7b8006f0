////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"github.com/forPelevin/gomoji"
	"github.com/pkg/errors"
)

// InvalidReaction is returned if the passed reaction string is not exactly
// one emoji.
var InvalidReaction = errors.New(
	"The reaction is not valid, it must be a single emoji")

// ValidateReaction checks that the reaction only contains a single emoji.
// Returns InvalidReaction if it does not. Validation runs against the full
// Unicode emoji list rather than the loaded records, so reactions with
// emoji the bundled table does not carry still pass.
func ValidateReaction(reaction string) error {
	emojisFound := gomoji.CollectAll(reaction)
	if len(emojisFound) != 1 || emojisFound[0].Character != reaction {
		return InvalidReaction
	}

	return nil
}

// SupportedReactions returns a list of all emojis that pass
// ValidateReaction.
func SupportedReactions() []gomoji.Emoji {
	return gomoji.AllEmojis()
}
