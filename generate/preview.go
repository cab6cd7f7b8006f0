////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"bytes"
	"image/png"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/xx_network/primitives/utils"

	"gitlab.com/elixxir/emoji"
)

// Flag variables.
var (
	previewSet    string
	previewOutput string
)

var previewCmd = &cobra.Command{
	Use: "preview [shortCode]",
	Short: "Downloads the image a short code resolves to and saves it " +
		"downscaled to its render size.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initLog(jww.Threshold(logLevel), logFile)

		if err := preview(args[0]); err != nil {
			jww.FATAL.Panic(err)
		}
	},
}

func init() {
	cmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewSet, "emojiSet", "e",
		emoji.GetDefaultParams().PreferredSet,
		"Emoji set to resolve the image from.")
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o",
		"./preview.png", "Output file path for the preview image.")
}

// preview resolves the short code under the configured set, fetches the
// vendor image, and writes it scaled by the emote's render factor.
func preview(shortCode string) error {
	p := emoji.GetDefaultParams()
	p.PreferredSet = previewSet
	m := emoji.NewManager(p)

	rec, exists := m.ByShortCode(shortCode)
	if !exists {
		return errors.Errorf("no emoji with short code %q", shortCode)
	}

	e := m.ResolvedEmote(rec)
	jww.INFO.Printf("Short code %q resolves to %s at scale %g.",
		shortCode, e.URL, e.Scale)

	body, err := download(e.URL)
	if err != nil {
		return errors.Wrapf(err, "failed to download %s", e.URL)
	}

	img, err := png.Decode(bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to decode the vendor image")
	}

	width := uint(float64(img.Bounds().Dx()) * e.Scale)
	scaled := resize.Resize(width, 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err = png.Encode(&buf, scaled); err != nil {
		return errors.Wrap(err, "failed to encode the preview image")
	}

	return utils.WriteFileDef(previewOutput, buf.Bytes())
}
