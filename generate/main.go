////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// package main downloads the latest emoji-data definition table, validates
// that the engine can load it, and saves it as the table bundled into the
// dataset package. Subcommands audit the image CDN, preview resolved
// emotes, benchmark the scanner, and query dataset statistics.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/xx_network/primitives/utils"

	"gitlab.com/elixxir/emoji/dataset"
)

// dataURL is the URL to the emoji-data definition table that the engine is
// built against.
const dataURL = "https://raw.githubusercontent.com/iamcal/emoji-data/" +
	"master/emoji.json"

// Flag variables.
var (
	logLevel    int
	logFile     string
	downloadURL string
	outputPath  string
	indent      bool
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var cmd = &cobra.Command{
	Use: "generateEmojiData",
	Short: "Downloads the emoji-data definition table, validates that it " +
		"loads, and saves it as the bundled dataset.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// Initialize the logging
		initLog(jww.Threshold(logLevel), logFile)

		if err := generate(); err != nil {
			jww.FATAL.Panic(err)
		}
	},
}

// init is the initialization function for Cobra which defines flags.
func init() {
	cmd.PersistentFlags().StringVarP(&logFile, "log", "l", "-",
		"Log output path. By default, logs are printed to stdout. "+
			"To disable logging, set this to empty (\"\").")
	cmd.PersistentFlags().IntVarP(&logLevel, "logLevel", "v", 4,
		"Verbosity level of logging. 0 = TRACE, 1 = DEBUG, 2 = INFO, "+
			"3 = WARN, 4 = ERROR, 5 = CRITICAL, 6 = FATAL")

	cmd.Flags().StringVarP(&downloadURL, "url", "u", dataURL,
		"URL to download the emoji-data table from.")
	cmd.Flags().StringVarP(&outputPath, "output", "o",
		"./dataset/emojiData.json",
		"Output file path for the bundled dataset.")
	cmd.Flags().BoolVarP(&indent, "indent", "i", true,
		"Re-indent the downloaded JSON before saving.")
}

// generate downloads the table, proves it parses into loadable entries,
// and writes it to the dataset package.
func generate() error {
	body, err := download(downloadURL)
	if err != nil {
		return err
	}

	entries, err := dataset.Parse(body)
	if err != nil {
		return errors.Wrap(err, "downloaded table failed validation")
	}

	var variants int
	for _, entry := range entries {
		variants += len(entry.SkinVariations)
	}
	jww.INFO.Printf("Downloaded table parses: %d entries, %d skin "+
		"variations.", len(entries), variants)

	if indent {
		var buf bytes.Buffer
		if err = json.Indent(&buf, body, "", "\t"); err != nil {
			return errors.Wrap(err, "failed to indent the table")
		}
		body = buf.Bytes()
	}

	return utils.WriteFileDef(outputPath, body)
}

// download downloads and returns the content of the file URL.
func download(fileURL string) ([]byte, error) {
	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode > 299 {
		return nil, errors.Errorf("response failed with status code %d: %s",
			resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	defer func(Body io.ReadCloser) {
		err2 := Body.Close()
		if err2 != nil {
			err = errors.Wrapf(err, "failed to close body: %+v", err2)
		}
	}(resp.Body)

	return io.ReadAll(resp.Body)
}

// initLog will enable JWW logging to the given log path with the given
// threshold. If log path is empty, then logging is not enabled. Panics if the
// log file cannot be opened or if the threshold is invalid.
func initLog(threshold jww.Threshold, logPath string) {
	if logPath == "" {
		// Do not enable logging if no log file is set
		return
	} else if logPath != "-" {
		// Set the log file if stdout is not selected

		// Disable stdout output
		jww.SetStdoutOutput(io.Discard)

		// Use log file
		logOutput, err :=
			os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}
		jww.SetLogOutput(logOutput)
	}

	if threshold < jww.LevelTrace || threshold > jww.LevelFatal {
		panic("Invalid log threshold: " + strconv.Itoa(int(threshold)))
	}

	// Display microseconds if the threshold is set to TRACE or DEBUG
	if threshold == jww.LevelTrace || threshold == jww.LevelDebug {
		jww.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}

	// Enable logging
	jww.SetStdoutThreshold(threshold)
	jww.SetLogThreshold(threshold)
	jww.INFO.Printf("Log level set to: %s", threshold)
}
