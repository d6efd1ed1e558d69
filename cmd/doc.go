package cmd

import "github.com/spf13/cobra/doc"

// ManHeader is the header of the gcm man pages.
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "GCM",
		Section: "1",
		Source:  "gcm " + Version,
		Manual:  "GCM Manual",
	}
}
