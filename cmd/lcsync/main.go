// Package main implements the lcsync command, which copies a LeetCode user's
// recently accepted problems into a Notion spaced-repetition database.
package main

import (
	"log/slog"
	"os"

	"github.com/phrazzld/lcsync/internal/redact"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("lcsync failed", "error", redact.Error(err))
		os.Exit(1)
	}
}
