package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/Sigi3012/uppy/internal/clipboard"
	"github.com/spf13/cobra"
)

var verbose bool

// Swapped out in tests; the pipeline is otherwise wired to the real OS.
var (
	stdin          io.Reader = os.Stdin
	writeClipboard           = clipboard.Write
	tempDir                  = os.TempDir
)

var rootCmd = &cobra.Command{
	Use:   "uppy <file>",
	Short: "Upload a file and copy its share link",
	Long: `Upload a file to your configured host and copy the resulting public
URL to the clipboard.

The host and token live in ~/.config/uppy/config.json; the file is created
as a template on the first run for you to fill in by hand.

Examples:
  uppy screenshot.png        Upload and copy the link
  uppy ../report.pdf         Paths are resolved from the working directory`,
	Args:          cobra.ExactArgs(1),
	RunE:          runUpload,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}
