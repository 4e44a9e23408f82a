package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sigi3012/uppy/internal/api"
	"github.com/Sigi3012/uppy/internal/cleanup"
	"github.com/Sigi3012/uppy/internal/config"
	"github.com/spf13/cobra"
)

// runUpload is the whole pipeline: config, upload, parse, clipboard, cleanup
// prompt. Each stage runs to completion before the next; a failure at any
// stage aborts the rest.
func runUpload(cmd *cobra.Command, args []string) error {
	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("cannot locate your user profile: %w", err)
	}

	created, err := config.Bootstrap(dir)
	if err != nil {
		return fmt.Errorf("failed to create configuration: %w", err)
	}
	if created {
		fmt.Printf("Configuration created at %s - fill in your host and token, then run uppy again.\n",
			filepath.Join(dir, config.FileName))
		return nil
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("error reading configuration file: %w", err)
	}

	target, err := resolveTarget(args[0])
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Uploading %s to %s\n", target, cfg.Host)
	}

	client := api.NewClient(cfg.Host, cfg.Token)
	outcome := client.Upload(cmd.Context(), target)

	switch outcome.Kind {
	case api.IOFailure:
		return fmt.Errorf("something went wrong while loading the targeted file: %w", outcome.Err)
	case api.TransportFailure:
		return fmt.Errorf("something went wrong while sending the HTTP request: %w", outcome.Err)
	case api.ClientError:
		return fmt.Errorf("a HTTP client error occurred, code: %d", outcome.Status)
	case api.ServerError:
		return fmt.Errorf("a HTTP server error occurred, code: %d", outcome.Status)
	}

	url, ok, err := api.ExtractURL(outcome.Body)
	if err != nil {
		return err
	}
	if !ok {
		// Zero or multiple URLs: nothing to act on, the remaining stages
		// are skipped without a message.
		return nil
	}

	fmt.Printf("Uploaded URL: %s\n", url)
	if err := writeClipboard(url); err != nil {
		return fmt.Errorf("something went wrong while copying URL to clipboard: %w", err)
	}
	fmt.Println("Copied URL to clipboard!")

	// The file is reopened for hashing; nothing guards against it changing
	// between the upload and this point.
	switch cleanup.Ask(stdin, os.Stdout) {
	case cleanup.Yes:
		dest, err := cleanup.SoftDelete(target, tempDir())
		if err != nil {
			fmt.Printf("Something went wrong while moving the file to the temp dir: %v\n", err)
			return nil
		}
		fmt.Println("File deleted!")
		if verbose {
			fmt.Printf("Recoverable at %s\n", dest)
		}
	case cleanup.No:
	case cleanup.Invalid:
		fmt.Fprintln(os.Stderr, "Invalid choice")
	}

	return nil
}

// resolveTarget anchors the user-supplied argument at the current working
// directory. Absolute paths are used as-is.
func resolveTarget(arg string) (string, error) {
	if filepath.IsAbs(arg) {
		return arg, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get the working directory: %w", err)
	}

	return filepath.Join(cwd, arg), nil
}
