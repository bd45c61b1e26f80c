package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"hashnotes/internal/digest"
)

var renderJSON bool

var putCmd = &cobra.Command{
	Use:   "put [file]",
	Short: "Store a note and print its digest",
	Long:  `Store the given file (or stdin) as a note. Prints the digest under which it is stored.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		svc, store, err := openNotes()
		if err != nil {
			return err
		}
		defer store.Close()

		note, err := svc.Create(cmd.Context(), string(content))
		if err != nil {
			return err
		}
		logger.WithField("digest", note.Digest).Debug("note_stored")
		fmt.Fprintln(cmd.OutOrStdout(), note.Digest)
		return nil
	},
}

var catCmd = &cobra.Command{
	Use:   "cat <name>",
	Short: "Print a stored note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, store, err := openNotes()
		if err != nil {
			return err
		}
		defer store.Close()

		note, err := svc.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), note.Content)
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render <name>",
	Short: "Print a stored note rendered as HTML",
	Long:  `Render a stored note. Outputs the HTML fragment by default, or the full result including title and description with --json.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, store, err := openNotes()
		if err != nil {
			return err
		}
		defer store.Close()

		note, err := svc.Render(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if renderJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(note)
		}
		fmt.Fprint(cmd.OutOrStdout(), note.HTML)
		return nil
	},
}

var digestCmd = &cobra.Command{
	Use:   "digest [file]",
	Short: "Print the digest of a file (or stdin) without storing it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), digest.OfBytes(content))
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "Output title, description, table of contents and HTML as JSON")
	rootCmd.AddCommand(putCmd, catCmd, renderCmd, digestCmd)
}
