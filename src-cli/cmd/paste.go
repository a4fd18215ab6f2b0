package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/WillPlatnick/calendar-tana/src-cli/model"
	"github.com/WillPlatnick/calendar-tana/src-cli/tana"
	"github.com/WillPlatnick/calendar-tana/src-cli/utils"
	"github.com/spf13/cobra"
)

var (
	pasteTag string

	pasteCmd = &cobra.Command{
		Use:   "paste [file]",
		Short: "Render saved converter JSON as Tana Paste outline text",
		Long: `Reads a flat JSON array of event records, as printed by the
converter, and renders one outline line per event for pasting into
Tana. Reads stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPaste,
	}
)

func init() {
	pasteCmd.Flags().StringVarP(&pasteTag, "tag", "t", "", "supertag for every line (default from config)")
	RootCmd.AddCommand(pasteCmd)
}

func runPaste(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 1 {
		if data, err = os.ReadFile(args[0]); err != nil {
			return fmt.Errorf("runPaste: can't read %q: %w", args[0], err)
		}
	} else {
		if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("runPaste: can't read stdin: %w", err)
		}
	}

	var events model.Collection
	if err := json.Unmarshal(data, &events); err != nil {
		return fmt.Errorf("runPaste: can't decode event records: %w", err)
	}

	tag := pasteTag
	if tag == "" {
		tag = utils.NewConfig(resolveConfigPath()).GetTanaTag()
	}
	fmt.Fprint(cmd.OutOrStdout(), tana.Render(events, tag))
	return nil
}
