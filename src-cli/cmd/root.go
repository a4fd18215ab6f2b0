package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/WillPlatnick/calendar-tana/src-cli/agenda"
	"github.com/WillPlatnick/calendar-tana/src-cli/dateutil"
	"github.com/WillPlatnick/calendar-tana/src-cli/fetch"
	"github.com/WillPlatnick/calendar-tana/src-cli/model"
	"github.com/WillPlatnick/calendar-tana/src-cli/utils"
	"github.com/spf13/cobra"
)

var (
	configPath string
	weekly     bool
	calendars  []string
	grouped    bool
	rawOutput  bool
	saveDump   bool

	RootCmd = &cobra.Command{
		Use:   "calendar-tana [date]",
		Short: "Turn macOS Calendar events into Tana-ready JSON",
		Long: `Runs icalBuddy over a daily or weekly window, parses its dump and
prints one JSON record per event. The optional date argument takes a
plain YYYY-MM-DD or natural language ("today", "next friday").`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runConvert,
	}
)

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/calendar-tana/config.yml)")
	RootCmd.Flags().BoolVarP(&weekly, "week", "w", false, "fetch the whole week around the target date")
	RootCmd.Flags().StringSliceVarP(&calendars, "calendars", "c", nil, "calendar allow-list, overrides the config")
	RootCmd.Flags().BoolVarP(&grouped, "group", "g", false, "group the JSON output by date")
	RootCmd.Flags().BoolVar(&rawOutput, "raw", false, "print the raw icalBuddy dump instead of JSON")
	RootCmd.Flags().BoolVar(&saveDump, "dump", false, "save the raw dump to a temp file for debugging")
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return utils.DefaultConfigPath()
}

func runConvert(cmd *cobra.Command, args []string) error {
	state := utils.NewAppState(resolveConfigPath())

	dateArg := ""
	if len(args) == 1 {
		dateArg = args[0]
	}
	target, ok := state.ResolveDate(dateArg, time.Now())
	if !ok {
		return fmt.Errorf("runConvert: can't understand date %q", dateArg)
	}

	loc := state.Config.GetLocation()
	var from, to string
	var err error
	if weekly {
		if from, err = dateutil.StartOfWeek(target, loc); err != nil {
			return fmt.Errorf("runConvert: %w", err)
		}
		if to, err = dateutil.EndOfWeek(target, loc); err != nil {
			return fmt.Errorf("runConvert: %w", err)
		}
	} else {
		if from, err = dateutil.StartOfDay(target, loc); err != nil {
			return fmt.Errorf("runConvert: %w", err)
		}
		if to, err = dateutil.EndOfDay(target, loc); err != nil {
			return fmt.Errorf("runConvert: %w", err)
		}
	}
	slog.Debug("fetch window", "date", target, "from", from, "to", to)

	allowList := state.Config.GetCalendars()
	if len(calendars) > 0 {
		allowList = calendars
	}
	tokens := agenda.Tokens{
		PropertySeparator: state.Config.GetPropertySeparator(),
		SectionSeparator:  state.Config.GetSectionSeparator(),
		NewlineToken:      state.Config.GetNewlineToken(),
	}

	dump, err := fetch.Run(cmd.Context(), fetch.Request{
		BuddyBin:  state.Config.GetBuddyBin(),
		From:      from,
		To:        to,
		Calendars: allowList,
		Tokens:    tokens,
	})
	if err != nil {
		return fmt.Errorf("runConvert: %w", err)
	}
	return emitResults(cmd.OutOrStdout(), dump, tokens)
}

// emitResults handles everything after the fetch: the dump artifact,
// raw passthrough and the parsed JSON output. The artifact is written
// before the raw passthrough can short-circuit.
func emitResults(w io.Writer, dump string, tokens agenda.Tokens) error {
	if saveDump {
		path, err := fetch.SaveDump(dump)
		if err != nil {
			return fmt.Errorf("emitResults: %w", err)
		}
		slog.Info("raw dump saved", "path", path)
	}
	if rawOutput {
		fmt.Fprint(w, dump)
		return nil
	}

	events, err := agenda.Parse(fetch.Lines(dump), tokens)
	if err != nil {
		return fmt.Errorf("emitResults: %w", err)
	}
	return writeJSON(w, events, grouped)
}

func writeJSON(w io.Writer, events model.Collection, grouped bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if grouped {
		if err := encoder.Encode(events.Grouped()); err != nil {
			return fmt.Errorf("writeJSON: %w", err)
		}
		return nil
	}
	if err := encoder.Encode(events); err != nil {
		return fmt.Errorf("writeJSON: %w", err)
	}
	return nil
}
