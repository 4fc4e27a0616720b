package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/emojify"
	"github.com/npillmayer/emojify/augment"
	"github.com/npillmayer/emojify/config"
	"github.com/spf13/cobra"
)

// Build info, set via -ldflags.
var (
	Version   = "dev"
	CommitID  = "unknown"
	BuildDate = "unknown"
)

// app carries the state shared by all commands.
type app struct {
	conf    *config.Conf
	cfgFile string
	tracing io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{conf: config.New()}
	root := &cobra.Command{
		Use:          "emojify",
		Short:        "Translate between emoji and text",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			if err := a.conf.ReadFile(a.cfgFile); err != nil {
				return err
			}
			closer, err := config.SetupTracing(a.conf)
			if err != nil {
				return fmt.Errorf("setting up tracing: %w", err)
			}
			a.tracing = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.tracing != nil {
				return a.tracing.Close()
			}
			return nil
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "configuration file (default emojify.yaml)")
	flags.String("dataset", "", "annotation file or directory")
	flags.String("locale", "", "locale of the dataset, e.g. de-AT")
	flags.String("trace", "", "trace level: Error, Info or Debug")
	flags.Bool("llm", false, "translate with an LLM, falling back to the dataset")
	v := a.conf.Viper()
	_ = v.BindPFlag("dataset.path", flags.Lookup("dataset"))
	_ = v.BindPFlag("dataset.locale", flags.Lookup("locale"))
	_ = v.BindPFlag("tracelevel.root", flags.Lookup("trace"))
	_ = v.BindPFlag("llm.enabled", flags.Lookup("llm"))

	root.AddCommand(
		newTranslateCmd(a, augment.ToText),
		newTranslateCmd(a, augment.ToEmoji),
		newExplainCmd(a),
		newStatsCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) settings() (config.Settings, error) {
	return a.conf.Settings()
}

func (a *app) lexicon() (*emojify.Lexicon, config.Settings, error) {
	s, err := a.settings()
	if err != nil {
		return nil, s, err
	}
	lex, err := config.BuildLexicon(s)
	return lex, s, err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "emojify %s (%s) built %s\n", Version, CommitID, BuildDate)
		},
	}
}
