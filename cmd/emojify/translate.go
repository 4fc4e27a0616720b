package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/npillmayer/emojify/augment"
	"github.com/npillmayer/emojify/config"
	"github.com/spf13/cobra"
)

var translateUsage = map[augment.Direction][2]string{
	augment.ToText:  {"text [emoji…]", "Translate emoji to text"},
	augment.ToEmoji: {"emoji [phrase…]", "Translate text to emoji"},
}

// newTranslateCmd creates command "text" or "emoji". Without arguments,
// input is read from stdin and translated line by line.
func newTranslateCmd(a *app, dir augment.Direction) *cobra.Command {
	return &cobra.Command{
		Use:   translateUsage[dir][0],
		Short: translateUsage[dir][1],
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, s, err := a.lexicon()
			if err != nil {
				return err
			}
			svc := augment.NewService(lex, config.BuildTranslator(s), s.LLM.Timeout)
			translate := svc.ToText
			if dir == augment.ToEmoji {
				translate = svc.ToEmoji
			}
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				result, src := translate(cmd.Context(), strings.Join(args, " "))
				tracer().Debugf("translated by %s", src)
				fmt.Fprintln(out, result)
				return nil
			}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				result, _ := translate(cmd.Context(), scanner.Text())
				fmt.Fprintln(out, result)
			}
			return scanner.Err()
		},
	}
}

func newExplainCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "explain [phrase…]",
		Short: "Show how a phrase is segmented for translation to emoji",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, _, err := a.lexicon()
			if err != nil {
				return err
			}
			segments := lex.Explain(strings.Join(args, " "))
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(segments)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FROM\tTO\tTEXT\tEMOJI")
			for _, seg := range segments {
				emoji := "-"
				if seg.Matched {
					emoji = seg.Emoji
				}
				fmt.Fprintf(w, "%d\t%d\t%q\t%s\n", seg.From, seg.To, seg.Text, emoji)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print segments as JSON")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show size and configuration of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, s, err := a.lexicon()
			if err != nil {
				return err
			}
			st := lex.Stats()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "dataset:\t%s\n", s.Dataset.Path)
			fmt.Fprintf(w, "locale:\t%s\n", st.Locale)
			fmt.Fprintf(w, "emojis:\t%d\n", st.Emojis)
			fmt.Fprintf(w, "phrases:\t%d\n", st.Phrases)
			fmt.Fprintf(w, "symbols:\t%d\n", st.Symbols)
			fmt.Fprintf(w, "matcher:\t%s\n", st.Strategy)
			fmt.Fprintf(w, "graphemes:\t%v\n", st.Graphemes)
			return w.Flush()
		},
	}
}
