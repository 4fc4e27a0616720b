package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/emojify"
	"github.com/npillmayer/emojify/augment"
	"github.com/npillmayer/emojify/config"
	"github.com/npillmayer/emojify/reload"
	"github.com/npillmayer/emojify/server"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer traces with key 'emojify.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("emojify.cmd")
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve translations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			holder, err := reload.NewHolder(func() (*emojify.Lexicon, error) {
				return config.BuildLexicon(s)
			})
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if s.Dataset.Watch {
				if err := holder.Watch(ctx, config.WatchPaths(s)...); err != nil {
					return err
				}
			}
			svc := augment.NewService(holder, config.BuildTranslator(s), s.LLM.Timeout)
			srv := server.New(svc, server.Config{
				Addr:        s.Server.Addr,
				CORSOrigins: s.Server.CORS,
				Stats: func() emojify.Stats {
					return holder.Lexicon().Stats()
				},
			})
			return srv.ListenAndServe(ctx)
		},
	}
	flags := cmd.Flags()
	flags.String("addr", "", "listen address (default :5000)")
	flags.Bool("watch", false, "reload the dataset when its files change")
	v := a.conf.Viper()
	_ = v.BindPFlag("server.addr", flags.Lookup("addr"))
	_ = v.BindPFlag("dataset.watch", flags.Lookup("watch"))
	return cmd
}
