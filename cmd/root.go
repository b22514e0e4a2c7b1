package cmd

import (
	"github.com/arpahome/nustudy/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := newApp(viper.New())

	rootCmd := &cobra.Command{
		Use:   "nustudy",
		Short: "NUStudy: track study hours per course",
		Long: "nustudy keeps a list of courses and the study sessions logged against them. " +
			"Run it without arguments for an interactive prompt, or use exec for a single command.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd); err != nil {
				return err
			}
			return runShell(cmd, app)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("data", "", "path to the data file (default ~/.nustudy/nustudy.txt)")
	flags.String("log-level", "", "log level: debug, info, warn or error (default warn)")
	_ = app.v.BindPFlag(config.DataPathKey, flags.Lookup("data"))
	_ = app.v.BindPFlag(config.LogLevelKey, flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newExecCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
