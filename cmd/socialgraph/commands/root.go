package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries per-invocation state shared by all subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	log     *slog.Logger
}

// Execute runs the root command with os.Args.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd assembles the socialgraph command tree. Each call uses its
// own viper instance so commands can be built and run independently.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "socialgraph",
		Short: "Explore who-knows-whom graphs",
		Long: `socialgraph loads one-directional friendship graphs from edge-list
files and answers breadth-first questions about them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/"+defaultConfigName+")")
	pf.StringP("format", "o", FormatText, "output format: text, yaml or json")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.Bool("color", true, "colorize text output")
	bindFlags(a.v, pf, "format", "log-level", "color")

	root.AddCommand(
		newEdgesCmd(a),
		newBFSCmd(a),
		newPathCmd(a),
		newDemoCmd(a),
		newWatchCmd(a),
	)

	return root
}

// setup resolves configuration and builds the logger.
func (a *app) setup(logOut io.Writer) error {
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	lvl, _ := cfg.level()

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: lvl}))
	a.log.Debug("configuration resolved",
		"format", cfg.Format,
		"log_level", cfg.LogLevel,
		"color", cfg.Color,
		"config_file", a.v.ConfigFileUsed(),
	)

	return nil
}

// bindFlags makes the named flags the highest-priority source for the
// viper keys of the same name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %q: %v", name, err))
		}
	}
}

func addMaxDepthFlag(fs *pflag.FlagSet, p *int) {
	fs.IntVar(p, "max-depth", 0, "stop exploring beyond this depth (0 = unlimited)")
}
