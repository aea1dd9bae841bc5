package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	toml "github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"linkview/internal/config"
	"linkview/internal/tui"
)

const envPrefix = "LINKVIEW"

func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := config.NewConfig()
	rc := &cobra.Command{
		Use:   "linkview",
		Short: "Brush a scatter plot and parallel coordinates over one dataset.",
		Long: `linkview shows two views of a CSV or JSON dataset side by side.

Drag a rectangle in the scatter plot, or a range along any parallel axis,
and the matching records are highlighted in both views. A click on a
scatter point selects that record alone. Press h for the key bindings.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd.Flags(), cfg); err != nil {
				return err
			}
			return runTUI(cfg, stdin, stdout)
		},
	}
	rc.PersistentFlags().StringP("config", "c", "", "Configuration file to read from.")
	cfg.Flags(rc.Flags())

	rc.AddCommand(newResolveCommand(stdin, stdout, stderr))
	rc.AddCommand(newConfigCommand(stdin, stdout, stderr))

	rc.SetOut(stdout)
	rc.SetErr(stderr)
	return rc
}

func runTUI(cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	// stdout belongs to the terminal UI
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "linkview")
		if err != nil {
			return errors.Wrap(err, "opening log file")
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var m tea.Model
	if cfg.Data != "" {
		m = tui.NewWithPath(cfg, cfg.Data)
	} else {
		m = tui.New(cfg)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithInput(stdin), tea.WithOutput(stdout))
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "running ui")
	}
	return nil
}

func newConfigCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := config.NewConfig()
	cc := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration.",
		Long: `config resolves flags, LINKVIEW_* environment variables and the
configuration file, then prints the result as TOML.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd.Flags(), cfg); err != nil {
				return err
			}
			buf, err := toml.Marshal(*cfg)
			if err != nil {
				return errors.Wrap(err, "encoding config")
			}
			fmt.Fprint(stdout, string(buf))
			return nil
		},
	}
	cfg.Flags(cc.Flags())
	return cc
}

// loadConfig fills cfg from flags, environment and config file, then checks
// it.
func loadConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if err := setAllConfig(viper.New(), flags); err != nil {
		return err
	}
	return errors.Wrap(cfg.Validate(), "invalid configuration")
}

// setAllConfig takes a FlagSet to be the definition of all configuration
// options, as well as their defaults. It then reads from the command line, the
// environment, and a config file (if specified), and applies the configuration
// in that priority order. Each flag holds a pointer to where its value is
// stored, so setAllConfig modifies the config directly.
//
// Environment variables are the flag names upper-cased, dashes replaced by
// underscores, prefixed with LINKVIEW_.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	validTags := make(map[string]bool)
	flags.VisitAll(func(f *pflag.Flag) {
		validTags[f.Name] = true
	})

	if c := v.GetString("config"); c != "" {
		v.SetConfigFile(c)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading configuration file '%s'", c)
		}
		for _, key := range v.AllKeys() {
			if !validTags[key] {
				return errors.Errorf("invalid option in configuration file: %v", key)
			}
		}
	}

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil || f.Changed {
			// Already set on the command line, the highest priority. Setting
			// a slice flag again would append rather than replace.
			return
		}
		switch f.Value.Type() {
		case "stringSlice":
			// A slice from a config file is not a string; GetString
			// would return "".
			flagErr = f.Value.Set(strings.Join(v.GetStringSlice(f.Name), ","))
		case "stringArray":
			// the first Set replaces the default, later ones append
			for _, s := range v.GetStringSlice(f.Name) {
				if flagErr = f.Value.Set(s); flagErr != nil {
					return
				}
			}
		default:
			flagErr = f.Value.Set(v.GetString(f.Name))
		}
	})
	return flagErr
}
