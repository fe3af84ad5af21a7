package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/metatext"
)

type rootFlags struct {
	config    string
	output    string
	verbosity int
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "metatext",
		Short:         "Render info overlays as aligned, colored columns",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	formats := make([]string, 0, len(metatext.Formats()))
	for _, f := range metatext.Formats() {
		formats = append(formats, f.String())
	}
	cmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "TOML layout profile")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", metatext.ANSI.String(), "output format: "+strings.Join(formats, ", "))
	cmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", "increase log verbosity")

	cmd.AddCommand(newKeysCmd(&flags), newImageCmd(&flags))
	return cmd
}

func newKeysCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <bindings.yaml>",
		Short: "Show the key-binding help",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, opts, err := flags.resolve(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			b, err := metatext.LoadBindings(f)
			if err != nil {
				return err
			}
			if format.Structured() {
				return metatext.WriteEntries(cmd.OutOrStdout(), format, metatext.KeyBindingEntries(b), opts)
			}
			msg, err := metatext.KeyBindingsMessage(b, opts)
			if err != nil {
				return err
			}
			return printMessage(cmd.OutOrStdout(), format, msg)
		},
	}
}

func newImageCmd(flags *rootFlags) *cobra.Command {
	var unique bool
	cmd := &cobra.Command{
		Use:   "image <file>",
		Short: "Show image information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, opts, err := flags.resolve(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			fi, err := os.Stat(args[0])
			if err != nil {
				return err
			}
			d, err := metatext.DescribeImageFile(args[0], unique)
			if err != nil {
				return err
			}
			opts.Logger.V(1).Info("image decoded", "path", args[0], "codec", d.Codec, "width", d.Width, "height", d.Height)

			if format.Structured() {
				entries, err := metatext.ImageInfoEntries(d, fi)
				if err != nil {
					return err
				}
				return metatext.WriteEntries(cmd.OutOrStdout(), format, entries, opts)
			}
			msg, err := metatext.ImageInfoMessage(d, fi, opts)
			if err != nil {
				return err
			}
			return printMessage(cmd.OutOrStdout(), format, msg)
		},
	}
	cmd.Flags().BoolVar(&unique, "unique", false, "count distinct pixel values")
	return cmd
}

// resolve parses the output format and loads the layout profile. Logs go
// to logOut.
func (f *rootFlags) resolve(logOut io.Writer) (metatext.Format, metatext.Options, error) {
	opts := metatext.DefaultOptions()
	format, err := metatext.ParseFormat(f.output)
	if err != nil {
		return format, opts, err
	}
	if f.config != "" {
		if opts, err = metatext.LoadOptions(f.config); err != nil {
			return format, opts, err
		}
	}
	opts.Logger = newLogger(logOut, f.verbosity)
	return format, opts, nil
}

func printMessage(w io.Writer, format metatext.Format, markup string) error {
	out, err := metatext.Convert(format, markup)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
