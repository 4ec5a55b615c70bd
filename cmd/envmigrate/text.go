package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/azuracast/envmigrate/internal/messages"
	"github.com/azuracast/envmigrate/internal/terminal"
	"github.com/azuracast/envmigrate/internal/textfmt"
)

var (
	generatePassword = textfmt.GeneratePassword
	terminalWidth    = func() int { return terminal.Width(os.Stdout, textfmt.DefaultWrapWidth) }
)

func newTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.TextUse,
		Short: messages.TextShort,
	}
	cmd.AddCommand(
		newTextTruncateCmd(),
		newTextWrapCmd(),
		newTextTruncateURLCmd(),
		newTextPasswordCmd(),
	)
	return cmd
}

func newTextTruncateCmd() *cobra.Command {
	var (
		limit int
		pad   string
	)
	cmd := &cobra.Command{
		Use:   messages.TextTruncateUse,
		Short: messages.TextTruncateShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), textfmt.TruncateText(args[0], limit, pad))
			return err
		},
	}
	cmd.Flags().IntVar(&limit, "limit", textfmt.DefaultTruncateLimit, messages.TextTruncateLimit)
	cmd.Flags().StringVar(&pad, "pad", textfmt.DefaultPad, messages.TextTruncatePad)
	return cmd
}

func newTextWrapCmd() *cobra.Command {
	var (
		width       int
		breakMarker string
		cut         bool
	)
	cmd := &cobra.Command{
		Use:   messages.TextWrapUse,
		Short: messages.TextWrapShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf(messages.TextWrapReadStdinFmt, err)
				}
				text = strings.TrimSuffix(string(data), "\n")
			}
			if !cmd.Flags().Changed("width") {
				width = terminalWidth()
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), textfmt.MbWordwrap(text, width, breakMarker, cut))
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", textfmt.DefaultWrapWidth, messages.TextWrapWidth)
	cmd.Flags().StringVar(&breakMarker, "break", textfmt.DefaultBreak, messages.TextWrapBreak)
	cmd.Flags().BoolVar(&cut, "cut", false, messages.TextWrapCut)
	return cmd
}

func newTextTruncateURLCmd() *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   messages.TextTruncateURLUse,
		Short: messages.TextTruncateURLShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), textfmt.TruncateURL(args[0], length))
			return err
		},
	}
	cmd.Flags().IntVar(&length, "length", textfmt.DefaultURLLength, messages.TextTruncateURLLen)
	return cmd
}

func newTextPasswordCmd() *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   messages.TextPasswordUse,
		Short: messages.TextPasswordShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := generatePassword(length)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), password)
			return err
		},
	}
	cmd.Flags().IntVar(&length, "length", textfmt.DefaultPasswordLength, messages.TextPasswordLength)
	return cmd
}
