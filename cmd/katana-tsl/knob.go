package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"katanatsl"
	"katanatsl/internal/config"
)

var knobCmd = &cobra.Command{
	Use:   "knob <block> <code>",
	Short: "Resolve a knob-assign code for booster, delay, reverb or an Fx type",
	Example: `  katana-tsl knob booster 1
  katana-tsl knob HeavyOctave 0x09`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := cast.ToIntE(config.Decimal(args[1]))
		if err != nil || code < 0 || code > 0xFF {
			return fmt.Errorf("bad knob code %q: want 0..255", args[1])
		}
		name, err := knobTarget(args[0], uint8(code))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(knobCmd)
}

func knobTarget(block string, code uint8) (string, error) {
	switch strings.ToLower(block) {
	case "booster", "boost":
		return katanatsl.BoosterKnobName(code)
	case "delay":
		return katanatsl.DelayKnobName(code)
	case "reverb":
		return katanatsl.ReverbKnobName(code)
	}
	fx, ok := katanatsl.ParseModFxType(block)
	if !ok {
		return "", fmt.Errorf("unknown block %q: want booster, delay, reverb or an Fx type", block)
	}
	return katanatsl.KnobTargetName(fx, code)
}
