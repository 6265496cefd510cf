package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"katanatsl"
	"katanatsl/internal/render"
)

func errUnknownFormat(f string) error {
	return fmt.Errorf("unknown format %q (want one of %v)", f, render.Formats)
}

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode every patch of a TSL file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd, args)
		if err != nil {
			return err
		}
		log.Printf("decoded %d patches from %q", len(doc.Patches()), doc.Name)
		return render.Write(cmd.OutOrStdout(), cfg.Format, doc)
	},
}

var namesCmd = &cobra.Command{
	Use:   "names [file]",
	Short: "List patch names with their bank and slot",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd, args)
		if err != nil {
			return err
		}
		for _, ref := range doc.Patches() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\n", ref.Bank, ref.Slot, ref.Patch.Name)
		}
		return nil
	},
}

var (
	describeBank int
	describeSlot int
)

var describeCmd = &cobra.Command{
	Use:   "describe [file]",
	Short: "Show one patch with its selected effect blocks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd, args)
		if err != nil {
			return err
		}
		if describeBank < 0 || describeBank >= len(doc.Banks) {
			return fmt.Errorf("bank %d out of range (file has %d)", describeBank, len(doc.Banks))
		}
		bank := doc.Banks[describeBank]
		if describeSlot < 0 || describeSlot >= len(bank) {
			return fmt.Errorf("slot %d out of range (bank has %d)", describeSlot, len(bank))
		}
		ref := katanatsl.PatchRef{Bank: describeBank, Slot: describeSlot, Patch: bank[describeSlot]}
		format := cfg.Format
		if format == "text" {
			format = "yaml"
		}
		return render.Write(cmd.OutOrStdout(), format, render.Describe(ref))
	},
}

var enumsCmd = &cobra.Command{
	Use:   "enums [domain]",
	Short: "List enum domains, or the codes of one domain",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, d := range katanatsl.Domains() {
				fmt.Fprintln(out, d.Name())
			}
			return nil
		}
		d, ok := katanatsl.LookupDomain(args[0])
		if !ok {
			return fmt.Errorf("unknown enum domain %q", args[0])
		}
		if cfg.Format == "text" {
			return render.DomainText(out, d)
		}
		return render.Write(out, cfg.Format, d.Variants())
	},
}

func init() {
	describeCmd.Flags().IntVarP(&describeBank, "bank", "b", 0, "bank index, from 0")
	describeCmd.Flags().IntVarP(&describeSlot, "slot", "s", 0, "slot index within the bank, from 0")

	rootCmd.AddCommand(decodeCmd, namesCmd, describeCmd, enumsCmd)
}
