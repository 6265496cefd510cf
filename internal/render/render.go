package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"katanatsl"
)

// Formats lists the accepted output formats.
var Formats = []string{"json", "yaml", "text"}

// Valid reports whether format is one of Formats.
func Valid(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Write renders v in the given format. Text rendering only knows documents
// and enum domains; anything else falls back to JSON.
func Write(w io.Writer, format string, v any) error {
	switch format {
	case "json", "":
		return JSON(w, v)
	case "yaml":
		return YAML(w, v)
	case "text":
		switch t := v.(type) {
		case *katanatsl.Document:
			return Text(w, t)
		case katanatsl.Domain:
			return DomainText(w, t)
		}
		return JSON(w, v)
	}
	return fmt.Errorf("unknown format %q", format)
}

func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML goes through the JSON encoding so field names and enum spellings
// match the JSON output.
func YAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	plain(&node)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return err
	}
	return enc.Close()
}

// plain clears the flow style the JSON source leaves on every node.
func plain(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" {
		n.Style &^= yaml.DoubleQuotedStyle
	}
	for _, c := range n.Content {
		plain(c)
	}
}

// Text writes a short human summary: one block per patch.
func Text(w io.Writer, doc *katanatsl.Document) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s (%s, rev %s)\n", doc.Name, doc.Device, doc.FormatRev)
	for _, ref := range doc.Patches() {
		p := ref.Patch
		fmt.Fprintf(&b, "\n[%d:%d] %s\n", ref.Bank, ref.Slot, p.Name)
		if p.Memo != nil && p.Memo.Text != "" {
			fmt.Fprintf(&b, "  memo:    %s\n", oneLine(p.Memo.Text))
		}
		if ba := p.BoostAmp; ba != nil {
			fmt.Fprintf(&b, "  amp:     %s gain %d vol %d\n", ba.Amp.Type, ba.Amp.Gain, ba.Amp.Volume)
			fmt.Fprintf(&b, "  boost:   %s %s drive %d\n", onOff(ba.Boost.On), ba.Boost.Type, ba.Boost.Drive)
		}
		for i, fx := range []*katanatsl.Fx{p.Fx1, p.Fx2} {
			if fx == nil {
				continue
			}
			name, _, ok := fx.Active()
			if !ok {
				name = fx.Type.String()
			}
			fmt.Fprintf(&b, "  fx%d:     %s %s\n", i+1, onOff(fx.On), name)
		}
		for i, d := range []*katanatsl.Delay{p.Delay1, p.Delay2} {
			if d == nil {
				continue
			}
			fmt.Fprintf(&b, "  delay%d:  %s %s %dms\n", i+1, onOff(d.On), d.Type, d.Time)
		}
		if p1 := p.Patch1; p1 != nil {
			fmt.Fprintf(&b, "  reverb:  %s %s %.1fs\n", onOff(p1.Reverb.On), p1.Reverb.Type, p1.Reverb.Time)
			fmt.Fprintf(&b, "  key:     %s\n", p1.MasterKey.Label())
		}
	}
	_, err := w.Write(b.Bytes())
	return err
}

// DomainText lists a domain as "code name label" lines.
func DomainText(w io.Writer, d katanatsl.Domain) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n", d.Name())
	for _, v := range d.Variants() {
		if v.Label != "" {
			fmt.Fprintf(&b, "  0x%02X  %-24s %s\n", v.Code, v.Name, v.Label)
		} else {
			fmt.Fprintf(&b, "  0x%02X  %s\n", v.Code, v.Name)
		}
	}
	_, err := w.Write(b.Bytes())
	return err
}

func onOff(on bool) string {
	if on {
		return "on "
	}
	return "off"
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
