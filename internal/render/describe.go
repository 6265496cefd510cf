package render

import "katanatsl"

// ActiveFx is the block an Fx slot has selected.
type ActiveFx struct {
	Slot    int                       `json:"slot"`
	On      bool                      `json:"on"`
	Block   string                    `json:"block"`
	Params  any                       `json:"params,omitempty"`
	HR1User []katanatsl.HarmonyTarget `json:"hr1_user,omitempty"`
	HR2User []katanatsl.HarmonyTarget `json:"hr2_user,omitempty"`
}

// Detail is one patch with the selected Fx blocks pulled out, which the
// full decode buries among every block's stored settings.
type Detail struct {
	Bank  int              `json:"bank"`
	Slot  int              `json:"slot"`
	Name  string           `json:"name"`
	Tonic string           `json:"tonic,omitempty"`
	Fx    []ActiveFx       `json:"fx"`
	Patch *katanatsl.Patch `json:"patch"`
}

func Describe(ref katanatsl.PatchRef) Detail {
	p := ref.Patch
	d := Detail{Bank: ref.Bank, Slot: ref.Slot, Name: p.Name, Patch: p, Fx: []ActiveFx{}}
	if p.Patch1 != nil {
		d.Tonic = p.Patch1.MasterKey.Tonic().Name()
	}
	for i, fx := range []*katanatsl.Fx{p.Fx1, p.Fx2} {
		if fx == nil {
			continue
		}
		a := ActiveFx{Slot: i + 1, On: fx.On, Block: fx.Type.String()}
		if name, params, ok := fx.Active(); ok {
			a.Block, a.Params = name, params
		}
		if fx.Type == katanatsl.FxHarmonist {
			if fx.Harmonist.HR1Harmony == katanatsl.HarmonyUser {
				a.HR1User = fx.Harmonist.HR1User.Targets()
			}
			if fx.Harmonist.HR2Harmony == katanatsl.HarmonyUser {
				a.HR2User = fx.Harmonist.HR2User.Targets()
			}
		}
		d.Fx = append(d.Fx, a)
	}
	return d
}
