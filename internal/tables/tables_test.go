package tables

import "testing"

func TestLoadKnownSpaceGroups(t *testing.T) {
	for _, sg := range []int{1, 2, 15, 139, 194, 206, 221, 225, 230} {
		if !Known(sg) {
			t.Errorf("Known(%d) = false, want true", sg)
		}
		d, err := Load(sg)
		if err != nil {
			t.Fatalf("Load(%d) failed: %v", sg, err)
		}
		if d.Number != sg {
			t.Errorf("Load(%d).Number = %d", sg, d.Number)
		}
		if len(d.Positions) == 0 {
			t.Errorf("Load(%d) has no Wyckoff positions", sg)
		}
	}
}

func TestLoadUnknownSpaceGroup(t *testing.T) {
	if Known(99) {
		t.Errorf("Known(99) = true, want false (not bundled)")
	}
	if _, err := Load(99); err == nil {
		t.Errorf("expected error loading unbundled space group 99")
	}
}

func TestGeneralPositionIsHighestMultiplicity(t *testing.T) {
	cases := map[int]int{
		1: 1, 2: 2, 15: 8, 139: 32, 194: 24, 206: 48, 221: 48, 225: 192, 230: 96,
	}
	for sg, wantMult := range cases {
		d, err := Load(sg)
		if err != nil {
			t.Fatalf("Load(%d) failed: %v", sg, err)
		}
		general := d.Positions[0]
		if general.Multiplicity() != wantMult {
			t.Errorf("sg %d: general position multiplicity = %d, want %d", sg, general.Multiplicity(), wantMult)
		}
		for _, p := range d.Positions[1:] {
			if p.Multiplicity() > general.Multiplicity() {
				t.Errorf("sg %d: position %q has higher multiplicity than the general position", sg, p.Letter)
			}
		}
	}
}

func TestCubicGeneralPositionOpsAreUnique(t *testing.T) {
	d, err := Load(225)
	if err != nil {
		t.Fatalf("Load(225) failed: %v", err)
	}
	seen := map[string]bool{}
	for _, s := range d.Positions[0].Ops {
		if seen[s] {
			t.Errorf("duplicate operation in Fm-3m general position: %q", s)
		}
		seen[s] = true
	}
}
