package pointgroup

import (
	"testing"

	"github.com/asymmetrica/crystalgen/internal/symmop"
)

func mustParse(t *testing.T, xyz string) symmop.Op {
	t.Helper()
	op, err := symmop.Parse(xyz)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", xyz, err)
	}
	return op
}

// TestSymbolTriclinicIdentityOnly checks the trivial point group 1.
func TestSymbolTriclinicIdentityOnly(t *testing.T) {
	ops := []symmop.Op{symmop.Identity}
	got := Symbol(ops, Triclinic)
	if got != "1" {
		t.Errorf("Symbol = %q, want 1", got)
	}
}

// TestSymbolTriclinicInversion checks point group -1.
func TestSymbolTriclinicInversion(t *testing.T) {
	ops := []symmop.Op{symmop.Identity, mustParse(t, "-x,-y,-z")}
	got := Symbol(ops, Triclinic)
	if got != "-1" {
		t.Errorf("Symbol = %q, want -1", got)
	}
}

// TestSymbolTetragonalFourfold checks a bare 4-fold axis along z reads "4".
func TestSymbolTetragonalFourfold(t *testing.T) {
	ops := []symmop.Op{
		symmop.Identity,
		mustParse(t, "-y,x,z"),
		mustParse(t, "-x,-y,z"),
		mustParse(t, "y,-x,z"),
	}
	got := Symbol(ops, Tetragonal)
	if got != "4" {
		t.Errorf("Symbol = %q, want 4", got)
	}
}
