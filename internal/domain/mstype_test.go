package domain

import "testing"

func TestParseMsType(t *testing.T) {
	cases := []struct {
		code int
		want MsType
	}{
		{0, MsTypePrecursor},
		{8, MsTypeFragmentDDA},
		{9, MsTypeFragmentDIA},
		{1, MsTypeUnknown},
		{7, MsTypeUnknown},
		{10, MsTypeUnknown},
		{-5, MsTypeUnknown},
		{255, MsTypeUnknown},
	}
	for _, c := range cases {
		if got := ParseMsType(c.code); got != c.want {
			t.Errorf("ParseMsType(%d) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestMsTypeRoundTrip(t *testing.T) {
	// Canonical codes survive a parse/code round trip unchanged.
	for _, code := range []int{0, 8, 9} {
		if got := ParseMsType(code).Code(); got != code {
			t.Errorf("round trip of code %d gave %d", code, got)
		}
	}
	// Parsing is idempotent through Code for every canonical type.
	for _, typ := range []MsType{MsTypePrecursor, MsTypeFragmentDDA, MsTypeFragmentDIA, MsTypeUnknown} {
		if got := ParseMsType(typ.Code()); got != typ {
			t.Errorf("ParseMsType(%v.Code()) = %v", typ, got)
		}
	}
}

func TestMsTypeString(t *testing.T) {
	cases := map[MsType]string{
		MsTypePrecursor:   "precursor",
		MsTypeFragmentDDA: "fragment-dda",
		MsTypeFragmentDIA: "fragment-dia",
		MsTypeUnknown:     "unknown",
		MsType(42):        "unknown",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("MsType(%d).String() = %q, want %q", int(typ), got, want)
		}
	}
}
