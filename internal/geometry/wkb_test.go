package geometry

import (
	"testing"
)

const (
	// POINT (1 2), little-endian WKB
	pointWKB = "0101000000000000000000f03f0000000000000040"
	// POINT (1 2) with SRID 4326, little-endian EWKB
	pointEWKB = "0101000020e6100000000000000000f03f0000000000000040"
	// LINESTRING (0 0, 1 1), little-endian WKB
	lineWKB = "0102000000020000000000000000000000000000000000000000000000000000f03f000000000000f03f"
)

func TestHexToWKT(t *testing.T) {
	dec := NewDecoder()

	cases := []struct {
		name string
		hex  string
		want string
	}{
		{"point", pointWKB, "POINT (1 2)"},
		{"linestring", lineWKB, "LINESTRING (0 0, 1 1)"},
		{"point with srid stripped", pointEWKB, "POINT (1 2)"},
	}

	for _, c := range cases {
		got, err := dec.HexToWKT(c.hex)
		if err != nil {
			t.Errorf("%s: HexToWKT failed: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: HexToWKT = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestHexToWKTKeepSRID(t *testing.T) {
	dec := Decoder{StripSRID: false}

	got, err := dec.HexToWKT(pointEWKB)
	if err != nil {
		t.Fatalf("HexToWKT failed: %v", err)
	}
	if got != "SRID=4326;POINT (1 2)" {
		t.Errorf("HexToWKT = %q, want SRID prefix preserved", got)
	}

	// Plain WKB has no SRID to keep.
	got, err = dec.HexToWKT(pointWKB)
	if err != nil {
		t.Fatalf("HexToWKT failed: %v", err)
	}
	if got != "POINT (1 2)" {
		t.Errorf("HexToWKT = %q, want POINT (1 2)", got)
	}
}

func TestHexToWKTMalformedHex(t *testing.T) {
	dec := NewDecoder()
	if _, err := dec.HexToWKT("zz not hex"); err == nil {
		t.Error("Expected error for malformed hex")
	}
}

func TestHexToWKTUnrecognizedEncoding(t *testing.T) {
	dec := NewDecoder()
	if _, err := dec.HexToWKT("ff00"); err == nil {
		t.Error("Expected error for unrecognized geometry encoding")
	}
}
