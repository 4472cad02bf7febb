package geometry

import (
	"encoding/hex"
	"fmt"

	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// Decoder converts hex-encoded (E)WKB geometries into their WKT text form.
type Decoder struct {
	// StripSRID drops the EWKB spatial reference id. When false, a nonzero
	// SRID is kept as an EWKT "SRID=n;" prefix, since WKT proper has no
	// slot for it.
	StripSRID bool
}

func NewDecoder() Decoder {
	return Decoder{StripSRID: true}
}

// HexToWKT decodes a lowercase hex string holding a WKB or EWKB geometry
// and renders it as WKT. Malformed hex or an unrecognized geometry encoding
// is an error; there is no per-value recovery.
func (d Decoder) HexToWKT(s string) (string, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("malformed geometry hex: %w", err)
	}
	g, err := ewkb.Unmarshal(raw)
	if err != nil {
		return "", fmt.Errorf("unrecognized geometry encoding: %w", err)
	}
	out, err := wkt.Marshal(g)
	if err != nil {
		return "", fmt.Errorf("failed to encode geometry as WKT: %w", err)
	}
	if !d.StripSRID && g.SRID() != 0 {
		out = fmt.Sprintf("SRID=%d;%s", g.SRID(), out)
	}
	return out, nil
}
