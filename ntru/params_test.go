package ntru

import "testing"

func allPresets() []func() *Params {
	return []func() *Params{
		PresetEES401EP1, PresetEES449EP1, PresetEES541EP1, PresetEES677EP1,
		PresetEES1087EP1, PresetEES1087EP2, PresetEES1171EP1, PresetEES1499EP1,
		PresetAPR2011_439, PresetAPR2011_439_FAST, PresetAPR2011_743, PresetAPR2011_743_FAST,
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, ctor := range allPresets() {
		p := ctor()
		if err := p.Validate(); err != nil {
			t.Fatalf("%s: Validate failed: %v", p.Name, err)
		}
	}
}

func TestParamsBytesRoundTrip(t *testing.T) {
	for _, ctor := range allPresets() {
		p := ctor()
		data := p.Bytes()
		got, err := ParamsFromBytes(data)
		if err != nil {
			t.Fatalf("%s: ParamsFromBytes: %v", p.Name, err)
		}
		// Name is metadata, not part of the serialized cryptographic identity.
		name := p.Name
		p.Name, got.Name = "", ""
		if *got != *p {
			t.Fatalf("%s: round trip mismatch: got %+v, want %+v", name, got, p)
		}
	}
}

func TestLookupPresetByOID(t *testing.T) {
	want := PresetAPR2011_439()
	got, err := LookupPreset(want.OID)
	if err != nil {
		t.Fatalf("LookupPreset: %v", err)
	}
	if got.Name != want.Name {
		t.Fatalf("LookupPreset returned %s, want %s", got.Name, want.Name)
	}
}

func TestLookupPresetInvalidOID(t *testing.T) {
	if _, err := LookupPreset([3]byte{0xff, 0xff, 0xff}); err == nil {
		t.Fatalf("expected error for unknown OID")
	}
}

func TestValidateRejectsBadQ(t *testing.T) {
	p := PresetEES401EP1()
	p.Q = 2047 // not a power of two
	if err := p.Validate(); err == nil {
		t.Fatalf("expected Validate to reject a non-power-of-two Q")
	}
}

func TestValidateRejectsOversizeMessage(t *testing.T) {
	p := PresetEES401EP1()
	p.MaxMsgLenBytes = 256
	if err := p.Validate(); err == nil {
		t.Fatalf("expected Validate to reject MaxMsgLenBytes > 255")
	}
}
