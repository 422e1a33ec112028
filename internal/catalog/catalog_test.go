package catalog

import (
	"errors"
	"testing"
)

func TestMotherboardPorts(t *testing.T) {
	t.Run("c7200 has no motherboard ports", func(t *testing.T) {
		spec, err := MotherboardPorts("c7200", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.Ports != 0 {
			t.Errorf("expected 0 ports, got %d", spec.Ports)
		}
	})

	t.Run("c3725 has two FastEthernet ports", func(t *testing.T) {
		spec, err := MotherboardPorts("c3725", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.Ports != 2 || spec.Type != "F" {
			t.Errorf("expected {2 F}, got %+v", spec)
		}
	})

	t.Run("chassis variant lookup", func(t *testing.T) {
		spec, err := MotherboardPorts("c2600", "2621XM")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.Ports != 2 || spec.Type != "F" {
			t.Errorf("expected {2 F}, got %+v", spec)
		}
	})

	t.Run("unknown model is an error", func(t *testing.T) {
		if _, err := MotherboardPorts("c9999", ""); !errors.Is(err, ErrUnknownModel) {
			t.Errorf("expected ErrUnknownModel, got %v", err)
		}
	})

	t.Run("unknown chassis is an error", func(t *testing.T) {
		if _, err := MotherboardPorts("c3600", "3661"); !errors.Is(err, ErrUnknownModel) {
			t.Errorf("expected ErrUnknownModel, got %v", err)
		}
	})
}

func TestAdapter(t *testing.T) {
	t.Run("known adapters", func(t *testing.T) {
		cases := map[string]PortSpec{
			"C7200-IO-2FE":  {Ports: 2, Type: "F"},
			"C7200-IO-GE-E": {Ports: 1, Type: "G"},
			"Leopard-2FE":   {Ports: 2, Type: "F"},
			"NM-16ESW":      {Ports: 16, Type: "F"},
			"PA-4T+":        {Ports: 4, Type: "S"},
			"WIC-2T":        {Ports: 2, Type: "S"},
		}
		for name, want := range cases {
			got, err := Adapter(name)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", name, err)
			}
			if got != want {
				t.Errorf("%s: expected %+v, got %+v", name, want, got)
			}
		}
	})

	t.Run("unknown adapter is an error", func(t *testing.T) {
		if _, err := Adapter("NM-BOGUS"); !errors.Is(err, ErrUnknownAdapter) {
			t.Errorf("expected ErrUnknownAdapter, got %v", err)
		}
	})
}

func TestCanonicalModel(t *testing.T) {
	cases := map[string]string{
		"1720": "c1700",
		"1760": "c1700",
		"2621": "c2600",
		"2651XM": "c2600",
		"3620": "c3600",
		"3660": "c3600",
		"2691": "c2691",
		"3725": "c3725",
		"3745": "c3745",
		"7200": "c7200",
	}
	for chassis, want := range cases {
		got, err := CanonicalModel(chassis)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", chassis, err)
		}
		if got != want {
			t.Errorf("%s: expected %s, got %s", chassis, want, got)
		}
	}

	if _, err := CanonicalModel("9999"); !errors.Is(err, ErrUnknownChassis) {
		t.Errorf("expected ErrUnknownChassis, got %v", err)
	}
}

func TestExpandInterface(t *testing.T) {
	cases := map[string]string{
		"f0/0":  "FastEthernet0/0",
		"fa0/1": "FastEthernet0/1",
		"g1/0":  "GigabitEthernet1/0",
		"s2/3":  "Serial2/3",
		"e0/0":  "Ethernet0/0",
		"a1/0":  "ATM1/0",
		"an1/0": "Analysis-Module1/0",
	}
	for in, want := range cases {
		got, err := ExpandInterface(in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("%s: expected %s, got %s", in, want, got)
		}
	}

	if _, err := ExpandInterface("bogus"); err == nil {
		t.Error("expected error for non-interface string")
	}
}

// Expanding a short code and mapping the long name back must recover the
// original code.
func TestPortTypeRoundTrip(t *testing.T) {
	for _, code := range []string{"G", "M", "F", "E", "S", "A", "P", "I", "AN"} {
		long, err := LongName(code)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", code, err)
		}
		back, ok := ShortCode(long)
		if !ok {
			t.Fatalf("%s: no short code for %s", code, long)
		}
		if back != code {
			t.Errorf("round trip %s -> %s -> %s", code, long, back)
		}
	}
}

func TestInterfaceRe(t *testing.T) {
	for _, key := range []string{"f0/0", "F0/0", "se1/15", "po3/0", "id1/0"} {
		if !InterfaceRe.MatchString(key) {
			t.Errorf("expected %q to match", key)
		}
	}
	for _, key := range []string{"1", "slot0", "connections", "f0", "x"} {
		if InterfaceRe.MatchString(key) {
			t.Errorf("expected %q not to match", key)
		}
	}
}
