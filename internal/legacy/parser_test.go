package legacy

import (
	"strings"
	"testing"
)

const sampleTopology = `
# Converted sample
[127.0.0.1:7200]
    workingdir = /tmp
    udp = 10000
    [[7200]]
        image = /opt/images/c7200-adventerprisek9-mz.124-15.T14.image
        ram = 512
        idlepc = 0x60bf2ae0
    [[ROUTER R1]]
        f0/0 = R2 f0/0
        x = -89.5
        y = -25.0
[GNS3-DATA]
    [[NOTE 1]]
        text = core lab
        x = 10.0
        y = 20.0
`

func TestParse(t *testing.T) {
	top, err := Parse(strings.NewReader(sampleTopology))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("sections", func(t *testing.T) {
		if len(top) != 2 {
			t.Fatalf("expected 2 sections, got %d", len(top))
		}
		names := top.SectionNames()
		if names[0] != "127.0.0.1:7200" || names[1] != "GNS3-DATA" {
			t.Errorf("unexpected section order: %v", names)
		}
	})

	t.Run("section scalars", func(t *testing.T) {
		sec := top["127.0.0.1:7200"]
		if sec.Scalars["workingdir"] != "/tmp" {
			t.Errorf("expected workingdir scalar, got %q", sec.Scalars["workingdir"])
		}
		if sec.Scalars["udp"] != "10000" {
			t.Errorf("expected udp scalar, got %q", sec.Scalars["udp"])
		}
	})

	t.Run("blocks", func(t *testing.T) {
		sec := top["127.0.0.1:7200"]
		names := sec.BlockNames()
		if len(names) != 2 || names[0] != "7200" || names[1] != "ROUTER R1" {
			t.Fatalf("unexpected block order: %v", names)
		}
		if sec.Blocks["7200"]["ram"] != "512" {
			t.Errorf("expected ram 512, got %q", sec.Blocks["7200"]["ram"])
		}
		if sec.Blocks["ROUTER R1"]["f0/0"] != "R2 f0/0" {
			t.Errorf("expected interface value, got %q", sec.Blocks["ROUTER R1"]["f0/0"])
		}
	})

	t.Run("artwork block", func(t *testing.T) {
		note := top["GNS3-DATA"].Blocks["NOTE 1"]
		if note["text"] != "core lab" {
			t.Errorf("expected note text, got %q", note["text"])
		}
	})
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"block outside section": "[[ROUTER R1]]\n",
		"value outside section": "x = 1\n",
		"unterminated section":  "[127.0.0.1:7200\n",
		"unterminated block":    "[a]\n[[ROUTER R1\n",
		"missing equals":        "[a]\njust some text\n",
		"empty section header":  "[]\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(input)); err == nil {
				t.Errorf("expected error for %q", input)
			}
		})
	}
}

func TestParseComments(t *testing.T) {
	top, err := Parse(strings.NewReader("# top\n[a]\n; ini comment\nk = v\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top["a"].Scalars["k"] != "v" {
		t.Errorf("expected scalar to survive comments, got %v", top["a"].Scalars)
	}
}
