package casing

import "testing"

func TestApply(t *testing.T) {
	cases := []struct {
		in    string
		style Style
		want  string
	}{
		{"Entity", Lower, "entity"},
		{"entity", Upper, "ENTITY"},
		{"MixedCase", Preserve, "MixedCase"},
		{"dataIn", Snake, "data_in"},
		{"HTTPServer", Snake, "http_server"},
		{"data_in", Snake, "data_in"},
		{"reg2Out", Snake, "reg2_out"},
		{`\Ext Id\`, Upper, `\Ext Id\`},
		{`"Hello"`, Upper, `"Hello"`},
		{"'a'", Upper, "'a'"},
		{`x"ff"`, Upper, `x"ff"`},
		{"16#ff#", Upper, "16#ff#"},
		{"10 ns", Upper, "10 ns"},
	}
	for _, tc := range cases {
		if got := Apply(tc.in, tc.style); got != tc.want {
			t.Errorf("Apply(%q, %s) = %q, want %q", tc.in, tc.style, got, tc.want)
		}
	}
}

func TestParseStyle(t *testing.T) {
	for in, want := range map[string]Style{
		"lower": Lower, "lower_case": Lower, "upper": Upper, "UPPER_CASE": Upper,
		"preserve": Preserve, "snake_case": Snake,
	} {
		got, err := ParseStyle(in)
		if err != nil || got != want {
			t.Errorf("ParseStyle(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseStyle("camel"); err == nil {
		t.Errorf("expected error for unknown style")
	}
}

func TestTransformConstantClass(t *testing.T) {
	tr := NewTransform(Lower, Upper, Lower)
	tr.AddConstant("Width")
	if got := tr.Name("width"); got != "WIDTH" {
		t.Errorf("constant use = %q", got)
	}
	if got := tr.Name("Counter"); got != "counter" {
		t.Errorf("identifier = %q", got)
	}
	if got := tr.Keyword("END"); got != "end" {
		t.Errorf("keyword = %q", got)
	}
}
