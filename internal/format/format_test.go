package format

import (
	"errors"
	"strings"
	"testing"

	"vhdlfmt/internal/config"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/source"
)

func formatString(t *testing.T, input string, cfg config.Config) string {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.vhd", []byte(input)))
	bag := diag.NewBag(100)
	out, err := FormatSource(file, cfg, bag)
	if err != nil {
		t.Fatalf("format failed: %v (%d diagnostics)", err, bag.Len())
	}
	return out
}

func withIndent(size int) config.Config {
	cfg := config.Default()
	cfg.IndentSize = size
	return cfg
}

func TestFormatEntityScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cfg   config.Config
		want  string
	}{
		{
			name:  "empty entity",
			input: "entity simple_entity is end;",
			cfg:   config.Default(),
			want:  "entity simple_entity is\nend entity simple_entity;\n",
		},
		{
			name:  "generic indent 2",
			input: "entity configurable is generic (WIDTH : positive := 8); end entity;",
			cfg:   withIndent(2),
			want:  "entity configurable is\n  generic ( WIDTH : positive := 8 );\nend entity configurable;\n",
		},
		{
			name:  "generic indent 4",
			input: "entity configurable is generic (WIDTH : positive := 8); end entity;",
			cfg:   withIndent(4),
			want:  "entity configurable is\n    generic ( WIDTH : positive := 8 );\nend entity configurable;\n",
		},
		{
			name:  "ports",
			input: "entity counter is\nport(clk: in std_logic;count:out natural);\nend counter;",
			cfg:   config.Default(),
			want:  "entity counter is\n  port ( clk : in std_logic; count : out natural );\nend entity counter;\n",
		},
		{
			name: "generic before port",
			input: `entity fifo is
  port (data_in : in std_logic_vector(7 downto 0));
end entity fifo;`,
			cfg:  config.Default(),
			want: "entity fifo is\n  port ( data_in : in std_logic_vector(7 downto 0) );\nend entity fifo;\n",
		},
		{
			name: "both clauses",
			input: `entity fifo is
  generic (DEPTH : positive := 16);
  port (data_in : in std_logic_vector(7 downto 0));
end entity fifo;`,
			cfg: config.Default(),
			want: "entity fifo is\n" +
				"  generic ( DEPTH : positive := 16 );\n" +
				"  port ( data_in : in std_logic_vector(7 downto 0) );\n" +
				"end entity fifo;\n",
		},
		{
			name:  "end label",
			input: "entity my_entity is end entity custom_label;",
			cfg:   config.Default(),
			want:  "entity my_entity is\nend entity custom_label;\n",
		},
		{
			name:  "empty architecture",
			input: "architecture rtl of counter is begin end;",
			cfg:   config.Default(),
			want:  "architecture rtl of counter is\nbegin\nend architecture rtl;\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatString(t, tt.input, tt.cfg)
			if got != tt.want {
				t.Errorf("format mismatch\nwant:\n%s\ngot:\n%s", tt.want, got)
			}
		})
	}
}

func TestFormatBrokenPortClauseIsAligned(t *testing.T) {
	input := `entity e is
  port (clk : in std_logic; data_out : out std_logic_vector(7 downto 0); rst: in std_logic := '0');
end;`
	cfg := config.Default()
	cfg.LineLength = 60
	want := `entity e is
  port (
    clk      : in  std_logic;
    data_out : out std_logic_vector(7 downto 0);
    rst      : in  std_logic                    := '0'
  );
end entity e;
`
	if got := formatString(t, input, cfg); got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatAlignmentDisabled(t *testing.T) {
	input := `entity e is
  port (clk : in std_logic; data_out : out std_logic_vector(7 downto 0));
end;`
	cfg := config.Default()
	cfg.LineLength = 40
	cfg.Declarations = config.Declarations{}
	want := `entity e is
  port (
    clk : in std_logic;
    data_out : out std_logic_vector(7 downto 0)
  );
end entity e;
`
	if got := formatString(t, input, cfg); got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatKeepsComments(t *testing.T) {
	input := `-- file header

-- counter entity
entity counter is
  port (
    -- clock input
    clk : in std_logic; -- rising edge

    count : out natural  -- current value
    -- trailing port comment
  );
end entity;
-- the end
`
	want := `-- file header

-- counter entity
entity counter is
  port (
    -- clock input
    clk   : in  std_logic; -- rising edge

    count : out natural -- current value
    -- trailing port comment
  );
end entity counter;
-- the end
`
	if got := formatString(t, input, config.Default()); got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatArchitectureBody(t *testing.T) {
	input := `library ieee;
use ieee.std_logic_1164.all;

architecture rtl of counter is
signal cnt : natural := 0;
constant max_count : natural := 9;
begin
process (clk)
begin
if rising_edge(clk) then
if cnt = max_count then
cnt <= 0;
else
cnt <= cnt + 1;
end if;
end if;
end process;

count <= cnt;
end architecture;
`
	want := `library ieee;
use ieee.std_logic_1164.all;

architecture rtl of counter is
  signal   cnt       : natural := 0;
  constant MAX_COUNT : natural := 9;
begin
  process (clk)
  begin
    if rising_edge(clk) then
      if cnt = MAX_COUNT then
        cnt <= 0;
      else
        cnt <= cnt + 1;
      end if;
    end if;
  end process;

  count <= cnt;
end architecture rtl;
`
	if got := formatString(t, input, config.Default()); got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatDeclarationRunsSplitOnBlankLines(t *testing.T) {
	input := `architecture rtl of e is
  signal a : bit;
  signal long_name : bit;

  signal b : bit;
  type state_t is (idle, run);
  signal state : state_t;
begin
end;
`
	want := `architecture rtl of e is
  signal a         : bit;
  signal long_name : bit;

  signal b : bit;
  type state_t is (idle, run);
  signal state : state_t;
begin
end architecture rtl;
`
	if got := formatString(t, input, config.Default()); got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatInstancePortMap(t *testing.T) {
	input := `architecture rtl of top is
begin
  u_counter : entity work.counter port map (clk => sys_clk, count => count_value);
end architecture rtl;
`
	t.Run("flat", func(t *testing.T) {
		want := `architecture rtl of top is
begin
  u_counter : entity work.counter port map (clk => sys_clk, count => count_value);
end architecture rtl;
`
		if got := formatString(t, input, config.Default()); got != want {
			t.Errorf("want:\n%s\ngot:\n%s", want, got)
		}
	})
	t.Run("broken", func(t *testing.T) {
		cfg := config.Default()
		cfg.LineLength = 40
		want := `architecture rtl of top is
begin
  u_counter : entity work.counter
    port map (
      clk   => sys_clk,
      count => count_value
    );
end architecture rtl;
`
		if got := formatString(t, input, cfg); got != want {
			t.Errorf("want:\n%s\ngot:\n%s", want, got)
		}
	})
	t.Run("unaligned", func(t *testing.T) {
		cfg := config.Default()
		cfg.LineLength = 40
		cfg.PortMap.AlignSignals = false
		got := formatString(t, input, cfg)
		if !strings.Contains(got, "      clk => sys_clk,\n") {
			t.Errorf("expected unpadded association, got:\n%s", got)
		}
	})
}

func TestFormatCasing(t *testing.T) {
	input := "entity myCounter is generic (maxValue : natural := 3); end;"
	tests := []struct {
		name   string
		casing config.Casing
		want   string
	}{
		{
			name:   "upper keywords",
			casing: config.Casing{Keywords: "UPPER_CASE", Constants: "preserve", Identifiers: "preserve"},
			want:   "ENTITY myCounter IS\n  GENERIC ( maxValue : natural := 3 );\nEND ENTITY myCounter;\n",
		},
		{
			name:   "snake identifiers",
			casing: config.Casing{Keywords: "lower_case", Constants: "UPPER_CASE", Identifiers: "snake_case"},
			want:   "entity my_counter is\n  generic ( MAXVALUE : natural := 3 );\nend entity my_counter;\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Casing = tt.casing
			if got := formatString(t, input, cfg); got != tt.want {
				t.Errorf("want:\n%s\ngot:\n%s", tt.want, got)
			}
		})
	}
}

func TestFormatTabsAndCRLF(t *testing.T) {
	cfg := config.Default()
	cfg.IndentStyle = "tabs"
	got := formatString(t, "entity e is\r\nport (a : in bit);\r\nend;\r\n", cfg)
	want := "entity e is\r\n\tport ( a : in bit );\r\nend entity e;\r\n"
	if got != want {
		t.Errorf("want %q, got %q", want, got)
	}

	cfg.EOL = "lf"
	got = formatString(t, "entity e is\r\nend;\r\n", cfg)
	if want := "entity e is\nend entity e;\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestFormatEmptyFile(t *testing.T) {
	if got := formatString(t, "", config.Default()); got != "" {
		t.Errorf("empty file should format to empty output, got %q", got)
	}
}

func TestFormatRejectsSyntaxErrors(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("bad.vhd", []byte("entity is end;")))
	bag := diag.NewBag(100)
	_, err := FormatSource(file, config.Default(), bag)
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("err = %v, want ErrSyntax", err)
	}
	if !bag.HasErrors() {
		t.Errorf("expected diagnostics in the bag")
	}
}

func TestFormatRespectsWidth(t *testing.T) {
	input := `architecture rtl of e is
begin
  y <= a_long_signal_name and another_long_signal_name and yet_another_signal and fallback_value;
end;
`
	cfg := config.Default()
	cfg.LineLength = 50
	got := formatString(t, input, cfg)
	for i, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		if len(line) > cfg.LineLength {
			t.Errorf("line %d exceeds %d columns: %q", i+1, cfg.LineLength, line)
		}
	}
	want := `architecture rtl of e is
begin
  y <= a_long_signal_name and
    another_long_signal_name and
    yet_another_signal and
    fallback_value;
end architecture rtl;
`
	if got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatStatementIndent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{
			name:  "concurrent assign",
			input: "architecture a of e is begin y <= a; end;",
			width: 100,
			want:  "architecture a of e is\nbegin\n  y <= a;\nend architecture a;\n",
		},
		{
			name:  "assign in process",
			input: "architecture a of e is begin process begin y <= a or b; end process; end;",
			width: 100,
			want:  "architecture a of e is\nbegin\n  process\n  begin\n    y <= a or b;\n  end process;\nend architecture a;\n",
		},
		{
			name:  "broken assign in process",
			input: "architecture a of e is begin process begin result_sig <= alpha_sig and beta_sig; end process; end;",
			width: 35,
			want: "architecture a of e is\nbegin\n  process\n  begin\n" +
				"    result_sig <= alpha_sig and\n      beta_sig;\n" +
				"  end process;\nend architecture a;\n",
		},
		{
			name:  "assert",
			input: `architecture a of e is begin assert ready = '1' report "not ready" severity error; end;`,
			width: 100,
			want:  "architecture a of e is\nbegin\n  assert ready = '1' report \"not ready\" severity error;\nend architecture a;\n",
		},
		{
			name:  "broken assert in process",
			input: `architecture a of e is begin process begin assert ready = '1' report "not ready" severity error; wait; end process; end;`,
			width: 40,
			want: "architecture a of e is\nbegin\n  process\n  begin\n" +
				"    assert ready = '1'\n      report \"not ready\"\n      severity error;\n    wait;\n" +
				"  end process;\nend architecture a;\n",
		},
		{
			name:  "procedure call",
			input: "architecture a of e is begin process begin check(a, b); end process; end;",
			width: 100,
			want:  "architecture a of e is\nbegin\n  process\n  begin\n    check(a, b);\n  end process;\nend architecture a;\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.LineLength = tt.width
			if got := formatString(t, tt.input, cfg); got != tt.want {
				t.Errorf("want:\n%s\ngot:\n%s", tt.want, got)
			}
		})
	}
}

// The terminating ';' counts toward the line width.
func TestFormatWidthIncludesTerminator(t *testing.T) {
	input := "architecture a of e is begin process begin vv := alpha and beta; end process; end;"
	const line = "    vv := alpha and beta;"
	tests := []struct {
		width int
		want  string
	}{
		{len(line), line + "\n"},
		{len(line) - 1, "    vv := alpha and\n      beta;\n"},
	}
	for _, tt := range tests {
		cfg := config.Default()
		cfg.LineLength = tt.width
		got := formatString(t, input, cfg)
		if !strings.Contains(got, "begin\n"+tt.want+"  end process;") {
			t.Errorf("width %d: got:\n%s", tt.width, got)
		}
		for _, l := range strings.Split(got, "\n") {
			if len(l) > tt.width {
				t.Errorf("width %d: line %q is %d columns", tt.width, l, len(l))
			}
		}
	}
}

func TestFormatBreaksAfterAdditiveOperators(t *testing.T) {
	input := "package p is constant CC : natural := alpha_val + beta_val + gamma_val; end;"
	cfg := config.Default()
	cfg.LineLength = 40
	want := `package p is
  constant CC : natural := alpha_val +
    beta_val +
    gamma_val;
end package p;
`
	if got := formatString(t, input, cfg); got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}
