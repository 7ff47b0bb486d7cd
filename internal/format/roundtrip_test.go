package format

import (
	"testing"

	"vhdlfmt/internal/config"
)

const richSource = `-- shared definitions
package p is
  constant C : integer := 4;
  type state_t is (idle, run, done);
  type mem_t is array (0 to 15) of std_logic_vector(7 downto 0);
  type rec_t is record
    a, b : integer; -- fields
  end record;
  type time_t is range 0 to 1000 units
    fs;
    ps = 1000 fs;
  end units;
  subtype byte is std_logic_vector(7 downto 0);
  function f(x : integer) return integer;
end package p;

package body p is
  function f(x : integer) return integer is
    variable acc : integer := 0;
  begin
    return x + C;
  end function f;
end package body p;

library ieee;
use ieee.std_logic_1164.all;

entity counter is
  generic (W : positive := 8);
  port (
    clk, rst : in std_logic;
    q : out std_logic_vector(W - 1 downto 0) -- output
  );
end entity counter;

architecture rtl of counter is
  constant ZERO : byte := (others => '0');
  shared variable cnt : integer;
  alias hi : bit is v(7);
  component fifo is
    port (clk : in std_logic);
  end component;
  attribute keep : boolean;
  attribute keep of s : signal is true;
  file f : text open read_mode is "in.txt";
begin
  q <= d when en = '1' else q;
  with sel select
    y <= a when "00",
         b when others;
  u_core : entity work.core(rtl)
    generic map (W => 8)
    port map (clk => clk, q => open);
  u2 : fifo port map (clk, rst);
  gen : for i in 0 to 3 generate
    x(i) <= y(i);
  end generate gen;
  g2 : if W > 4 generate
    signal t : bit;
  begin
    t <= '0';
  else generate
  end generate;
  assert W > 0 report "bad" severity failure;
  log_it(x);

  seq : process (clk, rst) is
    variable n : integer := 0;
  begin
    if rst = '1' then
      n := 0;
    elsif rising_edge(clk) then
      n := n + 1;
    else
      null;
    end if;
    case state is
      when idle | done => state <= run; -- go
      when others => null;
    end case;
    outer : for i in v'range loop
      next when v(i) = '0';
      exit outer;
    end loop outer;
    while n < 4 loop
      n := n + 1;
    end loop;
    loop
      wait until clk = '1' for 10 ns;
    end loop;
    report "done" severity note;
    wait;
  end process seq;
end rtl;
-- end of file
`

func TestCheckRoundTrip(t *testing.T) {
	narrow := config.Default()
	narrow.LineLength = 40
	upper := config.Default()
	upper.Casing.Keywords = "UPPER_CASE"
	tabs := config.Default()
	tabs.IndentStyle = "tabs"

	for name, cfg := range map[string]config.Config{
		"default": config.Default(),
		"narrow":  narrow,
		"upper":   upper,
		"tabs":    tabs,
	} {
		t.Run(name, func(t *testing.T) {
			if ok, reason := CheckRoundTrip([]byte(richSource), cfg); !ok {
				t.Fatalf("round trip failed: %s", reason)
			}
		})
	}
}

func TestCheckRoundTripReportsSyntaxErrors(t *testing.T) {
	ok, reason := CheckRoundTrip([]byte("entity is end;"), config.Default())
	if ok || reason == "" {
		t.Fatalf("ok = %v, reason = %q", ok, reason)
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	a := formatString(t, richSource, config.Default())
	b := formatString(t, richSource, config.Default())
	if a != b {
		t.Fatalf("two renders differ")
	}
}
