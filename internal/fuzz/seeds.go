package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"vhdlfmt/internal/driver"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

var builtinSeeds = []string{
	"",
	"entity e is end;",
	"library ieee;\nuse ieee.std_logic_1164.all;\n\nentity counter is\n  generic (WIDTH : positive := 8);\n  port (clk : in std_logic; q : out std_logic_vector(WIDTH - 1 downto 0));\nend entity counter;\n",
	"architecture rtl of counter is\n  signal cnt : unsigned(7 downto 0) := (others => '0'); -- counter\nbegin\n  process (clk) is\n  begin\n    if rising_edge(clk) then\n      cnt <= cnt + 1;\n    end if;\n  end process;\n  q <= std_logic_vector(cnt);\nend architecture rtl;\n",
	"package p is\n  constant C : integer := 16#FF#;\n  type state_t is (idle, run, done);\n  function f(a : integer) return integer;\nend package p;\n",
	"package body p is\n  function f(a : integer) return integer is\n  begin\n    return a * 2;\n  end function f;\nend package body p;\n",
	"architecture a of e is\nbegin\n  u0 : entity work.sub port map (a => b, c => open);\n  g : for i in 0 to 3 generate\n    x(i) <= y(i) and z;\n  end generate g;\n  with sel select o <= a when \"00\", b when others;\nend;\n",
	"entity e is port (a : in bit", // обрыв посреди порта
	"architecture a of e is begin process begin wait; end process; end;",
	"/* block */ entity \\ext id\\ is end;",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.vhd / *.vhdl файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || !driver.IsSourceFile(path) {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
