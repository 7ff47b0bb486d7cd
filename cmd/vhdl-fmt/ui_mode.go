package main

import (
	"fmt"
	"os"
	"strings"

	"vhdlfmt/internal/driver"
)

// uiMode is the value of --ui.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

// uiThreshold is the batch size from which --ui auto shows the progress view.
const uiThreshold = 32

func readUIMode(value string) (uiMode, error) {
	switch m := uiMode(strings.ToLower(strings.TrimSpace(value))); m {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return m, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// useProgressUI: прогресс только для пакетной обработки с текстовым отчётом;
// в auto ещё нужен терминал и достаточно большой пакет.
func useProgressUI(ff fmtFlags, files int, tty func() bool) bool {
	if ff.mode() == driver.ModeStdout || ff.format != "text" || ff.quiet {
		return false
	}
	mode, _ := readUIMode(ff.ui)
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return files >= uiThreshold && tty()
}

func stdoutIsTerminal() bool {
	return isTerminal(os.Stdout)
}
