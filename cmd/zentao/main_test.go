package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/zentao/cmd/zentao/commands"
)

func TestPrinterCommandsLogging(t *testing.T) {
	tests := map[string]struct {
		cmd    string
		debug  bool
		expLog bool
	}{
		"Printer commands should not log by default.": {
			cmd:    "tasks",
			expLog: false,
		},
		"Printer commands should log with debug.": {
			cmd:    "bug",
			debug:  true,
			expLog: true,
		},
		"Finish should log warnings by default.": {
			cmd:    "finish",
			expLog: true,
		},
		"Relogin should log warnings by default.": {
			cmd:    "relogin",
			expLog: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var stderr bytes.Buffer
			root := commands.RootCommand{
				Stderr:  &stderr,
				Debug:   test.debug,
				NoColor: true,
				NoLog:   silentLogs(test.cmd, test.debug),
			}

			newLogger(root).Warningf("image placeholder used")

			if test.expLog {
				assert.Contains(t, stderr.String(), "image placeholder used")
			} else {
				assert.Empty(t, stderr.String())
			}
		})
	}
}
