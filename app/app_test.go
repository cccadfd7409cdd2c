package app

import (
	"bytes"
	"io/ioutil"
	"os"
	"strings"
	"testing"
)

func TestMainHelp(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"horizon-datamodel", "help"}

	var (
		output    bytes.Buffer
		errOutput bytes.Buffer
	)
	err := Run(strings.NewReader(""), &output, &errOutput)

	if err != nil {
		t.Error(err)
	}
	if have, want := output.String(), "Available Commands"; !strings.Contains(have, want) {
		t.Errorf("expected output %s not found in output: %s", want, have)
	}
	for _, cmd := range []string{"validate", "template", "describe", "config", "version"} {
		if have := output.String(); !strings.Contains(have, cmd) {
			t.Errorf("command %s not found in output: %s", cmd, have)
		}
	}
	if errOutput.String() != "" {
		t.Errorf("error output is not empty")
	}
}

func TestMainUnknownCommand(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"horizon-datamodel", "unknown"}

	err := Run(strings.NewReader(""), ioutil.Discard, ioutil.Discard)

	if err == nil {
		t.Error("error expected")
	}
}

func TestMainVersion(t *testing.T) {
	var output bytes.Buffer
	cmd := RootCommand(strings.NewReader(""), &output, ioutil.Discard)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if have, want := output.String(), "horizon-datamodel/dev\n"; have != want {
		t.Errorf("unexpected version output; want %q, have %q", want, have)
	}
}
