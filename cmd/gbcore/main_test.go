package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeROM(t *testing.T, program ...uint8) string {
	t.Helper()
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], []byte{0x00, 0xC3, 0x50, 0x01})
	copy(rom[0x134:], "CLI TEST")
	copy(rom[0x150:], program)
	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	rom[0x14D] = sum

	path := filepath.Join(t.TempDir(), "test.gb")
	if err := os.WriteFile(path, rom, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestInfo(t *testing.T) {
	rom := writeROM(t)
	out, _, err := execute(t, "info", "--rom", rom)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Title:    CLI TEST", "Type:     ROM ONLY", "valid: true", "xxHash:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRun_Serial(t *testing.T) {
	rom := writeROM(t,
		0x3E, 'O', 0xE0, 0x01, 0x3E, 0x81, 0xE0, 0x02,
		0x3E, 'K', 0xE0, 0x01, 0x3E, 0x81, 0xE0, 0x02,
		0x76,
	)
	profile := filepath.Join(t.TempDir(), "profile.png")

	out, logs, err := execute(t, "run", "--rom", rom, "--serial", "--profile", profile)
	if err != nil {
		t.Fatal(err)
	}
	if out != "OK" {
		t.Errorf("expected serial output %q, got %q", "OK", out)
	}
	if !strings.Contains(logs, "executed 11 steps") {
		t.Errorf("expected step summary in logs, got:\n%s", logs)
	}
	if _, err := os.Stat(profile); err != nil {
		t.Errorf("expected profile to be written: %v", err)
	}
}

func TestRun_UndefinedOpcode(t *testing.T) {
	rom := writeROM(t, 0xDD)
	_, logs, err := execute(t, "run", "--rom", rom)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(logs, "undefined opcode DD at 0150") {
		t.Errorf("expected undefined opcode to be logged, got:\n%s", logs)
	}
}

func TestRun_MissingROM(t *testing.T) {
	if _, _, err := execute(t, "run"); err == nil {
		t.Errorf("expected an error when --rom is missing")
	}
}
