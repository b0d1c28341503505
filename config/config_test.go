package config

import "testing"

func TestParseSizeTwoOperands(t *testing.T) {
	cfg, err := Parse([]string{
		"--in", "bars.png", "--out", "bars.mp4",
		"--control", ":random:duration=2:fixsettings",
		"--seed", "1", "--size", "320", "240",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Fatalf("Width/Height = %d/%d, want 320/240", cfg.Width, cfg.Height)
	}
}

func TestParseSizeRejectsBelowMinimum(t *testing.T) {
	// spec.md §8 scenario 6: "--size 64 64" is rejected; "--size 66 66"
	// is accepted. 64 is the exact boundary that still fails.
	_, err := Parse([]string{
		"--in", ":bars", "--out", "out.mp4",
		"--control", ":random:duration=3", "--seed", "5",
		"--size", "64", "64",
	})
	if err == nil {
		t.Fatal("Parse should reject --size 64 64")
	}
	cfg, err := Parse([]string{
		"--in", ":bars", "--out", "out.mp4",
		"--control", ":random:duration=3", "--seed", "5",
		"--size", "66", "66",
	})
	if err != nil {
		t.Fatalf("Parse with --size 66 66: %v", err)
	}
	if cfg.Width != 66 || cfg.Height != 66 {
		t.Fatalf("Width/Height = %d/%d, want 66/66", cfg.Width, cfg.Height)
	}
}

func TestParseSizeTooSmallRejected(t *testing.T) {
	_, err := Parse([]string{
		"--in", ":bars", "--out", "out.mp4",
		"--control", ":random:duration=3", "--seed", "5",
		"--size", "63", "63",
	})
	if err == nil {
		t.Fatal("Parse should reject --size 63 63")
	}
}

func TestParseWithoutSizeLeavesZero(t *testing.T) {
	cfg, err := Parse([]string{
		"--in", ":bars", "--out", "out.mp4",
		"--control", ":random:duration=10", "--seed", "42",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 0 || cfg.Height != 0 {
		t.Fatalf("Width/Height = %d/%d, want 0/0 when --size omitted", cfg.Width, cfg.Height)
	}
}

func TestParseSizeMissingOperandErrors(t *testing.T) {
	_, err := Parse([]string{
		"--in", ":bars", "--out", "out.mp4",
		"--control", ":random", "--size", "320",
	})
	if err == nil {
		t.Fatal("Parse should error when --size is missing an operand")
	}
}
