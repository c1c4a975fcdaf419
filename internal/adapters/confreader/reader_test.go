package confreader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zlib-accel.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFileMissing(t *testing.T) {
	r := New()
	if err := r.ParseFile(filepath.Join(t.TempDir(), "absent.conf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseFileBasic(t *testing.T) {
	path := writeFile(t, `
# shim tuning
use_iaa_compress = 1
iaa_compress_percentage = 75

log_file = /tmp/diag.log
not a pair
= orphan value
`)

	r := New()
	if err := r.ParseFile(path); err != nil {
		t.Fatal(err)
	}

	if got := r.GetValue("use_iaa_compress", 0, 1, 0); got != 1 {
		t.Errorf("use_iaa_compress = %d, want 1", got)
	}
	if got := r.GetValue("iaa_compress_percentage", 50, 100, 0); got != 75 {
		t.Errorf("iaa_compress_percentage = %d, want 75", got)
	}
	if got, ok := r.GetString("log_file"); !ok || got != "/tmp/diag.log" {
		t.Errorf("log_file = (%q, %v)", got, ok)
	}
	if _, ok := r.GetString("not a pair"); ok {
		t.Error("line without '=' should be ignored")
	}
}

func TestGetValueDefaultsAndClamps(t *testing.T) {
	path := writeFile(t, `
high = 150
low = -5
garbage = fast
`)

	r := New()
	if err := r.ParseFile(path); err != nil {
		t.Fatal(err)
	}

	if got := r.GetValue("absent", 7, 100, 0); got != 7 {
		t.Errorf("absent key = %d, want default 7", got)
	}
	if got := r.GetValue("high", 50, 100, 0); got != 100 {
		t.Errorf("150 clamped = %d, want 100", got)
	}
	if got := r.GetValue("low", 50, 100, 0); got != 0 {
		t.Errorf("-5 clamped = %d, want 0", got)
	}
	if got := r.GetValue("garbage", 50, 100, 0); got != 50 {
		t.Errorf("malformed = %d, want default 50", got)
	}
}

func TestDuplicateKeyLastWins(t *testing.T) {
	path := writeFile(t, "qat_compression_level = 3\nqat_compression_level = 5\n")

	r := New()
	if err := r.ParseFile(path); err != nil {
		t.Fatal(err)
	}
	if got := r.GetValue("qat_compression_level", 1, 9, 1); got != 5 {
		t.Errorf("duplicate key = %d, want last value 5", got)
	}
}

func TestDumpValues(t *testing.T) {
	path := writeFile(t, "b = 2\na = 1\n")

	r := New()
	if err := r.ParseFile(path); err != nil {
		t.Fatal(err)
	}

	dump := r.DumpValues()
	if dump != "b = 2\na = 1\n" {
		t.Errorf("DumpValues = %q, want file order", dump)
	}
}

func TestParseFileResetsState(t *testing.T) {
	first := writeFile(t, "only_in_first = 1\n")
	second := writeFile(t, "only_in_second = 2\n")

	r := New()
	if err := r.ParseFile(first); err != nil {
		t.Fatal(err)
	}
	if err := r.ParseFile(second); err != nil {
		t.Fatal(err)
	}

	if _, ok := r.GetString("only_in_first"); ok {
		t.Error("state from first file survived reparse")
	}
	if !strings.Contains(r.DumpValues(), "only_in_second = 2") {
		t.Error("second file not parsed")
	}
}
