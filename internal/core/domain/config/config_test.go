package config

import (
	"sync"
	"testing"
)

func TestTableDefaults(t *testing.T) {
	table := NewTable()
	for o := Option(0); o < OptionMax; o++ {
		if got, want := table.Get(o), BoundFor(o).Default; got != want {
			t.Errorf("%s: default = %d, want %d", o.Name(), got, want)
		}
	}
}

func TestOptionNamesCompleteAndDistinct(t *testing.T) {
	seen := make(map[string]Option, OptionMax)
	for o := Option(0); o < OptionMax; o++ {
		name := o.Name()
		if name == "" {
			t.Fatalf("option %d has no config key", o)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("options %d and %d share key %q", prev, o, name)
		}
		seen[name] = o
	}
}

func TestBoundsWellFormed(t *testing.T) {
	for o := Option(0); o < OptionMax; o++ {
		b := BoundFor(o)
		if b.Min > b.Max {
			t.Errorf("%s: min %d > max %d", o.Name(), b.Min, b.Max)
		}
		if b.Default < b.Min || b.Default > b.Max {
			t.Errorf("%s: default %d outside [%d,%d]", o.Name(), b.Default, b.Min, b.Max)
		}
	}
}

func TestSetStoresVerbatim(t *testing.T) {
	table := NewTable()

	// Direct sets bypass bounds checking so tests and tools can probe edge
	// values; only the loader clamps.
	table.Set(IAACompressPercentage, 150)
	if got := table.Get(IAACompressPercentage); got != 150 {
		t.Fatalf("Get = %d, want verbatim 150", got)
	}
}

func TestOutOfRangeOption(t *testing.T) {
	table := NewTable()
	table.Set(OptionMax+1, 9) // must not panic
	if got := table.Get(OptionMax + 1); got != 0 {
		t.Fatalf("out-of-range Get = %d, want 0", got)
	}
	if BoundFor(OptionMax) != (Bound{}) {
		t.Fatalf("BoundFor(OptionMax) should be a zero triple")
	}
	if (OptionMax + 1).Name() != "" {
		t.Fatalf("out-of-range option should have no name")
	}
}

func TestLogFile(t *testing.T) {
	table := NewTable()
	if got := table.LogFile(); got != "" {
		t.Fatalf("initial LogFile = %q, want empty", got)
	}
	table.SetLogFile("/var/log/zlib-accel.log")
	if got := table.LogFile(); got != "/var/log/zlib-accel.log" {
		t.Fatalf("LogFile = %q", got)
	}
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	table := NewTable()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(v uint32) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				table.Set(IAACompressPercentage, v)
			}
		}(uint32(i * 10))
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if v := table.Get(IAACompressPercentage); v%10 != 0 && v != BoundFor(IAACompressPercentage).Default {
					t.Errorf("torn read: %d", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}
