// zlib-accel-inspect describes a compressed buffer the way the shim's
// trace diagnostics would: wrapper format, first deflate block sub-header,
// and whether the payload actually inflates. It optionally loads a shim
// config file first and echoes the resolved values.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/iamNilotpal/zlib-accel/internal/adapters/confreader"
	"github.com/iamNilotpal/zlib-accel/internal/core/domain"
	"github.com/iamNilotpal/zlib-accel/internal/core/domain/config"
	"github.com/iamNilotpal/zlib-accel/internal/core/services/diagnostics"
	"github.com/iamNilotpal/zlib-accel/internal/core/services/loader"
	"github.com/iamNilotpal/zlib-accel/internal/serialize"
	"github.com/iamNilotpal/zlib-accel/pkg/logger"
)

type report struct {
	File          string `json:"file"`
	Format        string `json:"format"`
	WindowBits    int    `json:"window_bits"`
	HeaderLength  uint32 `json:"header_length"`
	BFinal        uint32 `json:"bfinal"`
	BType         uint32 `json:"btype"`
	PayloadBytes  int    `json:"payload_bytes"`
	InflatedBytes int64  `json:"inflated_bytes"`
	InflateError  string `json:"inflate_error,omitempty"`
}

func main() {
	var (
		configPath = flag.String("config", "", "shim config file to load before inspecting")
		windowBits = flag.Int("window-bits", 15, "zlib-family windowBits describing the buffer's wrapper")
		asJSON     = flag.Bool("json", false, "emit the report as JSON on stdout")
	)
	flag.Parse()

	log := logger.New("zlib-accel-inspect")
	defer log.Sync()

	if flag.NArg() != 1 {
		log.Error("usage: zlib-accel-inspect [flags] <compressed-file>")
		os.Exit(2)
	}
	file := flag.Arg(0)

	table := config.NewTable()
	if *configPath != "" {
		dump, err := loader.New(table, confreader.New()).Load(*configPath)
		if err != nil {
			log.Infow("config load refused, keeping defaults", "path", *configPath, "error", err)
		} else {
			log.Infow("config loaded", "path", *configPath, "resolved", dump)
		}
	}

	data, err := os.ReadFile(file)
	if err != nil {
		log.Errorw("read input", "file", file, "error", err)
		os.Exit(1)
	}

	format, ok := domain.FormatFromWindowBits(*windowBits)
	if !ok {
		log.Errorw("invalid window bits", "window_bits", *windowBits)
		os.Exit(2)
	}

	sink := diagnostics.NewSink()
	defer sink.Close()
	if path := table.LogFile(); path != "" {
		if err := sink.Open(path); err != nil {
			log.Infow("log file not writable, using console", "path", path, "error", err)
		}
	}
	diag := diagnostics.New(table, sink, diagnostics.Options{Debug: true, Stats: true})

	rep := report{
		File:         file,
		Format:       format.String(),
		WindowBits:   *windowBits,
		HeaderLength: domain.HeaderLength(format),
		PayloadBytes: len(data),
	}
	if uint32(len(data)) >= rep.HeaderLength+1 {
		rep.BFinal, rep.BType = domain.DecodeBlockHeader(data[rep.HeaderLength])
	}

	diag.LogDeflateBlockHeader(diagnostics.LogInfo, data, *windowBits, "file=", file)

	rep.InflatedBytes, err = inflate(format, data)
	if err != nil {
		rep.InflateError = err.Error()
		diag.Log(diagnostics.LogError, "inflate failed: ", err)
	}
	diag.LogStats(
		"file=", file,
		", payload_bytes=", rep.PayloadBytes,
		", inflated_bytes=", rep.InflatedBytes,
	)

	if *asJSON {
		out, err := serialize.MarshalIndentJSON(rep)
		if err != nil {
			log.Errorw("encode report", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	log.Infow("inspected",
		"file", rep.File,
		"format", rep.Format,
		"header_length", rep.HeaderLength,
		"bfinal", rep.BFinal,
		"btype", rep.BType,
		"payload_bytes", rep.PayloadBytes,
		"inflated_bytes", rep.InflatedBytes,
	)
}

// inflate decompresses the buffer with the software backend matching its
// wrapper and reports the output size.
func inflate(format domain.Format, data []byte) (int64, error) {
	var (
		r   io.ReadCloser
		err error
	)
	switch format {
	case domain.FormatZlib:
		r, err = zlib.NewReader(bytes.NewReader(data))
	case domain.FormatGzip:
		r, err = gzip.NewReader(bytes.NewReader(data))
	default:
		r = flate.NewReader(bytes.NewReader(data))
	}
	if err != nil {
		return 0, err
	}
	defer r.Close()

	return io.Copy(io.Discard, r)
}
