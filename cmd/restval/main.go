// Command restval validates JSON payloads against declarative schema
// documents from the command line.
//
// Usage:
//
//	restval check -schema request.yaml -input payload.json
//
// The schema file may be JSON or YAML (chosen by extension). On a valid
// payload the command prints "ok"; otherwise it prints the error record as
// JSON and exits 1.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"

	restval "github.com/mwestly/restval"
	"github.com/mwestly/restval/runtimeinfo"
	"github.com/mwestly/restval/schemadoc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "restval CLI\n\nUsage:\n  restval check -schema schema.{json,yaml} -input payload.json")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var schemaPath, inputPath string
	fs.StringVar(&schemaPath, "schema", "", "schema document (JSON or YAML)")
	fs.StringVar(&inputPath, "input", "", "JSON payload to validate")
	_ = fs.Parse(args)
	if schemaPath == "" || inputPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	log := newLogger()

	schema, err := loadSchema(schemaPath)
	if err != nil {
		log.Error("load schema", "path", schemaPath, "err", err)
		os.Exit(2)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		log.Error("read payload", "path", inputPath, "err", err)
		os.Exit(2)
	}
	var payload any
	if err := gojson.Unmarshal(raw, &payload); err != nil {
		log.Error("decode payload", "path", inputPath, "err", err)
		os.Exit(2)
	}

	if rec := restval.Check(payload, schema); rec != nil {
		out, err := gojson.MarshalIndent(rec, "", "  ")
		if err != nil {
			log.Error("encode record", "err", err)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, string(out))
		os.Exit(1)
	}
	fmt.Println("ok")
}

func loadSchema(path string) (restval.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return schemadoc.ParseYAML(data)
	default:
		return schemadoc.ParseJSON(data)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if info, err := runtimeinfo.Load(); err == nil {
		level = info.SlogLevel()
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
