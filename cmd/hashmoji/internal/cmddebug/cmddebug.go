package cmddebug

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/atomicfile"
	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/hashmoji"
	"github.com/creachadair/hashmoji/service"
	"github.com/creachadair/hashmoji/symtab"
	yaml "gopkg.in/yaml.v3"
)

var Command = &command.C{
	Name:     "debug",
	Help:     "Debugging commands.",
	Unlisted: true,

	Commands: []*command.C{{
		Name: "table",
		Help: `Print the symbol table.

Each entry gives the index, the code points, and the rendered symbol.
With --out, the table is written atomically to the given file.`,
		SetFlags: command.Flags(flax.MustBind, &tableFlags),
		Run:      command.Adapt(runDebugTable),
	}, {
		Name:  "index",
		Usage: "<hex-chunk> ...",
		Help:  "Print the table index selected by each 4-byte chunk, given in hex.",
		Run:   command.Adapt(runDebugIndex),
	}},
}

// stdout receives command output.
var stdout io.Writer = os.Stdout

var tableFlags struct {
	Out  string `flag:"out,Write the table to this file instead of stdout"`
	YAML bool   `flag:"yaml,Write YAML instead of JSON"`
}

// runDebugTable implements the "debug table" subcommand.
func runDebugTable(env *command.Env) error {
	var buf bytes.Buffer
	if tableFlags.YAML {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(service.Table()); err != nil {
			return err
		}
		enc.Close()
	} else {
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(service.Table()); err != nil {
			return err
		}
	}
	if tableFlags.Out == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := atomicfile.Tx(tableFlags.Out, 0644, func(w io.Writer) error {
		_, err := w.Write(buf.Bytes())
		return err
	}); err != nil {
		return err
	}
	fmt.Fprintf(env, "Wrote %d entries to %q\n", symtab.Len, tableFlags.Out)
	return nil
}

// runDebugIndex implements the "debug index" subcommand.
func runDebugIndex(env *command.Env, chunks ...string) error {
	if len(chunks) == 0 {
		return env.Usagef("at least one chunk is required")
	}
	for _, arg := range chunks {
		chunk, err := hex.DecodeString(arg)
		if err != nil {
			return fmt.Errorf("chunk %q: %w", arg, err)
		}
		i, err := hashmoji.Index(chunk)
		if err != nil {
			return fmt.Errorf("chunk %q: %w", arg, err)
		}
		v := binary.LittleEndian.Uint32(chunk)
		fmt.Fprintf(stdout, "%s\t%d\t%.9f\t%d\t%s\t%s\n", arg, v, float64(v)/hashmoji.MaxChunk, i, symtab.Refs(i), symtab.At(i))
	}
	return nil
}
