// bincursor inspects binary files with a bytebuffer.ByteBuffer
//
//	bincursor dump -o 64 -n 128 file.bin
//	bincursor read -o 4 -t uint32 -e big -c 3 file.bin
//	bincursor transform --op xor --key 5a --out out.bin file.bin
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/performancecopilot/bitcursor/bytebuffer"
	"github.com/performancecopilot/bitcursor/hexdump"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var globalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Usage:   "KEY=VALUE file with default cursor options",
		EnvVars: []string{bytebuffer.ConfEnv},
	},
	&cli.BoolFlag{
		Name:  "verbose",
		Usage: "log failed operations with a dump of the surrounding bytes",
	},
}

// open loads the file named by the first argument with the configured options
func open(c *cli.Context, extra ...bytebuffer.Option) (*bytebuffer.ByteBuffer, error) {
	if c.NArg() < 1 {
		return nil, errors.New("missing file argument")
	}

	var opts []bytebuffer.Option
	if loc := c.String("config"); loc != "" {
		var err error
		if opts, err = bytebuffer.LoadConfig(loc); err != nil {
			return nil, errors.Wrapf(err, "cannot load config %s", loc)
		}
	}

	return bytebuffer.ReadFile(c.Args().First(), append(opts, extra...)...)
}

func endianFlag(c *cli.Context) (bytebuffer.Endian, error) {
	if s := c.String("endian"); s != "" {
		return bytebuffer.ParseEndian(s)
	}
	return bytebuffer.DefaultEndian, nil
}

var dumpCommand = &cli.Command{
	Name:      "dump",
	Usage:     "print a hex dump of a file",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Usage: "first byte to dump"},
		&cli.IntFlag{Name: "length", Aliases: []string{"n"}, Usage: "bytes to dump (default 192)"},
		&cli.BoolFlag{Name: "no-unicode", Usage: "preview ASCII only"},
	},
	Action: func(c *cli.Context) error {
		b, err := open(c)
		if err != nil {
			return err
		}
		defer b.Close()

		fmt.Fprint(c.App.Writer, hexdump.Dump(b.Bytes(), hexdump.Options{
			Start:     c.Int("offset"),
			Length:    c.Int("length"),
			NoUnicode: c.Bool("no-unicode"),
		}))
		return nil
	},
}

var readCommand = &cli.Command{
	Name:      "read",
	Usage:     "read typed values from a file",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Usage: "byte offset to start at"},
		&cli.IntFlag{Name: "bit", Usage: "bit offset within the first byte"},
		&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Value: "uint8", Usage: "value type (uint8..int64, half, float, double, bits:N, sbits:N, utf-8, utf-16, pascal, wide-pascal)"},
		&cli.StringFlag{Name: "endian", Aliases: []string{"e"}, Usage: "big or little"},
		&cli.IntFlag{Name: "count", Aliases: []string{"c"}, Value: 1, Usage: "number of values to read"},
		&cli.IntFlag{Name: "length", Usage: "string length in units"},
		&cli.IntFlag{Name: "length-size", Usage: "pascal length prefix size"},
		&cli.StringFlag{Name: "encoding", Usage: "character set of byte strings"},
		&cli.BoolFlag{Name: "wide", Usage: "always print 64 bit values as wide integers"},
	},
	Action: func(c *cli.Context) error {
		b, err := open(c, bytebuffer.WithEnforceWideInt(c.Bool("wide")))
		if err != nil {
			return err
		}
		defer b.Close()

		if err := b.Goto(c.Int("offset"), c.Int("bit")); err != nil {
			return err
		}

		e, err := endianFlag(c)
		if err != nil {
			return err
		}

		sopts := bytebuffer.StringOptions{
			Length:     c.Int("length"),
			LengthSize: c.Int("length-size"),
			Encoding:   c.String("encoding"),
		}

		for i := 0; i < c.Int("count"); i++ {
			at, bit := b.Offset(), b.BitOffset()
			v, err := readValue(b, c.String("type"), e, sopts)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%08x.%d\t%v\n", at, bit, v)
		}
		return nil
	},
}

var transformCommand = &cli.Command{
	Name:      "transform",
	Usage:     "apply a bitwise operation to a byte range and save the result",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "op", Value: "xor", Usage: "and, or, xor, not, lshift, rshift or add"},
		&cli.StringFlag{Name: "key", Usage: "hex encoded key, cycled over the range"},
		&cli.IntFlag{Name: "start", Usage: "first byte of the range"},
		&cli.IntFlag{Name: "end", Value: -1, Usage: "end of the range (default end of file)"},
		&cli.StringFlag{Name: "out", Required: true, Usage: "output file"},
	},
	Action: func(c *cli.Context) error {
		b, err := open(c)
		if err != nil {
			return err
		}
		defer b.Close()

		op, err := bytebuffer.ParseBitOp(c.String("op"))
		if err != nil {
			return err
		}

		key, err := hex.DecodeString(c.String("key"))
		if err != nil {
			return errors.Wrap(bytebuffer.ErrInvalidArgument, "key is not hex")
		}

		end := c.Int("end")
		if end < 0 {
			end = b.Len()
		}

		if err := b.Transform(op, c.Int("start"), end, key, false); err != nil {
			return err
		}
		return b.WriteFile(c.String("out"))
	},
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "bincursor",
		Usage: "inspect and patch binary files",
		Flags: globalFlags,
		Before: func(c *cli.Context) error {
			bytebuffer.EnableLogging(c.Bool("verbose"))
			return nil
		},
		Commands: []*cli.Command{
			dumpCommand,
			readCommand,
			transformCommand,
		},
	}
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
