package bytebuffer

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ConfEnv is the environment variable holding the path of the default
// configuration file
const ConfEnv = "BITCURSOR_CONF"

// pat stores a valid key-value pattern line
var pat = regexp.MustCompile(`^([A-Z0-9_]+)=(.*)$`)

// ConfigPath returns the configuration file named by ConfEnv, if any
func ConfigPath() (string, bool) {
	loc, ok := os.LookupEnv(ConfEnv)
	return loc, ok && loc != ""
}

func parseBool(key, val string) (bool, error) {
	v, err := strconv.ParseBool(val)
	if err != nil {
		return false, errors.Wrapf(ErrInvalidArgument, "%s: %q is not a boolean", key, val)
	}
	return v, nil
}

func parseInt(key, val string) (int, error) {
	v, err := strconv.Atoi(val)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgument, "%s: %q is not an integer", key, val)
	}
	return v, nil
}

// ParseConfig reads KEY=VALUE lines and turns the recognized keys into
// options, lines that don't match are ignored
//
// Recognized keys are ENDIANNESS, STRICT, EXTEND_BUFFER_SIZE,
// ENFORCE_WIDE_INT, BYTE_OFFSET and BIT_OFFSET.
func ParseConfig(r io.Reader) ([]Option, error) {
	var (
		opts            []Option
		byteOff, bitOff int
		offsetSet       bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		matches := pat.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if matches == nil {
			continue
		}

		key, val := matches[1], strings.TrimSpace(matches[2])
		switch key {
		case "ENDIANNESS":
			e, err := ParseEndian(val)
			if err != nil {
				return nil, errors.Wrap(err, key)
			}
			opts = append(opts, WithEndian(e))
		case "STRICT":
			v, err := parseBool(key, val)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithStrict(v))
		case "ENFORCE_WIDE_INT":
			v, err := parseBool(key, val)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithEnforceWideInt(v))
		case "EXTEND_BUFFER_SIZE":
			v, err := parseInt(key, val)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithExtendBufferSize(v))
		case "BYTE_OFFSET":
			v, err := parseInt(key, val)
			if err != nil {
				return nil, err
			}
			byteOff, offsetSet = v, true
		case "BIT_OFFSET":
			v, err := parseInt(key, val)
			if err != nil {
				return nil, err
			}
			bitOff, offsetSet = v, true
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if offsetSet {
		opts = append(opts, WithOffset(byteOff, bitOff))
	}

	return opts, nil
}

// LoadConfig reads options from the file at loc
func LoadConfig(loc string) ([]Option, error) {
	f, err := os.Open(loc)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseConfig(f)
}
