// Copyright (c) 2025, The Garble Authors.

// Command rc5 runs single-block RC5 operations from the command line.
//
// It encrypts or decrypts exactly one block given in hex. There is no mode
// of operation and no padding; longer inputs are rejected.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/AeonDave/rc5"
	"github.com/AeonDave/rc5/internal/consts"
)

var flagSet = flag.NewFlagSet("rc5", flag.ContinueOnError)

var (
	flagParams = rc5.Default.String()
	flagKey    string
	flagDebug  bool
)

func init() {
	flagSet.Usage = usage
	flagSet.StringVar(&flagParams, "params", flagParams, "RC5 variant as RC5-w/r/b; b must match the key length")
	flagSet.StringVar(&flagKey, "key", "", "Secret key in hex")
	flagSet.BoolVar(&flagDebug, "debug", false, "Print the expanded key table and other diagnostics to stderr")
}

func usage() {
	fmt.Fprint(os.Stderr, `
Rc5 runs one RC5 block operation.

	rc5 [rc5 flags] command [arguments]

The commands are:

	encrypt <hex>  encrypt one block
	decrypt <hex>  decrypt one block
	schedule       print the expanded key table, one word per line
	magic          print the P and Q constants for the word size
	help           print this help text

The rc5 flags are:

`[1:])
	flagSet.PrintDefaults()
}

// errJustExit makes main1 exit with the given code without printing anything.
type errJustExit int

func (e errJustExit) Error() string { return fmt.Sprintf("exit: %d", e) }

func main() { os.Exit(main1()) }

func main1() int {
	log.SetPrefix("rc5: ")
	log.SetFlags(0)

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	args := flagSet.Args()
	if len(args) < 1 {
		usage()
		return 2
	}
	if err := mainErr(os.Stdout, args); err != nil {
		var exit errJustExit
		if errors.As(err, &exit) {
			return int(exit)
		}
		// Library errors already carry the prefix that log adds.
		log.Println(strings.TrimPrefix(err.Error(), "rc5: "))
		return 1
	}
	return 0
}

func mainErr(w io.Writer, args []string) error {
	command, args := args[0], args[1:]
	switch command {
	case "help":
		usage()
		return nil
	case "magic":
		if len(args) != 0 {
			return usageErr("magic takes no arguments")
		}
		params, err := rc5.ParseParams(flagParams)
		if err != nil {
			return err
		}
		p, q := consts.Magic(params.WordBits)
		fmt.Fprintf(w, "P%d %s\n", params.WordBits, wordHex(p))
		fmt.Fprintf(w, "Q%d %s\n", params.WordBits, wordHex(q))
		return nil
	case "schedule":
		if len(args) != 0 {
			return usageErr("schedule takes no arguments")
		}
		c, err := newCipher()
		if err != nil {
			return err
		}
		for i, s := range c.Subkeys() {
			fmt.Fprintf(w, "S[%d] %s\n", i, wordHex(s))
		}
		return nil
	case "encrypt", "decrypt":
		if len(args) != 1 {
			return usageErr(command + " takes exactly one hex block")
		}
		block, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("invalid block: %w", err)
		}
		c, err := newCipher()
		if err != nil {
			return err
		}
		var out []byte
		if command == "encrypt" {
			out, err = c.EncryptBlock(block)
		} else {
			out, err = c.DecryptBlock(block)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w, hex.EncodeToString(out))
		return nil
	default:
		return usageErr(fmt.Sprintf("unknown command: %q", command))
	}
}

func usageErr(msg string) error {
	fmt.Fprintf(os.Stderr, "rc5: %s\n\nRun 'rc5 help' for usage.\n", msg)
	return errJustExit(2)
}

// newCipher builds the cipher described by -params and -key.
func newCipher() (*rc5.Cipher, error) {
	params, err := rc5.ParseParams(flagParams)
	if err != nil {
		return nil, err
	}
	key, err := hex.DecodeString(strings.TrimSpace(flagKey))
	if err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}
	if len(key) != params.KeyLen {
		return nil, fmt.Errorf("key is %d bytes but %s wants %d: %w", len(key), params, params.KeyLen, rc5.KeySizeError(len(key)))
	}
	c, err := rc5.New(key, params)
	if err != nil {
		return nil, err
	}
	if flagDebug {
		log.Printf("%s: block size %d, %d subkeys, key packed into %d words",
			params, params.BlockSize(), params.TableLen(), params.KeyWords())
		for i, s := range c.Subkeys() {
			log.Printf("S[%d] = %s", i, wordHex(s))
		}
	}
	return c, nil
}

// wordHex formats a little-endian word as a conventional big-endian hex number.
func wordHex(le []byte) string {
	be := make([]byte, len(le))
	for i, b := range le {
		be[len(le)-1-i] = b
	}
	return hex.EncodeToString(be)
}
