// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/0xsoniclabs/wire/rlp"
	"github.com/0xsoniclabs/wire/store"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/rlp <command> <flags> <input>
// where <input> is hex data, optionally 0x-prefixed, or - for stdin.

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

var (
	maxDepthFlag = cli.IntFlag{
		Name:  "max-depth",
		Usage: "maximum accepted list nesting depth",
		Value: rlp.DefaultMaxDepth,
	}
	exactFlag = cli.BoolFlag{
		Name:  "exact",
		Usage: "reject inputs with trailing bytes after the value",
	}
	dbFlag = cli.StringFlag{
		Name:  "db",
		Usage: "directory of the item store",
		Value: "rlp-store",
	}
)

func main() {
	app := &cli.App{
		Name:      "rlp",
		Usage:     "RLP toolbox",
		Copyright: "(c) 2025 Sonic Operations Ltd",
		Commands: []*cli.Command{
			&inspectCmd,
			&hashCmd,
			&putCmd,
			&getCmd,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

var inspectCmd = cli.Command{
	Name:      "inspect",
	Usage:     "decode an encoded value and render its structure",
	ArgsUsage: "<hex>",
	Flags:     []cli.Flag{&maxDepthFlag, &exactFlag},
	Action:    inspect,
}

func inspect(ctx *cli.Context) error {
	data, err := readInput(ctx)
	if err != nil {
		return err
	}
	item, rest, err := rlp.DecodeDepthLimited(data, ctx.Int(maxDepthFlag.Name))
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		if ctx.Bool(exactFlag.Name) {
			return fmt.Errorf("%w: %d bytes after the value", rlp.ErrTrailingBytes, len(rest))
		}
		log.Warn().Int("bytes", len(rest)).Msg("input has trailing bytes after the value")
	}
	fmt.Print(format(item, ""))
	return nil
}

var hashCmd = cli.Command{
	Name:      "hash",
	Usage:     "compute the content hash of an encoded value",
	ArgsUsage: "<hex>",
	Action: func(ctx *cli.Context) error {
		data, err := readInput(ctx)
		if err != nil {
			return err
		}
		item, err := rlp.DecodeComplete(data)
		if err != nil {
			return err
		}
		fmt.Println(store.HashOf(item))
		return nil
	},
}

var putCmd = cli.Command{
	Name:      "put",
	Usage:     "add an encoded value to the item store",
	ArgsUsage: "<hex>",
	Flags:     []cli.Flag{&dbFlag},
	Action: func(ctx *cli.Context) error {
		data, err := readInput(ctx)
		if err != nil {
			return err
		}
		item, err := rlp.DecodeComplete(data)
		if err != nil {
			return err
		}
		db, err := store.OpenLevelDbStore(ctx.String(dbFlag.Name))
		if err != nil {
			return err
		}
		defer closeStore(db)
		hash, err := db.Put(item)
		if err != nil {
			return err
		}
		log.Info().Stringer("hash", hash).Msg("item stored")
		fmt.Println(hash)
		return nil
	},
}

var getCmd = cli.Command{
	Name:      "get",
	Usage:     "fetch a value from the item store and render its structure",
	ArgsUsage: "<hash>",
	Flags:     []cli.Flag{&dbFlag},
	Action: func(ctx *cli.Context) error {
		data, err := readInput(ctx)
		if err != nil {
			return err
		}
		if len(data) != store.HashSize {
			return fmt.Errorf("a content hash has %d bytes, got %d", store.HashSize, len(data))
		}
		db, err := store.OpenLevelDbStore(ctx.String(dbFlag.Name))
		if err != nil {
			return err
		}
		defer closeStore(db)
		item, err := db.Get(store.Hash(data))
		if err != nil {
			return err
		}
		fmt.Print(format(item, ""))
		return nil
	},
}

func closeStore(db store.Store) {
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close the item store")
	}
}

// readInput resolves the command's single argument into raw bytes: hex
// data with an optional 0x prefix, or - for hex data on stdin.
func readInput(ctx *cli.Context) ([]byte, error) {
	if ctx.Args().Len() != 1 {
		return nil, fmt.Errorf("expected exactly one input argument")
	}
	input := ctx.Args().Get(0)
	if input == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		input = string(raw)
	}
	input = strings.TrimPrefix(strings.TrimSpace(input), "0x")
	data, err := hex.DecodeString(input)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}

// format renders the structure of an item as an indented tree, one line
// per value, for instance
//
//	list [2 items]
//	  bytes [3] 0x636174 "cat"
//	  list [0 items]
func format(item rlp.Item, indent string) string {
	switch value := item.(type) {
	case rlp.Bytes:
		res := fmt.Sprintf("%sbytes [%d] %v", indent, len(value), value)
		if printable(value) {
			res += fmt.Sprintf(" %q", string(value))
		}
		return res + "\n"
	case rlp.List:
		res := fmt.Sprintf("%slist [%d items]\n", indent, len(value))
		for _, element := range value {
			res += format(element, indent+"  ")
		}
		return res
	default:
		return fmt.Sprintf("%sunknown item\n", indent)
	}
}

func printable(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	for _, b := range data {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}
