package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-functional-utils/arr"
	"github.com/hasbyte1/go-functional-utils/collections"
	"github.com/hasbyte1/go-functional-utils/shape"
)

// Sentinel errors returned by the subcommands.
var (
	ErrMissingPath = errors.New("cli: --path is required")
	ErrBadEquals   = errors.New("cli: --equals without --path must be a JSON object")
)

type opFlags struct {
	keys    []string
	path    string
	equals  string
	reverse bool
}

type operation struct {
	name    string
	short   string
	keys    bool // accepts --keys
	reverse bool // accepts --reverse
}

var operations = []operation{
	{name: "pick", short: "Keep the entries whose key is listed or whose value matches", keys: true},
	{name: "omit", short: "Drop the entries whose key is listed or whose value matches", keys: true},
	{name: "filter", short: "Keep the values that match"},
	{name: "reject", short: "Drop the values that match"},
	{name: "find-key", short: "Print the key of the first value that matches", reverse: true},
	{name: "find", short: "Print the first value that matches"},
	{name: "find-last", short: "Print the last value that matches"},
	{name: "map-values", short: "Replace every value with the property at --path"},
	{name: "some", short: "Report whether any value matches"},
	{name: "every", short: "Report whether all values match"},
}

func operationCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(operations))
	for _, op := range operations {
		cmds = append(cmds, operationCommand(op))
	}
	return cmds
}

func operationCommand(op operation) *cobra.Command {
	var flags opFlags

	cmd := &cobra.Command{
		Use:   op.name + " [file]",
		Short: op.short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			iteratee, err := flags.iteratee()
			if err != nil {
				return err
			}
			log.Debug().Str("op", op.name).Interface("iteratee", iteratee).Strs("keys", flags.keys).Bool("reverse", flags.reverse).Msg("running operation")
			if op.keys {
				// Pick and omit read a bare list as keys, so shorthand
				// iteratees are prepared into predicates first.
				switch {
				case len(flags.keys) > 0:
					iteratee = flags.keys
				case iteratee != nil:
					iteratee = collections.Iteratee(iteratee)
				}
			}

			it, err := collections.Lookup(op.name)
			if err != nil {
				return err
			}
			if op.reverse && flags.reverse {
				opts := it.Options()
				opts.Reverse = true
				it = collections.NewIterator(opts)
			}

			return writeResult(cmd, it.Run(doc, iteratee))
		},
	}

	cmd.Flags().StringVar(&flags.path, "path", "", "property path used as the iteratee, e.g. user.name or items[0]")
	cmd.Flags().StringVar(&flags.equals, "equals", "", "JSON value the property at --path must equal, or a JSON object to match")
	if op.keys {
		cmd.Flags().StringSliceVar(&flags.keys, "keys", nil, "comma-separated keys")
	}
	if op.reverse {
		cmd.Flags().BoolVar(&flags.reverse, "reverse", false, "search from the last value")
	}
	return cmd
}

// iteratee builds the shorthand iteratee described by the flags: a
// property path, a [path, value] pair or an object to match. No flags means
// the identity.
func (f opFlags) iteratee() (any, error) {
	var want any
	if f.equals != "" {
		v, err := shape.DecodeJSON([]byte(f.equals))
		if err != nil {
			return nil, fmt.Errorf("invalid --equals: %w", err)
		}
		want = v
	}

	switch {
	case f.path != "" && f.equals != "":
		return []any{f.path, want}, nil
	case f.path != "":
		return f.path, nil
	case f.equals != "":
		rec, ok := want.(*shape.Record)
		if !ok {
			return nil, ErrBadEquals
		}
		return rec, nil
	}
	return nil, nil
}

func getCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "get [file]",
		Short: "Print the value at --path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return ErrMissingPath
			}
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			log.Debug().Str("path", path).Strs("segments", arr.ToPath(path)).Msg("reading path")
			return writeResult(cmd, arr.Get(doc, path))
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "property path, e.g. user.name or items[0]")
	return cmd
}

func opsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(collections.Names(), "\n"))
			return err
		},
	}
}

// readDocument decodes the JSON document in the named file, or stdin when
// no file is given.
func readDocument(cmd *cobra.Command, args []string) (any, error) {
	var (
		data []byte
		err  error
	)
	if len(args) > 0 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	doc, err := shape.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	log.Debug().Int("bytes", len(data)).Str("shape", shape.Classify(doc).Kind().String()).Msg("decoded input")
	return doc, nil
}

func writeResult(cmd *cobra.Command, v any) error {
	var (
		out []byte
		err error
	)
	if stateFrom(cmd.Context()).Pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
