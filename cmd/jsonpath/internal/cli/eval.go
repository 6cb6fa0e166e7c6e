package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cortronic/jsonpath"
	"github.com/cortronic/jsonpath/jsonvalue"
)

// DocReader reads the JSON document a query is evaluated against, as
// raw bytes so jsonvalue.Decode can preserve field order.
type DocReader interface {
	ReadDoc(path string) ([]byte, error)
}

// NewEvalCmd creates the eval subcommand: jsonpath eval <query> [file].
// With no file argument the document is read from stdin.
func NewEvalCmd() *cobra.Command {
	return newEvalCmd(fileDocReader{}, os.Stdin)
}

func newEvalCmd(reader DocReader, stdin io.Reader) *cobra.Command {
	var first bool
	cmd := &cobra.Command{
		Use:          "eval <query> [file]",
		Short:        "Evaluate a JSONPath query against a JSON document",
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]

			var data []byte
			var err error
			if len(args) == 2 {
				data, err = reader.ReadDoc(args[1])
			} else {
				data, err = io.ReadAll(stdin)
			}
			if err != nil {
				return fmt.Errorf("reading document: %w", err)
			}

			path, err := jsonpath.Compile(query)
			if err != nil {
				return fmt.Errorf("compiling query: %w", err)
			}

			doc, err := jsonvalue.Decode(data)
			if err != nil {
				return fmt.Errorf("parsing document: %w", err)
			}

			if first {
				v, ok := jsonpath.MatchFirst(path, doc)
				if !ok {
					return fmt.Errorf("no match")
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(jsonvalue.Raw(v))
			}

			results := jsonpath.Match(path, doc)
			raw := make([]interface{}, len(results))
			for i, v := range results {
				raw[i] = jsonvalue.Raw(v)
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(raw)
		},
	}
	cmd.Flags().BoolVar(&first, "first", false, "print only the first match")
	return cmd
}

type fileDocReader struct{}

func (fileDocReader) ReadDoc(path string) ([]byte, error) {
	return os.ReadFile(path)
}
