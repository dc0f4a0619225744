package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/deicod/scaffolder/internal/entity"
	"github.com/deicod/scaffolder/internal/generator"
)

var inspectEntity = generator.Inspect

func newInspectCmd(root *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "inspect <Entity>",
		Short: "Print the derived generation context for an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, root)
			if err != nil {
				return err
			}
			ctx, err := inspectEntity(p.env, args[0])
			if err != nil {
				return entityError(p, args[0], err)
			}
			out, err := encodeContext(ctx, format)
			if err != nil {
				return wrapError(fmt.Sprintf("inspect: %v", err), err, "Use --format yaml or --format json.", 2)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "yaml", "Output format (yaml or json)")
	return cmd
}

func encodeContext(ctx *entity.Context, format string) ([]byte, error) {
	raw, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return append(raw, '\n'), nil
	case "yaml", "yml":
		// Decoding JSON into a node keeps the struct's field order.
		var doc yaml.Node
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		blockStyle(&doc)
		return yaml.Marshal(&doc)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		blockStyle(child)
	}
}
