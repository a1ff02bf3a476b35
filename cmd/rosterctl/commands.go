package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campusware/roster/internal/app/models"
)

var (
	addSetFlags  []string
	editSetFlags []string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List every record with its display position",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		seq, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}

		count := 0
		for pos, row := range seq {
			printRecord(cmd, pos, row, svc.Schema())
			count++
		}
		if count == 0 {
			cmd.Println("No data available.")
		}
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add --set field=value ...",
	Short: "Add a record; the identifier is assigned automatically",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		fields, err := parseSetFlags(addSetFlags)
		if err != nil {
			return err
		}

		row, err := svc.Add(cmd.Context(), fields)
		if err != nil {
			return err
		}

		cmd.Printf("Added record with id %s\n", row[models.FieldID])
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Find records whose name contains the query (case-insensitive)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		matches, err := svc.Search(cmd.Context(), query)
		if err != nil {
			return err
		}

		if len(matches) == 0 {
			cmd.Printf("No match found for %q.\n", query)
			return nil
		}
		for _, m := range matches {
			printRecord(cmd, m.Position, m.Record, svc.Schema())
		}
		return nil
	},
}

var sortCmd = &cobra.Command{
	Use:   "sort <field>",
	Short: "Sort the collection by a field and persist the new order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		if err := svc.Sort(cmd.Context(), args[0]); err != nil {
			return err
		}
		cmd.Printf("Sorted by %s.\n", args[0])
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <position> --set field=value ...",
	Short: "Edit the record at a display position; empty values keep the stored value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		position, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("position must be a number: %q", args[0])
		}

		updates, err := parseSetFlags(editSetFlags)
		if err != nil {
			return err
		}

		row, err := svc.Edit(cmd.Context(), position, updates)
		if err != nil {
			return err
		}

		printRecord(cmd, position, row, svc.Schema())
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <position>",
	Short: "Delete the record at a display position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		position, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("position must be a number: %q", args[0])
		}

		if err := svc.Delete(cmd.Context(), position); err != nil {
			return err
		}
		cmd.Printf("Deleted record at position %d.\n", position)
		return nil
	},
}

var compactCmd = &cobra.Command{
	Use:   "compact",
	Short: "Rewrite the collection file unchanged",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		if err := svc.Compact(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("Collection compacted.")
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <output.xlsx>",
	Short: "Export the collection to a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		f, err := svc.Export(cmd.Context())
		if err != nil {
			return err
		}
		defer f.Close()

		if err := f.SaveAs(args[0]); err != nil {
			return err
		}
		cmd.Printf("Exported to %s.\n", args[0])
		return nil
	},
}

func init() {
	addCmd.Flags().StringArrayVar(&addSetFlags, "set", nil, "Field value as field=value (repeatable)")
	editCmd.Flags().StringArrayVar(&editSetFlags, "set", nil, "Field value as field=value (repeatable)")
}

// parseSetFlags turns repeated field=value flags into a field map.
func parseSetFlags(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set value %q, want field=value", pair)
		}
		fields[key] = value
	}
	return fields, nil
}

// printRecord writes one record in the position-then-fields layout.
func printRecord(cmd *cobra.Command, position int, row models.Row, schema models.Schema) {
	cmd.Printf("RRN: %d\n", position)
	for _, field := range schema.Fields {
		cmd.Printf("%s: %s\n", capitalize(field), row[field])
	}
	cmd.Println(strings.Repeat("-", 40))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
