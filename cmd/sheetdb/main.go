// Package main provides the CLI entry point for sheetdb.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	_ "github.com/finvault/sheetdb/internal/catalog" // register sheet definitions
	"github.com/finvault/sheetdb/internal/config"
	"github.com/finvault/sheetdb/internal/logging"
	"github.com/finvault/sheetdb/internal/sheets"
	"github.com/finvault/sheetdb/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	asJSON   bool
	withLock bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetdb",
		Short: "CRUD over spreadsheet-backed entity sheets",
		Long: `sheetdb treats a header-described spreadsheet tab as a tabular store
and exposes create, read, update and delete over its registered sheets.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().BoolVar(&withLock, "lock", false, "Serialize this process's mutations per sheet")

	sheetsCmd := &cobra.Command{
		Use:   "sheets",
		Short: "List registered sheets",
		Args:  cobra.NoArgs,
		RunE:  runSheets,
	}

	listCmd := &cobra.Command{
		Use:   "list <sheet>",
		Short: "Read all rows of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}
	listCmd.Flags().BoolVar(&asJSON, "json", false, "Output rows as JSON")

	addCmd := &cobra.Command{
		Use:   "add <sheet> [field=value ...]",
		Short: "Append a row; the identifier is generated, never taken from input",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAdd,
	}

	updateCmd := &cobra.Command{
		Use:   "update <sheet> <id> [field=value ...]",
		Short: "Overwrite the row with the given id",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runUpdate,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <sheet> <id>",
		Short: "Remove the row with the given id",
		Args:  cobra.ExactArgs(2),
		RunE:  runDelete,
	}

	rootCmd.AddCommand(sheetsCmd, listCmd, addCmd, updateCmd, deleteCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the environment and configuration and wires logging.
// The remote client is built per command, only where one is needed.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	return nil
}

// bind resolves a sheet key to its registered operations, attached to a
// live gateway.
func bind(ctx context.Context, key string) (store.Operations, error) {
	def, ok := store.Get(key)
	if !ok {
		keys := make([]string, 0)
		for _, d := range store.All() {
			keys = append(keys, d.Info.Key)
		}
		return store.Operations{}, fmt.Errorf("unknown sheet %q (have %s)", key, strings.Join(keys, ", "))
	}

	client, err := sheets.NewClient(ctx, cfg.Sheets)
	if err != nil {
		return store.Operations{}, err
	}

	var opts []store.Option
	if withLock {
		opts = append(opts, store.WithSheetLocking())
	}
	return def.Bind(client, opts...), nil
}

// opContext returns the context every command runs under, bounded by
// the configured request timeout.
func opContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), cfg.Sheets.RequestTimeout)
}

func runSheets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tSHEET\tCOLUMNS")
	for _, def := range store.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", def.Info.Key, def.Info.Sheet, strings.Join(def.Info.Columns, ", "))
	}
	return w.Flush()
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, cancel := opContext(cmd)
	defer cancel()

	ops, err := bind(ctx, args[0])
	if err != nil {
		return err
	}

	rows, err := ops.GetAll(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	def, _ := store.Get(args[0])
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(def.Info.Columns, "\t")))
	for _, row := range rows {
		cells := make([]string, len(def.Info.Columns))
		for i, col := range def.Info.Columns {
			cells[i] = row[col]
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}

func runAdd(cmd *cobra.Command, args []string) error {
	fields, err := parseFields(args[1:])
	if err != nil {
		return err
	}

	ctx, cancel := opContext(cmd)
	defer cancel()

	ops, err := bind(ctx, args[0])
	if err != nil {
		return err
	}

	id, err := ops.Add(ctx, fields)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	fields, err := parseFields(args[2:])
	if err != nil {
		return err
	}

	ctx, cancel := opContext(cmd)
	defer cancel()

	ops, err := bind(ctx, args[0])
	if err != nil {
		return err
	}

	found, err := ops.Update(ctx, args[1], fields)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no row with id %s", args[1])
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx, cancel := opContext(cmd)
	defer cancel()

	ops, err := bind(ctx, args[0])
	if err != nil {
		return err
	}

	found, err := ops.Delete(ctx, args[1])
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no row with id %s", args[1])
	}
	return nil
}

// parseFields converts field=value arguments into a field map.
func parseFields(args []string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected field=value, got %q", arg)
		}
		fields[name] = value
	}
	return fields, nil
}
