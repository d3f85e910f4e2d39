package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/five82/pokedex/internal/app"
	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/viewmodel"
)

type listItemJSON struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the first page of Pokémon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, ctx, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func runList(cmd *cobra.Command, ctx *commandContext, asJSON bool) error {
	return ctx.withEnv(func(env *app.Env) error {
		list := viewmodel.NewList(env.Client, viewmodel.WithLogger(env.Logger))
		view := list.Load(cmd.Context())
		if msg, failed := view.Message(); failed {
			return errors.New(msg)
		}
		items, _ := view.Value()

		if asJSON {
			out := make([]listItemJSON, 0, len(items))
			for _, item := range items {
				out = append(out, listItemJSON{Name: item.Name, ID: item.ID})
			}
			return writeJSON(cmd, out)
		}

		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No Pokémon found.")
			return nil
		}
		rows := make([][]string, 0, len(items))
		for i, item := range items {
			rows = append(rows, []string{strconv.Itoa(i + 1), catalog.DisplayName(item.Name), item.ID})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"#", "Name", "ID"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft}))
		return nil
	})
}
