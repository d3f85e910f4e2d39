package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/pokedex/internal/app"
	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/viewmodel"
)

type pokemonJSON struct {
	Name     string `json:"name"`
	Height   string `json:"height"`
	ImageURL string `json:"image_url,omitempty"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print one Pokémon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(strings.TrimSpace(args[0]))
			if name == "" {
				return errors.New("name is required")
			}
			return ctx.withEnv(func(env *app.Env) error {
				detail := viewmodel.NewDetail(name, env.Client, viewmodel.WithLogger(env.Logger))
				view := detail.Load(cmd.Context())
				if msg, failed := view.Message(); failed {
					return errors.New(msg)
				}
				pokemon, _ := view.Value()

				if asJSON {
					return writeJSON(cmd, pokemonJSON{
						Name:     pokemon.Name,
						Height:   pokemon.Height,
						ImageURL: pokemon.ImageURLString(),
					})
				}

				image := pokemon.ImageURLString()
				if image == "" {
					image = "No image available"
				}
				rows := [][]string{
					{"Name", catalog.DisplayName(pokemon.Name)},
					{"Height", pokemon.Height},
					{"Image", image},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
