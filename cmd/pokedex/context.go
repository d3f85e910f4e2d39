package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/five82/pokedex/internal/app"
	"github.com/five82/pokedex/internal/pokeapi"
)

type commandContext struct {
	configFlag *string
	prefsFlag  *string

	// client replaces the configured API client when set.
	client pokeapi.Fetcher
	// terminal reports whether w is an interactive terminal.
	terminal func(w io.Writer) bool
}

func newCommandContext(configFlag, prefsFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		prefsFlag:  prefsFlag,
		terminal:   isTerminal,
	}
}

func (c *commandContext) options() app.Options {
	opts := app.Options{Client: c.client}
	if c.configFlag != nil {
		opts.ConfigPath = strings.TrimSpace(*c.configFlag)
	}
	if c.prefsFlag != nil {
		opts.PrefsPath = strings.TrimSpace(*c.prefsFlag)
	}
	return opts
}

// withEnv runs fn with a freshly set up environment and closes it afterwards.
func (c *commandContext) withEnv(fn func(env *app.Env) error) error {
	env, err := app.Setup(c.options())
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(env)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
