package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/warpcomdev/urlparams/internal/config"
	"github.com/warpcomdev/urlparams/internal/template"
)

func main() {

	dirname, err := os.UserConfigDir()
	if err != nil {
		log.Print("Failed to locate user config dir, defaulting to /tmp")
		dirname = "/tmp"
	}
	defaultStore := path.Join(dirname, "urlparams.json")
	currentStore := &config.Store{}

	app := &cli.App{

		Name:        "urlparams",
		Usage:       "encode data files as URL query strings",
		Description: "Evaluate JSON, jsonnet, starlark or cue data files and serialize them into flat URL query strings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to the context configuration file",
				Value:       defaultStore,
				DefaultText: "${XDG_CONFIG_DIR}/urlparams.json",
				EnvVars:     []string{"URLPARAMS_CONFIG"},
			},
		},
		Before: func(c *cli.Context) error {
			currentStore.Path = c.String("config")
			return nil
		},
		EnableBashCompletion: true,

		Commands: []*cli.Command{

			{
				Name:    "encode",
				Aliases: []string{"enc"},
				Usage:   "Encode data file(s) into URL query strings",
				Action: func(c *cli.Context) error {
					if c.NArg() <= 0 {
						return errors.New("please provide the path to at least one data file")
					}
					return encode(c, currentStore, c.String(templateFlag.Name), c.Args().Slice())
				},
				Flags: []cli.Flag{
					outputFlag,
					libFlag,
					paramFlag,
					templateFlag,
					baseURLFlag,
					selectedContextFlag,
				},
			},

			{
				Name:  "template",
				Usage: "Encode data file(s) and render them through a template",
				UsageText: func() string {
					msg := append([]string{}, "provide the name of the template, or the path to a template file, and the data file(s):\n")
					if builtins, err := template.Builtins(); err == nil {
						// Sort the builtins by name, files first
						less := func(i, j int) bool {
							iFile := strings.HasSuffix(builtins[i], ".tmpl")
							jFile := strings.HasSuffix(builtins[j], ".tmpl")
							if iFile && !jFile {
								return true
							}
							if jFile && !iFile {
								return false
							}
							return strings.Compare(builtins[i], builtins[j]) < 0
						}
						sort.Slice(builtins, less)
						for _, builtin := range builtins {
							msg = append(msg, fmt.Sprintf("- %s", builtin))
						}
					}
					return strings.Join(msg, "\n")
				}(),
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 {
						return errors.New("please provide a template and at least one data file")
					}
					args := c.Args().Slice()
					return encode(c, currentStore, args[0], args[1:])
				},
				Flags: []cli.Flag{
					outputFlag,
					libFlag,
					paramFlag,
					baseURLFlag,
					selectedContextFlag,
				},
				BashComplete: func(c *cli.Context) {
					if c.NArg() <= 0 {
						builtins, err := template.Builtins()
						if err == nil {
							fmt.Println(strings.Join(builtins, "\n"))
						}
					}
				},
			},

			{
				Name:    "context",
				Aliases: []string{"ctx"},
				Usage:   "Manage contexts",
				Action: func(c *cli.Context) error {
					// Default action just prints the selected context,
					// to simplify spotting which context is selected
					if err := currentStore.Use(""); err != nil {
						return err
					}
					fmt.Println(currentStore.Current.String())
					return nil
				},
				Subcommands: []*cli.Command{
					{
						Name:  "create",
						Usage: "Create a new context",
						Action: func(c *cli.Context) error {
							return createContext(currentStore, c)
						},
					},
					{
						Name:    "delete",
						Aliases: []string{"rm"},
						Usage:   "Delete a context",
						Action: func(c *cli.Context) error {
							return deleteContext(currentStore, c)
						},
						BashComplete: autocompleter(currentStore),
					},
					{
						Name:    "list",
						Aliases: []string{"ls"},
						Usage:   "List all contexts",
						Action: func(c *cli.Context) error {
							return listContext(currentStore, c)
						},
					},
					{
						Name:  "use",
						Usage: "Use a context",
						Action: func(c *cli.Context) error {
							return useContext(currentStore, c)
						},
						BashComplete: autocompleter(currentStore),
					},
					{
						Name:    "info",
						Usage:   "Show context configuration",
						Aliases: []string{"show"},
						Action: func(c *cli.Context) error {
							return infoContext(currentStore, c)
						},
						BashComplete: autocompleter(currentStore),
					},
					{
						Name:  "set",
						Usage: "Set a context variable",
						Action: func(c *cli.Context) error {
							nargs := c.NArg()
							if nargs > 0 && (nargs%2 == 0) {
								return setContext(currentStore, c, "", c.Args().Slice())
							}
							return errors.New("please introduce variable - value pairs")
						},
						BashComplete: func(c *cli.Context) {
							if c.NArg()%2 == 0 {
								fmt.Println(strings.Join(currentStore.Current.CanConfig(), "\n"))
							}
						},
					},
					{
						Name:  "params",
						Usage: "Set an importer parameter",
						Action: func(c *cli.Context) error {
							nargs := c.NArg()
							if nargs > 0 && (nargs%2 == 0) {
								return setParamsContext(currentStore, c, "", c.Args().Slice())
							}
							return errors.New("please introduce variable - value pairs")
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// autocompleter builds an autocomplete function for context names
func autocompleter(currentStore *config.Store) func(c *cli.Context) {
	return func(c *cli.Context) {
		if c.NArg() > 0 {
			return
		}
		currentStore.Path = c.String("config")
		names, err := currentStore.List()
		if err != nil {
			log.Printf("Error listing contexts: %s", err)
			return
		}
		fmt.Println(strings.Join(names, "\n"))
	}
}
