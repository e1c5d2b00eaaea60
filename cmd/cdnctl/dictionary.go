package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/cdnconnector/internal/cdn"
	"github.com/at-ishikawa/cdnconnector/internal/manifest"
)

func newDictionaryCommand() *cobra.Command {
	dictionaryCommand := &cobra.Command{
		Use:   "dictionary",
		Short: "Edge dictionary commands",
	}

	var file string
	upsertCommand := &cobra.Command{
		Use:   "upsert [<dictionary id> <key> <value>]",
		Short: "Create or replace edge dictionary items",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			target, err := dictionaryManifestFromArgs(file, args)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, a.Close())
			}()

			count, err := a.runner.UpsertDictionaryItems(cmd.Context(), target.DictionaryID, target.Items)
			if _, printErr := fmt.Fprintf(cmd.OutOrStdout(), "dictionary %s: %d/%d items upserted\n", target.DictionaryID, count, len(target.Items)); printErr != nil {
				return errors.Join(err, printErr)
			}
			return err
		},
	}
	upsertCommand.Flags().StringVarP(&file, "file", "f", "", "YAML manifest with dictionary_id and items")

	dictionaryCommand.AddCommand(upsertCommand)
	return dictionaryCommand
}

func dictionaryManifestFromArgs(file string, args []string) (manifest.DictionaryManifest, error) {
	switch {
	case file != "" && len(args) > 0:
		return manifest.DictionaryManifest{}, errors.New("arguments and --file cannot be used together")
	case file != "":
		loaded, err := manifest.LoadDictionaryManifest(file)
		if err != nil {
			return manifest.DictionaryManifest{}, fmt.Errorf("manifest.LoadDictionaryManifest > %w", err)
		}
		return loaded, nil
	case len(args) == 3:
		return manifest.DictionaryManifest{
			DictionaryID: args[0],
			Items:        []cdn.DictionaryItem{{Key: args[1], Value: args[2]}},
		}, nil
	default:
		return manifest.DictionaryManifest{}, errors.New("either <dictionary id> <key> <value> or --file is required")
	}
}
