package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/barter/cmd/barterd/app"
	"github.com/iov-one/barter/errors"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [ticker] [address]",
		Short: "Write the app_state of the genesis file",
		Long: `Writes a development app_state into the genesis file created by
"tendermint init". The given address, or a newly generated key, owns all
coins of the given ticker (IOV by default).`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := cmd.Flags().GetString(flagHome)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			options, err := app.GenInitOptions(args)
			if err != nil {
				return err
			}
			genFile := filepath.Join(home, "config", "genesis.json")
			if err := addGenesisOptions(genFile, options); err != nil {
				return err
			}
			logger.Info("App state written", "path", genFile)
			return nil
		},
	}
}

// genesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type genesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(errors.ErrNotFound, "%s, run tendermint init first", filename)
		}
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	var doc genesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis: %s", err)
	}
	if _, ok := doc["app_state"]; ok {
		return errors.Wrapf(errors.ErrDuplicate, "%s already has an app_state", filename)
	}

	doc["app_state"] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return ioutil.WriteFile(filename, out, 0600)
}
