package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/app"
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/crypto"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x/cash"
	"github.com/iov-one/barter/x/ledger"
	"github.com/iov-one/barter/x/utils"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode. Arguments are an optional fee ticker
// and an optional hex address. When no address is given a new key is
// generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker %s", ticker)
		}
	}

	var addr barter.Address
	if len(args) > 1 {
		var err error
		addr, err = barter.ParseAddress(args[1])
		if err != nil {
			return nil, err
		}
	} else {
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz
		fmt.Println(keys)
	}

	opts := fmt.Sprintf(`
	{
	  "conf": {
	    "cash": {
	      "metadata": {"schema": 1},
	      "collector_address": "%[1]s",
	      "minimal_fee": "0 %[2]s"
	    },
	    "ledger": {
	      "metadata": {"schema": 1},
	      "account_deposit": "0.01 %[2]s"
	    }
	  },
	  "cash": [
	    {"address": "%[1]s", "coins": ["123456789 %[2]s"]}
	  ],
	  "ledger": {
	    "kinds": [],
	    "accounts": []
	  }
	}`, addr, ticker)
	return []byte(opts), nil
}

// GenerateApp is used to create a stub for the start command. The
// database goes in a subdirectory of home, "" means an in-memory store.
func GenerateApp(home string, logger log.Logger, debug bool, metrics utils.Metrics, sink app.EventSink) (abci.Application, error) {
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "barter.db")
	}

	stack := Stack(metrics)
	application, err := Application("barterd", stack, TxDecoder, dbPath, debug, sink)
	if err != nil {
		return nil, err
	}
	application.WithInit(app.ChainInitializers(
		&cash.Initializer{},
		&ledger.Initializer{},
	))
	application.WithLogger(logger)
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a new public key,
// along with a json representation of the keys.
func GenerateCoinKey() (barter.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return pubKey.Address(), string(keys), nil
}
