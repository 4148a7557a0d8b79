// Package cmd implements the CLI application to run the till and manage
// the inventory of a small shop.
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/libreria-amelia/pos"
	"github.com/libreria-amelia/pos/store"
)

// Commands is the list of subcommands. A main package registers them all
// and executes the user-selected one.
var Commands = []subcommands.Command{
	// inventory
	&addCmd{},
	&editCmd{},
	&rmCmd{},
	&lsCmd{},
	&summaryCmd{},
	// categories
	&categoriesCmd{},
	&addCategoryCmd{},
	&rmCategoryCmd{},
	// till
	&cartCmd{},
	&cartAddCmd{},
	&cartRmCmd{},
	&cartClearCmd{},
	&checkoutCmd{},
	// history
	&historyCmd{},
	&receiptCmd{},
	&rmSaleCmd{},
	&clearHistoryCmd{},
	// import/export
	&exportCmd{},
	&importCmd{},
	&templateCmd{},
	&xlsxCmd{},
	// labels
	&barcodeCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so process
// wide configuration read once from the environment is fine.

type config struct {
	Dir      string // data directory for the file store
	Shop     string // shop name printed on receipts
	Currency string // ISO currency code for display
	Backend  string // file | redis | postgres
	RedisURL string
	PgDSN    string
}

func loadConfig() config {
	// A missing .env is fine: plain environment variables still apply.
	_ = godotenv.Load()
	return config{
		Dir:      getenv("AMELIA_DIR", ".amelia"),
		Shop:     getenv("AMELIA_SHOP", "Librería Amelia"),
		Currency: getenv("AMELIA_CURRENCY", pos.DefaultCurrency),
		Backend:  getenv("AMELIA_STORE", "file"),
		RedisURL: getenv("AMELIA_REDIS_URL", "redis://localhost:6379"),
		PgDSN:    os.Getenv("AMELIA_PG_DSN"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// openDB is the central function to open the shop database on the backend
// selected by the environment.
func openDB() (*pos.DB, config, error) {
	cfg := loadConfig()
	var (
		s   store.Store
		err error
	)
	switch cfg.Backend {
	case "", "file":
		s, err = store.NewFileStore(cfg.Dir)
	case "redis":
		s, err = store.NewRedisStore(cfg.RedisURL, "amelia")
	case "postgres":
		s, err = store.NewPGStore(context.Background(), cfg.PgDSN)
	default:
		err = fmt.Errorf("unknown AMELIA_STORE backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, cfg, err
	}
	return pos.Open(s), cfg, nil
}

// confirm asks the user before a destructive action. 'yes' (the -y flag)
// skips the prompt; declining leaves state untouched.
func confirm(prompt string, yes bool) bool {
	if yes {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s [s/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}
