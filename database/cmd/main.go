package main

import (
	"echotap.link/configs"
	"echotap.link/configs/configsdatabase"
	"echotap.link/configs/configslog"
	"echotap.link/database"
	"echotap.link/database/seeders"

	flag "github.com/spf13/pflag"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "run database migrations")
	seedFlag := flag.Bool("seed", false, "provision blank cards (see --cards and --codes)")
	cardsFlag := flag.Int("cards", 0, "number of cards to create with generated codes")
	codesFlag := flag.StringSlice("codes", nil, "explicit card codes to create, comma separated")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag, seeders.CardSeedOptions{
		Count: *cardsFlag,
		Codes: *codesFlag,
	})
}
