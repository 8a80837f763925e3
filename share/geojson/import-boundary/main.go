package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/relief-api/share/geojson"
	"github.com/bitmark-inc/relief-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("relief")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("mongo.database", "relief")
}

func main() {
	var file string
	flag.StringVar(&file, "f", "lk-boundary.json", "geojson feature collection of area boundaries")
	flag.Parse()

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	f, err := os.Open(file)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	summary, err := geojson.ImportAreaBoundaries(ctx,
		store.NewReliefStore(db),
		store.NewMongoStore(client, viper.GetString("mongo.database")),
		f)
	if err != nil {
		panic(err)
	}

	log.WithFields(log.Fields{
		"imported": summary.Imported,
		"skipped":  len(summary.Skipped),
	}).Info("boundaries imported")
}
