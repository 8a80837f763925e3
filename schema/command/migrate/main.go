package main

import (
	"flag"
	"io/ioutil"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/bitmark-inc/relief-api/notifier"
	"github.com/bitmark-inc/relief-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("relief")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("mongo.database", "relief")
	viper.SetDefault("notifier.channel", notifier.DefaultChannel)
}

type areaSeed struct {
	Areas []struct {
		Name     string `yaml:"name"`
		District string `yaml:"district"`
		Province string `yaml:"province"`
	} `yaml:"areas"`
}

// seedAreas inserts the areas of the seed file that do not exist yet
func seedAreas(db *gorm.DB, file string) error {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return err
	}

	var seed areaSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return err
	}

	for _, a := range seed.Areas {
		var area schema.Area
		if err := db.Where(schema.Area{Name: a.Name, District: a.District}).
			Attrs(schema.Area{Province: a.Province}).
			FirstOrCreate(&area).Error; err != nil {
			return err
		}
	}

	log.WithField("areas", len(seed.Areas)).Info("areas seeded")
	return nil
}

func main() {
	var areasFile string
	flag.StringVar(&areasFile, "areas", "", "[optional] yaml file of areas to seed")
	flag.Parse()

	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := schema.Migrate(db); err != nil {
		panic(err)
	}

	// change signals for the postgres notifier
	for _, stmt := range notifier.TriggerStatements(viper.GetString("notifier.channel"), schema.WatchedTables...) {
		if err := db.Exec(stmt).Error; err != nil {
			panic(err)
		}
	}

	if areasFile != "" {
		if err := seedAreas(db, areasFile); err != nil {
			panic(err)
		}
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
