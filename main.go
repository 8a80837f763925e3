package main

import (
	"context"
	"crypto/rsa"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/relief-api/api"
	"github.com/bitmark-inc/relief-api/geo"
	"github.com/bitmark-inc/relief-api/logmodule"
	"github.com/bitmark-inc/relief-api/notice"
	"github.com/bitmark-inc/relief-api/notifier"
	"github.com/bitmark-inc/relief-api/store"
)

var (
	server *api.Server
	ormDB  *gorm.DB
	broker notifier.Broker
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("relief")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("notifier.driver", notifier.DriverPostgres)
	viper.SetDefault("mongo.database", "relief")
	viper.SetDefault("geo.padding", geo.DefaultPadding)
	viper.SetDefault("geo.max_zoom", geo.DefaultMaxZoom)
}

// loadJWTKey reads the key tokens are verified with. The file holds either
// the public key of the identity provider or a password protected private key.
func loadJWTKey(file, password string) (*rsa.PublicKey, error) {
	pem, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}

	if key, err := jwt.ParseRSAPublicKeyFromPEM(pem); err == nil {
		return key, nil
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEMWithPassword(pem, password)
	if err != nil {
		return nil, err
	}
	return &key.PublicKey, nil
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	var metricsCloser io.Closer

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown relief api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if broker != nil {
			log.Info("Closing change notifier")
			if err := broker.Close(); err != nil {
				log.Error(err)
			}
		}

		if metricsCloser != nil {
			_ = metricsCloser.Close()
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(5 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Translations on top of the bundled english notices
	if err := notice.LoadDir(viper.GetString("i18n.dir")); err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Languages: ", notice.Languages())

	// Load JWT verification key
	jwtPublicKey, err := loadJWTKey(viper.GetString("jwt.keyfile"), viper.GetString("jwt.password"))
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded jwt key")

	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}
	ormDB.SetLogger(log.WithField("prefix", "orm"))

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	// Change notifier
	driver := viper.GetString("notifier.driver")
	broker, err = notifier.Open(initialCtx, notifier.Config{
		Driver:       driver,
		Channel:      viper.GetString("notifier.channel"),
		PostgresConn: viper.GetString("orm.conn"),
		RedisConn:    viper.GetString("redis.conn"),
		AMQPURL:      viper.GetString("amqp.url"),
	}, ormDB.DB())
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Initialized change notifier: ", driver)

	var core store.ReliefCore = store.NewReliefStore(ormDB)
	if !notifier.TriggerBacked(driver) {
		core = store.NewNotifyingCore(core, broker)
	}

	// Area resolution, mongo boundaries first then google geocoding
	resolvers := []geo.AreaResolver{geo.NewBoundaryAreaResolver(mongoStore, core)}
	if key := viper.GetString("map.key"); key != "" {
		mapClient, err := maps.NewClient(maps.WithAPIKey(key))
		if err != nil {
			log.Panic(err)
		}
		resolvers = append(resolvers, geo.NewGeocodingAreaResolver(mapClient, core))
	}
	resolver := geo.NewMultipleAreaResolver(resolvers...)
	geo.SetAreaResolver(resolver)

	var metrics tally.Scope
	metrics, metricsCloser = tally.NewRootScope(tally.ScopeOptions{
		Prefix:   "relief",
		Reporter: logmodule.NewTallyReporter("metric"),
	}, 10*time.Second)

	// Init http server
	server = api.NewServer(
		core,
		mongoStore,
		broker,
		resolver,
		jwtPublicKey,
		metrics)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
