package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kinoplex/kinoplex/cmd/kinoplexd/handlers"
	"github.com/kinoplex/kinoplex/pkg/buildtime"
	kcs "github.com/kinoplex/kinoplex/pkg/configs/server"
	kdb "github.com/kinoplex/kinoplex/pkg/db"
	ksql "github.com/kinoplex/kinoplex/pkg/db/sqlite"
	"github.com/kinoplex/kinoplex/pkg/uniprot"
	"github.com/kinoplex/kinoplex/pkg/utils/echoutil"
	"github.com/kinoplex/kinoplex/pkg/utils/filewatch"
)

func main() {

	configPath := flag.String("config-path", "", "server config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	pversion := flag.Bool("version", false, "print version and quit")
	flag.Parse()

	if *pversion {
		fmt.Println("kinoplexd", buildtime.VersionString())
		os.Exit(0)
	}

	e := echo.New()
	e.Pre(middleware.AddTrailingSlash())

	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	conf, err := kcs.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configuration: %s", err)
	}

	ctx := context.Background()
	db, err := getDBAccessor(ctx, conf.Database)
	if err != nil {
		log.Fatalf("can not open site database: %s", err)
	}
	defer db.Close()

	// the database is built offline and swapped in whole. When the file
	// changes under us, quit so the supervisor restarts onto fresh data.
	{
		wctx, cancel, err := filewatch.UntilModifyContext(ctx, conf.Database)
		if err != nil {
			log.Fatalf("can not watch site database: %s", err)
		}
		defer cancel()
		context.AfterFunc(wctx, func() {
			if context.Cause(wctx) == context.Canceled {
				return
			}
			log.Println("site database is updated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by database update: %s", err)
			}
		})
	}

	uni := uniprot.New(conf.Uniprot.BaseURL, uniprotOptions(conf.Uniprot)...)

	// handlers
	{
		e.GET("/api/search/", handlers.SearchHandler(db.Proteins()))
		e.GET("/api/stats/", handlers.StatsHandler(db.Proteins()))
	}
	{
		e.GET(
			"/api/protein/:identifier/",
			handlers.GetProteinHandler(db.Proteins(), uni),
		)
		e.GET(
			"/api/protein/:identifier/sequence/",
			handlers.GetSequenceHandler(db.Proteins(), uni),
		)
		e.GET(
			"/api/protein/:identifier/site/:position/motif/",
			handlers.GetSiteMotifHandler(db.Proteins(), uni),
		)
		e.GET(
			"/api/protein/:identifier/kinase/:kinase/",
			handlers.KinaseProfileHandler(db.Proteins()),
		)
	}

	log.Println("registered routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(":"+conf.Port, cert, key))
	} else {
		e.Logger.Fatal(e.Start(":" + conf.Port))
	}
}

func getDBAccessor(ctx context.Context, path string) (kdb.KinoDatabase, error) {
	return ksql.New(ctx, path)
}

func uniprotOptions(conf kcs.UniprotConfig) []uniprot.Option {
	options := []uniprot.Option{}
	if 0 < conf.TimeoutSeconds {
		options = append(options, uniprot.WithHTTPClient(&http.Client{
			Timeout: time.Duration(conf.TimeoutSeconds) * time.Second,
		}))
	}
	return options
}
