package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/filedesk/internal/app"
	"github.com/dmitrijs2005/filedesk/internal/cli"
	"github.com/dmitrijs2005/filedesk/internal/config"
)

func main() {

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	a := app.NewApp(cfg, os.Stdin, os.Stdout, os.Stderr, cli.Interactive(os.Stdin))
	if err := a.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}

}
