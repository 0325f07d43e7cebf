// Command seed resets the academy database and loads the demo data.
package main

import (
	"context"
	"log"

	"github.com/GulfDevInnovations/royal-academy/internal/config"
	"github.com/GulfDevInnovations/royal-academy/internal/db"
	"github.com/GulfDevInnovations/royal-academy/internal/model"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
	"github.com/GulfDevInnovations/royal-academy/internal/seed"
)

func main() {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("[seed] load db config: %v", err)
	}

	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatalf("[seed] init db: %v", err)
	}
	defer db.Close(gormDB)

	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("[seed] auto migrate: %v", err)
	}

	res, err := seed.Run(context.Background(), repository.NewStore(gormDB), seed.Options{})
	if err != nil {
		log.Fatalf("[seed] failed: %v", err)
	}
	log.Printf("[seed] done: %d students, ballet schedule %s", len(res.StudentIDs), res.BalletScheduleID)
}
