// Generates typed query code for all entity tables.
package main

import (
	"fmt"
	"os"

	"imagehost/config"
	"imagehost/model"
	"imagehost/orm"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./dao/query",

		Mode: gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	cfg := config.GetConfig()
	db, err := orm.Open(cfg)
	if err != nil {
		fmt.Println("err init:", err)
		os.Exit(1)
	}
	g.UseDB(db)

	g.ApplyBasic(
		model.Uploader{},
		model.Project{},
		model.Image{},
		model.Tag{},
		model.ProjectTag{},
	)

	g.Execute()
}
