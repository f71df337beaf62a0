package main

import (
	"fmt"
	"os"

	"imagehost/api"
	"imagehost/config"
	"imagehost/logutils"
	"imagehost/orm"
	"imagehost/service"
	"imagehost/web"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.GetConfig()

	db, err := orm.Open(cfg)
	if err != nil {
		fmt.Println("err init:", err)
		os.Exit(1)
	}
	if err := orm.Migrate(db); err != nil {
		fmt.Println("err migrate:", err)
		os.Exit(1)
	}

	assets := service.NewAssetStore(cfg.AssetRoot)

	uploaders := service.NewUploaderService(db)
	projects := service.NewProjectService(db, assets)
	images := service.NewImageService(db, assets)
	tags := service.NewTagService(db)

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/images", cfg.AssetRoot)

	api.Register(r.Group("/api"), api.Services{
		Uploaders: uploaders,
		Projects:  projects,
		Images:    images,
		Tags:      tags,
	})
	web.Register(r, web.Services{
		Uploaders: uploaders,
		Projects:  projects,
		Images:    images,
		Tags:      tags,
	})

	err = r.Run(cfg.Server.Addr)
	if err != nil {
		logutils.Log.Fatal(err)
	}
}
