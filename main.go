package main

import (
	"log"

	"github.com/GrainArc/InfraoMap/config"
	"github.com/GrainArc/InfraoMap/models"
	"github.com/GrainArc/InfraoMap/routers"
	"github.com/gin-gonic/gin"
)

func main() {
	models.InitDB()
	r := gin.Default()
	routers.ExchangeRouters(r)
	if err := r.Run(config.MainRouter); err != nil {
		log.Fatal(err)
	}
}
