package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"job-board-backend/config"
	apiv1 "job-board-backend/controllers/v1"
	"job-board-backend/db"
	"job-board-backend/fiberlog"
	"job-board-backend/initializers"
	"job-board-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	services := initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: fiberlog.RequestID,
	}))
	app.Use(middleware.WithMetrics(services.Metrics))
	app.Use(middleware.WithBodyLimit(config.Conf.App.BodyLimit))

	app.Use(swagger.New(swagger.Config{
		Path:     "/swagger",
		FilePath: config.Conf.App.SwaggerDoc,
	}))
	apiv1.InitDocsApiRouters(app)
	app.Get("/metrics", adaptor.HTTPHandler(services.Metrics.Handler()))
	apiv1.InitHealthApiRouters(app, db.PingDB)

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT",
	}))
	apiv1.InitEmployerApiRouters(apiV1, services.Employers)
	apiv1.InitJobApiRouters(apiV1, services.Jobs, services.Applications)
	apiv1.InitSkillApiRouters(apiV1, services.Skills)
	apiv1.InitCandidateApiRouters(apiV1, services.Candidates, services.Resumes, services.Applications)
	apiv1.InitApplicationApiRouters(apiV1, services.Applications)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
