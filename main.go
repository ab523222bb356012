package main

import (
	"log"

	"github.com/Iwan2264/HMS/authentication"
	"github.com/Iwan2264/HMS/catalog"
	"github.com/Iwan2264/HMS/configuration"
	"github.com/Iwan2264/HMS/controllers"
	"github.com/Iwan2264/HMS/routes"
	"github.com/Iwan2264/HMS/session"
	"github.com/Iwan2264/HMS/store"
)

func main() {
	cfg := configuration.LoadConfig()

	// The doctor source is required; the process cannot serve without it.
	doctors, err := catalog.Load(cfg.DoctorsFile)
	if err != nil {
		log.Fatal("failed to load doctor catalog: ", err)
	}

	appointments := store.New(cfg.AppointmentsFile)

	var sessions session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		client, err := configuration.InitRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatal(err)
		}
		sessions = session.NewRedisStore(client)
	}

	var mailer controllers.Mailer
	if cfg.SMTPEmail != "" {
		mailer = controllers.SMTPMailer{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Email:    cfg.SMTPEmail,
			Password: cfg.SMTPPassword,
		}
	}

	controllers.Init(doctors, appointments, authentication.DefaultAdminCredentials(), mailer)

	r := routes.SetupRouter(sessions, "templates/*")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
