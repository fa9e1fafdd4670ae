package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ettorepuccetti/terrarossa/internal/booking"
	"github.com/ettorepuccetti/terrarossa/internal/repository"
	"github.com/ettorepuccetti/terrarossa/internal/seed"
	"github.com/ettorepuccetti/terrarossa/internal/service"
	transport "github.com/ettorepuccetti/terrarossa/internal/transport/http"
	"github.com/ettorepuccetti/terrarossa/pkg/config"
	"github.com/ettorepuccetti/terrarossa/pkg/db"
	"github.com/ettorepuccetti/terrarossa/pkg/mq"
	"github.com/ettorepuccetti/terrarossa/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())

	shutdownTracer := obs.InitTracer("terrarossa-server", cfg.Env)

	// DB
	gdb := db.Open(cfg.PGDSN)
	clubRepo := repository.NewClubRepo(gdb)
	courtRepo := repository.NewCourtRepo(gdb)
	userRepo := repository.NewUserRepo(gdb)
	resRepo := repository.NewReservationRepo(gdb)
	must(0, clubRepo.Migrate())
	must(0, courtRepo.Migrate())
	must(0, userRepo.Migrate())
	must(0, resRepo.Migrate())

	if cfg.SeedOnBoot {
		stores := seed.Stores{Clubs: clubRepo, Courts: courtRepo, Users: userRepo}
		must(0, seed.Run(context.Background(), stores, cfg.SeedAdminEmail))
	}

	// Publisher for reservation.* events
	pub := must(mq.NewPublisher(cfg.RabbitURL, cfg.ReservationExchange))
	defer pub.Close()

	clock := booking.RealClock{}
	router := transport.NewRouter(transport.Services{
		Reservations: service.NewReservationSvc(resRepo, courtRepo, clubRepo, pub, clock),
		Clubs:        service.NewClubSvc(clubRepo),
		Courts:       service.NewCourtSvc(courtRepo),
		Users:        service.NewUserSvc(userRepo),
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		log.Println("[server] listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[server] shutdown: %v", err)
	}
	if err := shutdownTracer(ctx); err != nil {
		log.Printf("[server] tracer shutdown: %v", err)
	}
	log.Println("[server] stopped")
}
