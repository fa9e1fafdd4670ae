package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ettorepuccetti/terrarossa/internal/notify"
	"github.com/ettorepuccetti/terrarossa/pkg/config"
	"github.com/ettorepuccetti/terrarossa/pkg/mq"
)

func parseCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	consCfg := mq.ConsumerConfig{
		URL:      cfg.RabbitURL,
		Exchange: cfg.ReservationExchange,
		Queue:    cfg.NotifyQueue,
		Keys:     parseCSV(cfg.NotifyBindings),
		Prefetch: 16,
		DLX:      cfg.NotifyDLX,
		DLQ:      cfg.NotifyDLQ,
	}

	var consumer *mq.Consumer
	for {
		consumer, err = mq.NewConsumer(consCfg)
		if err != nil {
			log.Printf("[notify] connect failed: %v; retry in 2s", err)
			time.Sleep(2 * time.Second)
			continue
		}
		break
	}
	defer consumer.Close()

	worker := notify.NewWorker(consumer, notify.NewConsole(), "terrarossa-notifier")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := worker.Run(ctx); err != nil {
			log.Printf("[notify] run error: %v", err)
		}
	}()

	log.Printf("[notify] started. queue=%s exchange=%s bindings=%v",
		consCfg.Queue, consCfg.Exchange, consCfg.Keys)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	cancel()
	time.Sleep(200 * time.Millisecond)
}
