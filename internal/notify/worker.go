package notify

import (
	"context"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ettorepuccetti/terrarossa/internal/events"
	"github.com/ettorepuccetti/terrarossa/pkg/mq"
)

// Worker drains reservation events off the queue and notifies. A
// failing delivery is nacked without requeue and lands on the dead
// letter queue.
type Worker struct {
	consumer *mq.Consumer
	notifier Notifier
	tag      string
}

func NewWorker(consumer *mq.Consumer, notifier Notifier, tag string) *Worker {
	return &Worker{consumer: consumer, notifier: notifier, tag: tag}
}

func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.consumer.Deliveries(ctx, w.tag)
	if err != nil {
		return fmt.Errorf("consume failed: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.handleDelivery(d); err != nil {
				log.Printf("[notify] handle error key=%s err=%v -> Nack", d.RoutingKey, err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handleDelivery(d amqp.Delivery) error {
	switch d.RoutingKey {
	case events.RKReservationCreated:
		ev, err := events.Unmarshal[events.ReservationCreated](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Prenotazione confermata",
			fmt.Sprintf("Reservation %s (court=%s) %s", ev.ReservationID, ev.CourtID, HumanTimeRange(ev.Start, ev.End)))

	case events.RKReservationCancelled:
		ev, err := events.Unmarshal[events.ReservationCancelled](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Prenotazione cancellata",
			fmt.Sprintf("Reservation %s on court %s has been cancelled.", ev.ReservationID, ev.CourtID))

	case events.RKRecurrentReservationCancelled:
		ev, err := events.Unmarshal[events.RecurrentReservationCancelled](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Prenotazioni ricorrenti cancellate",
			fmt.Sprintf("Recurrent group %s: %d reservations removed.", ev.RecurrentID, ev.Removed))

	default:
		log.Printf("[notify] skip unknown key=%s", d.RoutingKey)
		return nil
	}
}
