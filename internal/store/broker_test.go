package store

import (
	"testing"
	"time"

	"github.com/studyhub-id/studyhub/internal/logger"
)

func TestBroker_PublishReachesOwnerSubscribers(t *testing.T) {
	b := NewBroker(logger.Nop())

	ch1, cancel1 := b.Subscribe("user-1")
	defer cancel1()
	ch2, cancel2 := b.Subscribe("user-1")
	defer cancel2()
	other, cancelOther := b.Subscribe("user-2")
	defer cancelOther()

	b.Publish("user-1")

	for i, ch := range []<-chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d never signalled", i)
		}
	}

	select {
	case <-other:
		t.Fatal("subscriber of another owner must not be signalled")
	default:
	}
}

func TestBroker_SignalsCoalesce(t *testing.T) {
	b := NewBroker(logger.Nop())

	ch, cancel := b.Subscribe("user-1")
	defer cancel()

	// burst of changes while nobody is reading
	b.Publish("user-1")
	b.Publish("user-1")
	b.Publish("user-1")

	<-ch
	select {
	case <-ch:
		t.Fatal("burst must coalesce into a single pending signal")
	default:
	}
}

func TestBroker_CancelStopsDelivery(t *testing.T) {
	b := NewBroker(logger.Nop())

	ch, cancel := b.Subscribe("user-1")
	cancel()
	cancel() // safe to call twice

	b.Publish("user-1")

	select {
	case <-ch:
		t.Fatal("cancelled subscriber must not be signalled")
	default:
	}
}

func TestBroker_PublishWithoutSubscribers(t *testing.T) {
	b := NewBroker(logger.Nop())
	b.Publish("nobody") // must not panic or block
}
