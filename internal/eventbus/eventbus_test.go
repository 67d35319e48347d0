package eventbus

import "testing"

func TestPublishSubscribe(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	b.Publish("hello")
	select {
	case e := <-sub:
		if e != "hello" {
			t.Fatalf("expected hello got %v", e)
		}
	default:
		t.Fatalf("no event delivered")
	}
}

func TestSlowSubscriberDropsEvents(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	// Channel buffer is 8; overflow must not block the publisher.
	for i := 0; i < 20; i++ {
		b.Publish(i)
	}
	count := 0
	for {
		select {
		case <-sub:
			count++
			continue
		default:
		}
		break
	}
	if count != 8 {
		t.Fatalf("expected 8 buffered events got %d", count)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	b.Unsubscribe(sub)
	if _, ok := <-sub; ok {
		t.Fatalf("channel not closed")
	}
	// Publishing after unsubscribe is a no-op for that channel.
	b.Publish("ignored")
}

func TestCloseIdempotent(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	b.Close()
	b.Close()
	if _, ok := <-sub; ok {
		t.Fatalf("channel not closed")
	}
	if after := b.Subscribe(); after == nil {
		t.Fatalf("subscribe after close must return a closed channel")
	}
}
