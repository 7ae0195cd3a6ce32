package eventbus_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/graphcfg/internal/eventbus"
)

type started struct{ name string }
type finished struct{ name string }

func TestPublishByType(t *testing.T) {
	bus := eventbus.New()
	var got []string
	eventbus.Subscribe(bus, func(_ context.Context, e started) { got = append(got, "start:"+e.name) })
	eventbus.Subscribe(bus, func(_ context.Context, e finished) { got = append(got, "finish:"+e.name) })

	eventbus.Publish(context.Background(), bus, started{name: "a"})
	eventbus.Publish(context.Background(), bus, finished{name: "a"})
	eventbus.Publish(context.Background(), bus, "unrelated")

	require.Equal(t, []string{"start:a", "finish:a"}, got)
}

func TestUnsubscribeRemovesOnlyItsHandler(t *testing.T) {
	bus := eventbus.New()
	var got []string
	unsubFirst := eventbus.Subscribe(bus, func(_ context.Context, e started) { got = append(got, "first") })
	eventbus.Subscribe(bus, func(_ context.Context, e started) { got = append(got, "second") })

	unsubFirst()
	unsubFirst()
	eventbus.Publish(context.Background(), bus, started{})

	require.Equal(t, []string{"second"}, got)
}

func TestNilBus(t *testing.T) {
	var bus *eventbus.Bus
	unsub := eventbus.Subscribe(bus, func(context.Context, started) { t.Fatal("unexpected event") })
	eventbus.Publish(context.Background(), bus, started{})
	unsub()
}
