package app

import "testing"

func TestBuildAdaptersRegistrationOrder(t *testing.T) {
	adapters := BuildAdapters(nil)

	want := []string{"Naukri", "RemoteOnly", "PlacementIndia", "Shine"}
	if len(adapters) != len(want) {
		t.Fatalf("expected %d adapters, got %d", len(want), len(adapters))
	}
	for i, name := range want {
		if got := adapters[i].Name(); got != name {
			t.Fatalf("adapter %d: got %s, want %s", i, got, name)
		}
	}
}
