package event

import "testing"

func TestProperty_SetPublishesChange(t *testing.T) {
	b := NewBus()
	p := NewProperty(b, "interaction.key.changed", "test", false)

	var changes []Change[bool]
	_, err := p.OnChange(func(c Change[bool]) {
		changes = append(changes, c)
	})
	if err != nil {
		t.Fatalf("OnChange() failed: %v", err)
	}

	if !p.Set(true) {
		t.Error("Set(true) on false property returned false")
	}
	if p.Get() != true {
		t.Error("Get() = false after Set(true)")
	}
	if len(changes) != 1 {
		t.Fatalf("got %d change events, want 1", len(changes))
	}
	if changes[0].Old != false || changes[0].New != true {
		t.Errorf("change = %+v, want {Old:false New:true}", changes[0])
	}
}

func TestProperty_NoOpSetFiresNothing(t *testing.T) {
	b := NewBus()
	p := NewProperty(b, "interaction.mouse.changed", "test", false)

	count := 0
	p.OnChange(func(Change[bool]) {
		count++
	})

	if p.Set(false) {
		t.Error("Set to current value returned true")
	}
	if count != 0 {
		t.Errorf("no-op Set fired %d events, want 0", count)
	}

	p.Set(true)
	p.Set(true)
	if count != 1 {
		t.Errorf("repeated Set(true) fired %d events, want 1", count)
	}
}

func TestProperty_HandlerReadsCurrentValue(t *testing.T) {
	b := NewBus()
	p := NewProperty(b, "interaction.key.changed", "test", false)

	var seen bool
	p.OnChange(func(Change[bool]) {
		// The property must already hold the new value when handlers run.
		seen = p.Get()
	})

	p.Set(true)
	if !seen {
		t.Error("handler observed stale property value")
	}
}
