package weatherstack

// Payload is a decoded success body. Field sets differ between subscription
// plans, so only the top-level sections are given accessors.
type Payload map[string]any

func (p Payload) Request() map[string]any    { return p.section("request") }
func (p Payload) Location() map[string]any   { return p.section("location") }
func (p Payload) Current() map[string]any    { return p.section("current") }
func (p Payload) Historical() map[string]any { return p.section("historical") }
func (p Payload) Marine() map[string]any     { return p.section("marine") }
func (p Payload) Forecast() map[string]any   { return p.section("forecast") }

// Tides is untyped; some plans return an object, others a list.
func (p Payload) Tides() any {
	return p["tides"]
}

func (p Payload) section(name string) map[string]any {
	if v, ok := p[name].(map[string]any); ok {
		return v
	}
	return nil
}
