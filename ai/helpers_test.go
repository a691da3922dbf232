package ai

import "fmt"

// probe records lifecycle calls and ends after a fixed number of updates.
type probe struct {
	name    string
	log     *[]string
	updates int
	left    int
	enters  int
	exits   int
}

func newProbe(name string, updates int, log *[]string) *probe {
	return &probe{name: name, updates: updates, log: log}
}

func (p *probe) Enter() {
	p.enters++
	p.left = p.updates
	p.record("enter")
}

func (p *probe) Update(float64) State {
	p.left--
	if p.left <= 0 {
		return End
	}
	return Running
}

func (p *probe) Exit() {
	p.exits++
	p.record("exit")
}

func (p *probe) record(what string) {
	if p.log != nil {
		*p.log = append(*p.log, fmt.Sprintf("%s:%s", what, p.name))
	}
}
