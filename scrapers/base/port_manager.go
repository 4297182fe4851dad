package base

import (
	"fmt"
	"sync"
)

const (
	driverBasePort  = 4444
	driverPortCount = 16
)

// driverPorts is shared by every selenium fetch in the process
var driverPorts = newPortPool(driverBasePort, driverPortCount)

// portPool leases chromedriver ports so concurrent selenium fetches don't collide
type portPool struct {
	first, size int

	mu     sync.Mutex
	leased map[int]struct{}
}

func newPortPool(first, size int) *portPool {
	return &portPool{first: first, size: size, leased: make(map[int]struct{}, size)}
}

// acquire leases the lowest free port
func (p *portPool) acquire() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for port := p.first; port < p.first+p.size; port++ {
		if _, taken := p.leased[port]; !taken {
			p.leased[port] = struct{}{}
			return port, nil
		}
	}
	return 0, fmt.Errorf("all %d chromedriver ports from %d are in use", p.size, p.first)
}

func (p *portPool) release(port int) {
	p.mu.Lock()
	delete(p.leased, port)
	p.mu.Unlock()
}
