package starfield

// ShootingStarPool is a fixed set of shooting stars allocated at startup.
// Stars are never added or removed; inactive ones wait to be relaunched.
type ShootingStarPool struct {
	Pool []*ShootingStar
}

// NewShootingStarPool creates a pool with size inactive stars.
func NewShootingStarPool(size int) *ShootingStarPool {
	pool := &ShootingStarPool{
		Pool: make([]*ShootingStar, size),
	}
	for i := range pool.Pool {
		pool.Pool[i] = &ShootingStar{}
	}
	return pool
}

// Acquire returns the first inactive star, or nil when every star is in
// flight.
func (p *ShootingStarPool) Acquire() *ShootingStar {
	for _, s := range p.Pool {
		if !s.Active {
			return s
		}
	}
	return nil
}

// ActiveCount returns the number of stars in flight.
func (p *ShootingStarPool) ActiveCount() int {
	n := 0
	for _, s := range p.Pool {
		if s.Active {
			n++
		}
	}
	return n
}

// Clear retires every star.
func (p *ShootingStarPool) Clear() {
	for _, s := range p.Pool {
		s.Active = false
	}
}

// ForEach iterates over the whole pool in order, active or not.
func (p *ShootingStarPool) ForEach(fn func(*ShootingStar)) {
	for _, s := range p.Pool {
		fn(s)
	}
}
