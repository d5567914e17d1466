package sim

// VTime is a point in simulated time, counted in whole ticks.
type VTime int

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	CurrentTime() VTime
}

// A Named object is an object that has a name.
type Named interface {
	Name() string
}
