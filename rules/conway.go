package rules

// Dead and Alive are the only values a cell byte may hold.
const (
	Dead  byte = 0
	Alive byte = 1
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// transitions is indexed by TransitionKey and never written after init.
var transitions = buildTransitions()

func buildTransitions() (table [16]byte) {
	for state := Dead; state <= Alive; state++ {
		for neighbors := byte(0); neighbors < 8; neighbors++ {
			if ApplyConwayRules(int(neighbors), state == Alive) {
				table[TransitionKey(neighbors, state)] = Alive
			}
		}
	}
	return
}

/*
TransitionKey packs a neighbor count and the current cell state into a table key.

The low 3 bits hold the count, so 8 neighbors alias to 0 (both kill the cell).
Bit 3 holds the state.
*/
func TransitionKey(neighbors, state byte) byte {
	return neighbors&7 | state<<3
}

// Transition returns the next state for a key built by TransitionKey
func Transition(key byte) byte {
	return transitions[key&15]
}
