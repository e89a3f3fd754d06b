package components

import "github.com/yohamta/donburi"

// StatsData counts what the loop has done since start.
type StatsData struct {
	Ticks     int // attempted
	Committed int // ticks whose frame reached the panel
	Failures  int
	Jumps     int
	Landings  int
	Coins     int
	Verbose   bool // log every raw sample
}

var Stats = donburi.NewComponentType[StatsData]()
