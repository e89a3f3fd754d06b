package game

import (
	"log"
	"math"
	"sort"
	"sync"

	"github.com/automoto/joyplat/shared/gamemath"
	"github.com/automoto/joyplat/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Resolv tags
const (
	tagPlatform = "platform"
	tagQuery    = "query"
)

const spaceCellSize = 8

// Level is the immutable part of a game: the play field, the platforms in
// their significant order, the starting coins and the spawn point.
type Level struct {
	Name      string
	Params    Params
	Platforms []gamemath.Rect
	Coins     []gamemath.Rect
	Spawn     gamemath.Rect

	// Broadphase for platform queries. Only the transient query object is
	// ever added or removed after construction.
	mu    sync.Mutex
	space *resolv.Space
}

// NewLevel builds a level from parsed level data. Point coins take the
// configured coin size and a missing spawn falls back to Params.
func NewLevel(data *leveldata.LevelData, p Params) *Level {
	l := &Level{
		Name:      data.Name,
		Params:    p,
		Platforms: append([]gamemath.Rect(nil), data.Platforms...),
		space:     resolv.NewSpace(int(p.Width), int(p.Height), spaceCellSize, spaceCellSize),
	}

	for _, c := range data.Coins {
		if c.W == 0 || c.H == 0 {
			c.W, c.H = p.CoinWidth, p.CoinHeight
		}
		l.Coins = append(l.Coins, c)
	}

	spawnX, spawnY := p.SpawnX, p.SpawnY
	if data.HasSpawn {
		spawnX, spawnY = data.Spawn.X, data.Spawn.Y
	}
	l.Spawn = gamemath.Rect{
		X: gamemath.Clamp(spawnX, 0, p.Width-p.PlayerSize),
		Y: gamemath.Clamp(spawnY, 0, p.Height-p.PlayerSize),
		W: p.PlayerSize,
		H: p.PlayerSize,
	}

	for i, r := range l.Platforms {
		obj := broadphaseObject(r, tagPlatform)
		obj.Data = i
		l.space.Add(obj)
	}

	log.Printf("Loaded level %q: %d platforms, %d coins, spawn %.0f,%.0f",
		l.Name, len(l.Platforms), len(l.Coins), l.Spawn.X, l.Spawn.Y)

	return l
}

// broadphaseObject registers r grown by one pixel on every side. The space
// only files an object in cells its integer extent reaches, so anything
// thinner than a pixel is first widened to one.
func broadphaseObject(r gamemath.Rect, tag string) *resolv.Object {
	w, h := math.Max(r.W, 1)+2, math.Max(r.H, 1)+2
	obj := resolv.NewObject(r.X-1, r.Y-1, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

// platformCandidates returns, in level order, the indices of platforms that
// may touch box. The query box is grown by one pixel on every side so that
// touching edges and fractional positions are never missed; callers still
// run the exact test.
func (l *Level) platformCandidates(box gamemath.Rect) []int {
	l.mu.Lock()
	defer l.mu.Unlock()

	query := broadphaseObject(box, tagQuery)
	l.space.Add(query)
	defer l.space.Remove(query)

	check := query.Check(0, 0, tagPlatform)
	if check == nil {
		return nil
	}

	found := check.ObjectsByTags(tagPlatform)
	indices := make([]int, 0, len(found))
	for _, o := range found {
		if i, ok := o.Data.(int); ok {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	return indices
}
