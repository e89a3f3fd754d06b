package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/joyplat/shared/gamemath"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="16" height="8" tilewidth="8" tileheight="8" infinite="0" nextlayerid="4" nextobjectid="6">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="10" y="50" width="40" height="4"/>
  <object id="2" x="0" y="60" width="128" height="4"/>
 </objectgroup>
 <objectgroup id="2" name="Coins">
  <object id="3" x="12" y="30"><point/></object>
  <object id="4" x="90" y="12" width="6" height="6"/>
 </objectgroup>
 <objectgroup id="3" name="PlayerSpawn">
  <object id="5" x="8" y="16"><point/></object>
 </objectgroup>
</map>
`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testMap)}}

	data, err := LoadLevel(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if data.Name != "test" {
		t.Errorf("Name = %q, want test", data.Name)
	}
	if data.MapWidth != 128 || data.MapHeight != 64 {
		t.Errorf("map size = %dx%d, want 128x64", data.MapWidth, data.MapHeight)
	}

	wantPlatforms := []gamemath.Rect{
		{X: 10, Y: 50, W: 40, H: 4},
		{X: 0, Y: 60, W: 128, H: 4},
	}
	if len(data.Platforms) != len(wantPlatforms) {
		t.Fatalf("got %d platforms, want %d", len(data.Platforms), len(wantPlatforms))
	}
	for i, p := range wantPlatforms {
		if data.Platforms[i] != p {
			t.Errorf("platform %d = %+v, want %+v (file order must be kept)", i, data.Platforms[i], p)
		}
	}

	if len(data.Coins) != 2 {
		t.Fatalf("got %d coins, want 2", len(data.Coins))
	}
	if data.Coins[0] != (gamemath.Rect{X: 12, Y: 30}) {
		t.Errorf("point coin = %+v", data.Coins[0])
	}
	if data.Coins[1] != (gamemath.Rect{X: 90, Y: 12, W: 6, H: 6}) {
		t.Errorf("sized coin = %+v", data.Coins[1])
	}

	if !data.HasSpawn || data.Spawn != (SpawnPoint{X: 8, Y: 16}) {
		t.Errorf("spawn = %+v (has=%v)", data.Spawn, data.HasSpawn)
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	if _, err := LoadLevel(fstest.MapFS{}, "levels/none.tmx"); err == nil {
		t.Fatal("expected error for missing level")
	}
}

func TestObjectRectRejectsNegativeSize(t *testing.T) {
	bad := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="16" height="8" tilewidth="8" tileheight="8">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="60" width="-4" height="4"/>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"bad.tmx": {Data: []byte(bad)}}
	_, err := LoadLevel(fsys, "bad.tmx")
	if !errors.Is(err, ErrBadObject) {
		t.Fatalf("err = %v, want ErrBadObject", err)
	}
}
