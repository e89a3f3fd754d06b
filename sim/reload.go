package sim

import (
	"log"
	"path/filepath"

	cfg "github.com/automoto/joyplat/config"
	"github.com/automoto/joyplat/core"
)

// Reloader restarts the level when its file or the configuration file
// changes on disk. A configuration change is also applied to the stick,
// the HUD and the panel.
type Reloader struct {
	watcher    *Watcher
	levelPath  string
	configPath string
}

// NewReloader watches the directories holding levelPath and configPath.
// Either may be empty.
func NewReloader(levelPath, configPath string) (*Reloader, error) {
	var dirs []string
	seen := map[string]bool{}
	for _, p := range []string{levelPath, configPath} {
		if p == "" {
			continue
		}
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	w, err := NewWatcher(dirs...)
	if err != nil {
		return nil, err
	}
	return &Reloader{watcher: w, levelPath: clean(levelPath), configPath: clean(configPath)}, nil
}

func clean(p string) string {
	if p == "" {
		return ""
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

// Poll applies any pending changes to d without blocking. It reports
// whether the level was restarted.
func (r *Reloader) Poll(d *core.Driver) bool {
	changed := false
	for {
		select {
		case name, ok := <-r.watcher.Events:
			if !ok {
				return changed
			}
			switch clean(name) {
			case r.configPath:
				if err := cfg.LoadFile(r.configPath); err != nil {
					log.Printf("Config reload failed: %v", err)
					continue
				}
				if err := d.Reconfigure(); err != nil {
					log.Printf("Config apply failed: %v", err)
				}
			case r.levelPath:
			default:
				continue
			}
			if r.restart(d) {
				changed = true
			}
		case err, ok := <-r.watcher.Errors:
			if ok {
				log.Printf("Watcher error: %v", err)
			}
		default:
			return changed
		}
	}
}

func (r *Reloader) restart(d *core.Driver) bool {
	level, err := core.LoadLevel(r.levelPath)
	if err != nil {
		log.Printf("Level reload failed: %v", err)
		return false
	}
	d.Reset(level)
	log.Printf("Reloaded level %q", level.Name)
	return true
}

func (r *Reloader) Close() error {
	return r.watcher.Close()
}
